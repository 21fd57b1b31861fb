package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/medlight/clinic-api/internal/model"
	"github.com/medlight/clinic-api/internal/repository"
	apperr "github.com/medlight/clinic-api/pkg/errors"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{NewBaseRepository(db)}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (uuid, name, phone, speciality, qualification)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		doctor.ID,
		doctor.Name,
		doctor.Phone,
		doctor.Speciality,
		doctor.Qualification,
	)
	if err != nil {
		return writeError("insert doctor", "doctor", doctor.ID.String(), err)
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `SELECT uuid, name, phone, speciality, qualification FROM doctors WHERE uuid = $1`
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NewNotFound("doctor", id.String())
	}
	if err != nil {
		return nil, apperr.NewStorage("get doctor", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `SELECT uuid, name, phone, speciality, qualification FROM doctors`
	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, apperr.NewStorage("list doctors", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, id uuid.UUID, fn func(*model.Doctor) error) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `SELECT uuid, name, phone, speciality, qualification FROM doctors WHERE uuid = $1 FOR UPDATE`
		var doctor model.Doctor
		err := tx.GetContext(ctx, &doctor, query, id)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NewNotFound("doctor", id.String())
		}
		if err != nil {
			return apperr.NewStorage("lock doctor", err)
		}

		if err := fn(&doctor); err != nil {
			return err
		}

		update := `UPDATE doctors SET name = $1, phone = $2, speciality = $3, qualification = $4 WHERE uuid = $5`
		if _, err := tx.ExecContext(ctx, update, doctor.Name, doctor.Phone, doctor.Speciality, doctor.Qualification, id); err != nil {
			return apperr.NewStorage("update doctor", err)
		}
		return nil
	})
}

func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE uuid = $1`, id)
	if err != nil {
		return apperr.NewStorage("delete doctor", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.NewStorage("delete doctor", err)
	}
	if n == 0 {
		return apperr.NewNotFound("doctor", id.String())
	}
	return nil
}
