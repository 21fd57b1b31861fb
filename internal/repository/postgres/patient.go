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

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{NewBaseRepository(db)}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (uuid, name, phone, birthday)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.Name,
		patient.Phone,
		patient.Birthday,
	)
	if err != nil {
		return writeError("insert patient", "patient", patient.ID.String(), err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `SELECT uuid, name, phone, birthday FROM patients WHERE uuid = $1`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NewNotFound("patient", id.String())
	}
	if err != nil {
		return nil, apperr.NewStorage("get patient", err)
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT uuid, name, phone, birthday FROM patients`
	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, apperr.NewStorage("list patients", err)
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, id uuid.UUID, fn func(*model.Patient) error) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `SELECT uuid, name, phone, birthday FROM patients WHERE uuid = $1 FOR UPDATE`
		var patient model.Patient
		err := tx.GetContext(ctx, &patient, query, id)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NewNotFound("patient", id.String())
		}
		if err != nil {
			return apperr.NewStorage("lock patient", err)
		}

		if err := fn(&patient); err != nil {
			return err
		}

		update := `UPDATE patients SET name = $1, phone = $2, birthday = $3 WHERE uuid = $4`
		if _, err := tx.ExecContext(ctx, update, patient.Name, patient.Phone, patient.Birthday, id); err != nil {
			return apperr.NewStorage("update patient", err)
		}
		return nil
	})
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE uuid = $1`, id)
	if err != nil {
		return apperr.NewStorage("delete patient", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.NewStorage("delete patient", err)
	}
	if n == 0 {
		return apperr.NewNotFound("patient", id.String())
	}
	return nil
}
