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

const recordColumns = `uuid, patient_uuid, doctor_uuid, date, used_services, disease, discharge, payment_status, sum`

type recordRepository struct {
	BaseRepository
}

func NewRecordRepository(db *sqlx.DB) repository.RecordRepository {
	return &recordRepository{NewBaseRepository(db)}
}

func (r *recordRepository) Create(ctx context.Context, record *model.Record) error {
	query := `
		INSERT INTO records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.PatientID,
		record.DoctorID,
		record.Date,
		record.UsedServices,
		record.Disease,
		record.Discharge,
		record.PaymentStatus,
		record.Sum,
	)
	if err != nil {
		return writeError("insert record", "record", record.ID.String(), err)
	}
	return nil
}

func (r *recordRepository) Get(ctx context.Context, id uuid.UUID) (*model.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE uuid = $1`
	var record model.Record
	err := r.db.GetContext(ctx, &record, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NewNotFound("record", id.String())
	}
	if err != nil {
		return nil, apperr.NewStorage("get record", err)
	}
	return &record, nil
}

func (r *recordRepository) List(ctx context.Context) ([]*model.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records`
	records := []*model.Record{}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, apperr.NewStorage("list records", err)
	}
	return records, nil
}

func (r *recordRepository) Update(ctx context.Context, id uuid.UUID, fn func(*model.Record) error) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `SELECT ` + recordColumns + ` FROM records WHERE uuid = $1 FOR UPDATE`
		var record model.Record
		err := tx.GetContext(ctx, &record, query, id)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NewNotFound("record", id.String())
		}
		if err != nil {
			return apperr.NewStorage("lock record", err)
		}

		if err := fn(&record); err != nil {
			return err
		}

		update := `
			UPDATE records
			SET patient_uuid = $1, doctor_uuid = $2, date = $3, used_services = $4,
			    disease = $5, discharge = $6, payment_status = $7, sum = $8
			WHERE uuid = $9
		`
		_, err = tx.ExecContext(ctx, update,
			record.PatientID,
			record.DoctorID,
			record.Date,
			record.UsedServices,
			record.Disease,
			record.Discharge,
			record.PaymentStatus,
			record.Sum,
			id,
		)
		if err != nil {
			return apperr.NewStorage("update record", err)
		}
		return nil
	})
}

func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE uuid = $1`, id)
	if err != nil {
		return apperr.NewStorage("delete record", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.NewStorage("delete record", err)
	}
	if n == 0 {
		return apperr.NewNotFound("record", id.String())
	}
	return nil
}
