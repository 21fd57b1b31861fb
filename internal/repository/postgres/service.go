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

type serviceRepository struct {
	BaseRepository
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{NewBaseRepository(db)}
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	query := `INSERT INTO services (uuid, name, price) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, service.ID, service.Name, service.Price)
	if err != nil {
		return writeError("insert service", "service", service.ID.String(), err)
	}
	return nil
}

func (r *serviceRepository) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	query := `SELECT uuid, name, price FROM services WHERE uuid = $1`
	var service model.Service
	err := r.db.GetContext(ctx, &service, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NewNotFound("service", id.String())
	}
	if err != nil {
		return nil, apperr.NewStorage("get service", err)
	}
	return &service, nil
}

func (r *serviceRepository) List(ctx context.Context) ([]*model.Service, error) {
	query := `SELECT uuid, name, price FROM services`
	services := []*model.Service{}
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, apperr.NewStorage("list services", err)
	}
	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, id uuid.UUID, fn func(*model.Service) error) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `SELECT uuid, name, price FROM services WHERE uuid = $1 FOR UPDATE`
		var service model.Service
		err := tx.GetContext(ctx, &service, query, id)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NewNotFound("service", id.String())
		}
		if err != nil {
			return apperr.NewStorage("lock service", err)
		}

		if err := fn(&service); err != nil {
			return err
		}

		update := `UPDATE services SET name = $1, price = $2 WHERE uuid = $3`
		if _, err := tx.ExecContext(ctx, update, service.Name, service.Price, id); err != nil {
			return apperr.NewStorage("update service", err)
		}
		return nil
	})
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE uuid = $1`, id)
	if err != nil {
		return apperr.NewStorage("delete service", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.NewStorage("delete service", err)
	}
	if n == 0 {
		return apperr.NewNotFound("service", id.String())
	}
	return nil
}
