package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/medlight/clinic-api/internal/model"
)

// All repository interfaces in one file. Update takes a mutator applied
// inside a per-row critical section so concurrent partial updates to the
// same id cannot lose writes.
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		List(ctx context.Context) ([]*model.Patient, error)
		Update(ctx context.Context, id uuid.UUID, fn func(*model.Patient) error) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
		List(ctx context.Context) ([]*model.Doctor, error)
		Update(ctx context.Context, id uuid.UUID, fn func(*model.Doctor) error) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	ServiceRepository interface {
		Create(ctx context.Context, service *model.Service) error
		Get(ctx context.Context, id uuid.UUID) (*model.Service, error)
		List(ctx context.Context) ([]*model.Service, error)
		Update(ctx context.Context, id uuid.UUID, fn func(*model.Service) error) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	RecordRepository interface {
		Create(ctx context.Context, record *model.Record) error
		Get(ctx context.Context, id uuid.UUID) (*model.Record, error)
		List(ctx context.Context) ([]*model.Record, error)
		Update(ctx context.Context, id uuid.UUID, fn func(*model.Record) error) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		GetByUsername(ctx context.Context, username string) (*model.User, error)
	}
)
