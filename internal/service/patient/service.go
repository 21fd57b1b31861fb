package patient

import (
	"context"
	"fmt"

	v10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/medlight/clinic-api/internal/model"
	"github.com/medlight/clinic-api/internal/repository"
	apperr "github.com/medlight/clinic-api/pkg/errors"
	"github.com/medlight/clinic-api/pkg/validator"
)

type Service struct {
	repo     repository.PatientRepository
	validate *v10.Validate
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		ID:       uuid.New(),
		Name:     req.Name,
		Phone:    req.Phone,
		Birthday: req.Birthday,
	}

	if err := s.validatePatient(patient); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// Update applies a partial update: only non-nil request fields change the
// stored entity, and the result is re-validated before it is written.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) error {
	return s.repo.Update(ctx, id, func(patient *model.Patient) error {
		if req.Name != nil {
			patient.Name = *req.Name
		}
		if req.Phone != nil {
			patient.Phone = *req.Phone
		}
		if req.Birthday != nil {
			patient.Birthday = *req.Birthday
		}
		return s.validatePatient(patient)
	})
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (s *Service) validatePatient(patient *model.Patient) error {
	if patient.Birthday.IsZero() {
		return apperr.NewValidation("invalid patient: birthday is required")
	}
	return validator.Check(s.validate, "patient", patient)
}
