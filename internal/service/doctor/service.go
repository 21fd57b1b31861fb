package doctor

import (
	"context"
	"fmt"

	v10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/medlight/clinic-api/internal/model"
	"github.com/medlight/clinic-api/internal/repository"
	"github.com/medlight/clinic-api/pkg/validator"
)

type Service struct {
	repo     repository.DoctorRepository
	validate *v10.Validate
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		ID:            uuid.New(),
		Name:          req.Name,
		Phone:         req.Phone,
		Speciality:    req.Speciality,
		Qualification: req.Qualification,
	}

	if err := validator.Check(s.validate, "doctor", doctor); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) error {
	return s.repo.Update(ctx, id, func(doctor *model.Doctor) error {
		if req.Name != nil {
			doctor.Name = *req.Name
		}
		if req.Phone != nil {
			doctor.Phone = *req.Phone
		}
		if req.Speciality != nil {
			doctor.Speciality = *req.Speciality
		}
		if req.Qualification != nil {
			doctor.Qualification = *req.Qualification
		}
		return validator.Check(s.validate, "doctor", doctor)
	})
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return nil
}
