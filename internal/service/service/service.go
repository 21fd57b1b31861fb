// Package service manages the clinic price list entries. The awkward
// import path mirrors the entity name; import it aliased where needed.
package service

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
	repo     repository.ServiceRepository
	validate *v10.Validate
}

func NewService(repo repository.ServiceRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error) {
	svc := &model.Service{
		ID:   uuid.New(),
		Name: req.Name,
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}

	if err := validator.Check(s.validate, "service", svc); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	svc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return svc, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Service, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateServiceRequest) error {
	return s.repo.Update(ctx, id, func(svc *model.Service) error {
		if req.Name != nil {
			svc.Name = *req.Name
		}
		if req.Price != nil {
			svc.Price = *req.Price
		}
		return validator.Check(s.validate, "service", svc)
	})
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}
