package record

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

// Service orchestrates record writes: payload validation, then reference
// checks against the patient and doctor stores, then persistence. A record
// is never written pointing at a nonexistent patient or doctor.
type Service struct {
	repo     repository.RecordRepository
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
	validate *v10.Validate
}

func NewService(repo repository.RecordRepository, patients repository.PatientRepository, doctors repository.DoctorRepository) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		doctors:  doctors,
		validate: validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateRecordRequest) (*model.Record, error) {
	patientID, err := parseRef("patient_uuid", req.PatientUUID)
	if err != nil {
		return nil, err
	}
	doctorID, err := parseRef("doctor_uuid", req.DoctorUUID)
	if err != nil {
		return nil, err
	}
	if req.Date.IsZero() {
		return nil, apperr.NewValidation("invalid record: date is required")
	}

	record := &model.Record{
		ID:           uuid.New(),
		PatientID:    patientID,
		DoctorID:     doctorID,
		Date:         req.Date,
		UsedServices: req.UsedServices,
		Disease:      req.Disease,
		Discharge:    req.Discharge,
	}
	if req.PaymentStatus != nil {
		record.PaymentStatus = *req.PaymentStatus
	}
	if req.Sum != nil {
		record.Sum = *req.Sum
	}

	if err := validator.Check(s.validate, "record", record); err != nil {
		return nil, err
	}
	if err := s.checkPatientRef(ctx, patientID); err != nil {
		return nil, err
	}
	if err := s.checkDoctorRef(ctx, doctorID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	return record, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Record, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return record, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// Update applies a partial update. References are re-checked only when the
// payload changes them; the check runs before the row is written.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateRecordRequest) error {
	return s.repo.Update(ctx, id, func(record *model.Record) error {
		if req.PatientUUID != nil {
			patientID, err := parseRef("patient_uuid", *req.PatientUUID)
			if err != nil {
				return err
			}
			record.PatientID = patientID
		}
		if req.DoctorUUID != nil {
			doctorID, err := parseRef("doctor_uuid", *req.DoctorUUID)
			if err != nil {
				return err
			}
			record.DoctorID = doctorID
		}
		if req.Date != nil {
			record.Date = *req.Date
		}
		if req.UsedServices != nil {
			record.UsedServices = *req.UsedServices
		}
		if req.Disease != nil {
			record.Disease = *req.Disease
		}
		if req.Discharge != nil {
			record.Discharge = *req.Discharge
		}
		if req.PaymentStatus != nil {
			record.PaymentStatus = *req.PaymentStatus
		}
		if req.Sum != nil {
			record.Sum = *req.Sum
		}

		if err := validator.Check(s.validate, "record", record); err != nil {
			return err
		}
		if req.PatientUUID != nil {
			if err := s.checkPatientRef(ctx, record.PatientID); err != nil {
				return err
			}
		}
		if req.DoctorUUID != nil {
			if err := s.checkDoctorRef(ctx, record.DoctorID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (s *Service) checkPatientRef(ctx context.Context, id uuid.UUID) error {
	if _, err := s.patients.Get(ctx, id); err != nil {
		if apperr.IsNotFound(err) {
			return apperr.NewReference("patient", id.String())
		}
		return fmt.Errorf("failed to check patient reference: %w", err)
	}
	return nil
}

func (s *Service) checkDoctorRef(ctx context.Context, id uuid.UUID) error {
	if _, err := s.doctors.Get(ctx, id); err != nil {
		if apperr.IsNotFound(err) {
			return apperr.NewReference("doctor", id.String())
		}
		return fmt.Errorf("failed to check doctor reference: %w", err)
	}
	return nil
}

func parseRef(field, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, apperr.NewValidation("invalid record: %s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.NewValidation("invalid record: %s is not a valid uuid", field)
	}
	return id, nil
}
