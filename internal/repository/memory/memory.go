// Package memory provides map-backed implementations of the repository
// interfaces with the same error semantics as the postgres ones. They
// back the test suites and small single-process setups.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/medlight/clinic-api/internal/model"
	"github.com/medlight/clinic-api/internal/repository"
	apperr "github.com/medlight/clinic-api/pkg/errors"
)

type PatientRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]model.Patient
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{rows: make(map[uuid.UUID]model.Patient)}
}

func (r *PatientRepository) Create(_ context.Context, p *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[p.ID]; ok {
		return apperr.NewConflict("patient", p.ID.String())
	}
	r.rows[p.ID] = *p
	return nil
}

func (r *PatientRepository) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, apperr.NewNotFound("patient", id.String())
	}
	return &row, nil
}

func (r *PatientRepository) List(_ context.Context) ([]*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Patient, 0, len(r.rows))
	for _, row := range r.rows {
		row := row
		out = append(out, &row)
	}
	return out, nil
}

func (r *PatientRepository) Update(_ context.Context, id uuid.UUID, fn func(*model.Patient) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return apperr.NewNotFound("patient", id.String())
	}
	if err := fn(&row); err != nil {
		return err
	}
	r.rows[id] = row
	return nil
}

func (r *PatientRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return apperr.NewNotFound("patient", id.String())
	}
	delete(r.rows, id)
	return nil
}

// Len reports the current population; used by tests to assert that
// failed writes leave the store unchanged.
func (r *PatientRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type DoctorRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]model.Doctor
}

func NewDoctorRepository() *DoctorRepository {
	return &DoctorRepository{rows: make(map[uuid.UUID]model.Doctor)}
}

func (r *DoctorRepository) Create(_ context.Context, d *model.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[d.ID]; ok {
		return apperr.NewConflict("doctor", d.ID.String())
	}
	r.rows[d.ID] = *d
	return nil
}

func (r *DoctorRepository) Get(_ context.Context, id uuid.UUID) (*model.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, apperr.NewNotFound("doctor", id.String())
	}
	return &row, nil
}

func (r *DoctorRepository) List(_ context.Context) ([]*model.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Doctor, 0, len(r.rows))
	for _, row := range r.rows {
		row := row
		out = append(out, &row)
	}
	return out, nil
}

func (r *DoctorRepository) Update(_ context.Context, id uuid.UUID, fn func(*model.Doctor) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return apperr.NewNotFound("doctor", id.String())
	}
	if err := fn(&row); err != nil {
		return err
	}
	r.rows[id] = row
	return nil
}

func (r *DoctorRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return apperr.NewNotFound("doctor", id.String())
	}
	delete(r.rows, id)
	return nil
}

func (r *DoctorRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type ServiceRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]model.Service
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{rows: make(map[uuid.UUID]model.Service)}
}

func (r *ServiceRepository) Create(_ context.Context, s *model.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[s.ID]; ok {
		return apperr.NewConflict("service", s.ID.String())
	}
	r.rows[s.ID] = *s
	return nil
}

func (r *ServiceRepository) Get(_ context.Context, id uuid.UUID) (*model.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, apperr.NewNotFound("service", id.String())
	}
	return &row, nil
}

func (r *ServiceRepository) List(_ context.Context) ([]*model.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Service, 0, len(r.rows))
	for _, row := range r.rows {
		row := row
		out = append(out, &row)
	}
	return out, nil
}

func (r *ServiceRepository) Update(_ context.Context, id uuid.UUID, fn func(*model.Service) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return apperr.NewNotFound("service", id.String())
	}
	if err := fn(&row); err != nil {
		return err
	}
	r.rows[id] = row
	return nil
}

func (r *ServiceRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return apperr.NewNotFound("service", id.String())
	}
	delete(r.rows, id)
	return nil
}

func (r *ServiceRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type RecordRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]model.Record
}

func NewRecordRepository() *RecordRepository {
	return &RecordRepository{rows: make(map[uuid.UUID]model.Record)}
}

func (r *RecordRepository) Create(_ context.Context, rec *model.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[rec.ID]; ok {
		return apperr.NewConflict("record", rec.ID.String())
	}
	r.rows[rec.ID] = *rec
	return nil
}

func (r *RecordRepository) Get(_ context.Context, id uuid.UUID) (*model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, apperr.NewNotFound("record", id.String())
	}
	return &row, nil
}

func (r *RecordRepository) List(_ context.Context) ([]*model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Record, 0, len(r.rows))
	for _, row := range r.rows {
		row := row
		out = append(out, &row)
	}
	return out, nil
}

func (r *RecordRepository) Update(_ context.Context, id uuid.UUID, fn func(*model.Record) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return apperr.NewNotFound("record", id.String())
	}
	if err := fn(&row); err != nil {
		return err
	}
	r.rows[id] = row
	return nil
}

func (r *RecordRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return apperr.NewNotFound("record", id.String())
	}
	delete(r.rows, id)
	return nil
}

func (r *RecordRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type UserRepository struct {
	mu   sync.Mutex
	rows map[string]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{rows: make(map[string]model.User)}
}

func (r *UserRepository) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[u.Username]; ok {
		return apperr.NewConflict("user", u.Username)
	}
	r.rows[u.Username] = *u
	return nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[username]
	if !ok {
		return nil, &apperr.AppError{
			Kind:        apperr.KindNotFound,
			Description: fmt.Sprintf("user %s not found", username),
		}
	}
	return &row, nil
}

// interface conformance
var (
	_ repository.PatientRepository = (*PatientRepository)(nil)
	_ repository.DoctorRepository  = (*DoctorRepository)(nil)
	_ repository.ServiceRepository = (*ServiceRepository)(nil)
	_ repository.RecordRepository  = (*RecordRepository)(nil)
	_ repository.UserRepository    = (*UserRepository)(nil)
)
