package model

import (
	"time"

	"github.com/google/uuid"
)

// Record is a medical record tying a patient visit to a doctor. The
// patient and doctor references are validated at write time only; deleting
// either entity afterwards leaves the record in place.
type Record struct {
	ID            uuid.UUID `db:"uuid" json:"uuid"`
	PatientID     uuid.UUID `db:"patient_uuid" json:"patient_uuid"`
	DoctorID      uuid.UUID `db:"doctor_uuid" json:"doctor_uuid"`
	Date          time.Time `db:"date" json:"date"`
	UsedServices  string    `db:"used_services" json:"used_services" validate:"required"`
	Disease       string    `db:"disease" json:"disease" validate:"required"`
	Discharge     string    `db:"discharge" json:"discharge" validate:"required"`
	PaymentStatus bool      `db:"payment_status" json:"payment_status"`
	Sum           int       `db:"sum" json:"sum" validate:"gte=0"`
}

type CreateRecordRequest struct {
	// PatientUUID comes from the body on POST /records and from the URL
	// on the nested POST /patients/:id form.
	PatientUUID   string    `json:"patient_uuid"`
	DoctorUUID    string    `json:"doctor_uuid" binding:"required"`
	Date          time.Time `json:"date"`
	UsedServices  string    `json:"used_services" binding:"required"`
	Disease       string    `json:"disease" binding:"required"`
	Discharge     string    `json:"discharge" binding:"required"`
	PaymentStatus *bool     `json:"payment_status"`
	Sum           *int      `json:"sum"`
}

type UpdateRecordRequest struct {
	PatientUUID   *string    `json:"patient_uuid"`
	DoctorUUID    *string    `json:"doctor_uuid"`
	Date          *time.Time `json:"date"`
	UsedServices  *string    `json:"used_services"`
	Disease       *string    `json:"disease"`
	Discharge     *string    `json:"discharge"`
	PaymentStatus *bool      `json:"payment_status"`
	Sum           *int       `json:"sum"`
}
