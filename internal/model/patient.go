package model

import (
	"github.com/google/uuid"
)

type Patient struct {
	ID       uuid.UUID `db:"uuid" json:"uuid"`
	Name     string    `db:"name" json:"name" validate:"required"`
	Phone    string    `db:"phone" json:"phone" validate:"required,numeric,len=9"`
	Birthday Date      `db:"birthday" json:"birthday"`
}

type CreatePatientRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Birthday Date   `json:"birthday"`
}

// UpdatePatientRequest carries a partial update. Nil fields (absent or
// JSON null) leave the stored value untouched.
type UpdatePatientRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Birthday *Date   `json:"birthday"`
}
