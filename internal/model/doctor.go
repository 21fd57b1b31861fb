package model

import (
	"github.com/google/uuid"
)

type Doctor struct {
	ID            uuid.UUID `db:"uuid" json:"uuid"`
	Name          string    `db:"name" json:"name" validate:"required"`
	Phone         string    `db:"phone" json:"phone" validate:"required,numeric,len=9"`
	Speciality    string    `db:"speciality" json:"speciality" validate:"required"`
	Qualification string    `db:"qualification" json:"qualification" validate:"required"`
}

type CreateDoctorRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Speciality    string `json:"speciality" binding:"required"`
	Qualification string `json:"qualification" binding:"required"`
}

type UpdateDoctorRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Speciality    *string `json:"speciality"`
	Qualification *string `json:"qualification"`
}
