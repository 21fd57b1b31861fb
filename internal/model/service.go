package model

import (
	"github.com/google/uuid"
)

// Service is a billable clinic service from the price list.
type Service struct {
	ID    uuid.UUID `db:"uuid" json:"uuid"`
	Name  string    `db:"name" json:"name" validate:"required"`
	Price int       `db:"price" json:"price" validate:"gte=0"`
}

type CreateServiceRequest struct {
	Name string `json:"name" binding:"required"`
	// Price defaults to 0 when omitted.
	Price *int `json:"price"`
}

type UpdateServiceRequest struct {
	Name  *string `json:"name"`
	Price *int    `json:"price"`
}
