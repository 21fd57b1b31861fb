package model

import (
	"github.com/google/uuid"
)

// User is a credential holder for the session layer. Users are not
// related to any clinic entity.
type User struct {
	ID           uuid.UUID `db:"uuid" json:"uuid"`
	Username     string    `db:"username" json:"username" validate:"required"`
	PasswordHash string    `db:"password_hash" json:"-"`
}

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
