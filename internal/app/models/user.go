package models

import (
	"time"
)

// Usuario defines the identity model based on the 'usuarios' table
type Usuario struct {
	ID           int64     `json:"id_usuario" db:"id_usuario"`       // Unique identifier for the account
	Email        string    `json:"email" db:"email"`                 // Account email address
	SenhaHash    string    `json:"-" db:"senha_hash"`                // Hashed password (excluded from JSON)
	TipoUsuario  Role      `json:"tipo_usuario" db:"tipo_usuario"`   // Account role (ESTUDANTE, PROFESSOR or COORDENACAO)
	CriadoEm     time.Time `json:"criado_em" db:"criado_em"`         // Timestamp when the account was created
	AtualizadoEm time.Time `json:"atualizado_em" db:"atualizado_em"` // Timestamp when the account was last updated
}
