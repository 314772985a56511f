package models

// Materia defines the subject catalog model based on the 'materias' table
type Materia struct {
	ID   int64  `json:"id_materia" db:"id_materia"`
	Nome string `json:"nome_materia" db:"nome_materia"`
}
