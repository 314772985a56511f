package dto

// CreateSubjectRequest represents a new catalog subject
type CreateSubjectRequest struct {
	NomeMateria string `json:"nome_materia" binding:"required"`
}

// CreateSubjectResponse represents a successfully created subject
type CreateSubjectResponse struct {
	Message     string `json:"message"`
	IDMateria   int64  `json:"id_materia"`
	NomeMateria string `json:"nome_materia"`
}
