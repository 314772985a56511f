package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Message     string `json:"message"`
	IDUsuario   int64  `json:"id_usuario"`
	TipoUsuario string `json:"tipo_usuario"`
}

// RegisterRequest represents a full registration request: account,
// principal record and optional initial enrollments.
type RegisterRequest struct {
	Email           string  `json:"email" binding:"required"`
	Senha           string  `json:"senha" binding:"required"`
	TipoUsuario     string  `json:"tipo_usuario" binding:"required"`
	Nome            string  `json:"nome" binding:"required"`
	Matricula       string  `json:"matricula" binding:"required"`
	CampoEspecifico string  `json:"campo_especifico"`
	IDMaterias      []int64 `json:"id_materias"`
}

// RegisterResponse represents a successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
