package dto

// UpdateUserRequest carries the full field set of an account edit.
// NovaSenha is optional: empty means the password stays unchanged.
type UpdateUserRequest struct {
	Email           string  `json:"email" binding:"required"`
	NovaSenha       string  `json:"nova_senha"`
	TipoUsuario     string  `json:"tipo_usuario" binding:"required"`
	Nome            string  `json:"nome" binding:"required"`
	Matricula       string  `json:"matricula" binding:"required"`
	CampoEspecifico string  `json:"campo_especifico"`
	IDMaterias      []int64 `json:"id_materias"`
}

// UserDetailsRequest identifies a principal by email, matricula and role
type UserDetailsRequest struct {
	Email       string `json:"email" binding:"required"`
	Matricula   string `json:"matricula" binding:"required"`
	TipoUsuario string `json:"tipo_usuario" binding:"required"`
}

// UserDetails is the public view of a principal and its account.
// IDMaterias is present (possibly empty) for students and teachers and
// null for coordination staff.
type UserDetails struct {
	Nome            string  `json:"nome"`
	Matricula       string  `json:"matricula"`
	CampoEspecifico string  `json:"campo_especifico"`
	Email           string  `json:"email"`
	IDUsuario       int64   `json:"id_usuario"`
	TipoUsuario     string  `json:"tipo_usuario"`
	IDMaterias      []int64 `json:"id_materias"`
}

// UserDetailsResponse wraps the detail lookup result
type UserDetailsResponse struct {
	Message string       `json:"message"`
	Data    *UserDetails `json:"data"`
}

// StudentSummary is one row of the student roster listing
type StudentSummary struct {
	IDEstudante int64  `json:"id_estudante"`
	Nome        string `json:"nome"`
	Matricula   string `json:"matricula"`
	Email       string `json:"email"`
	Curso       string `json:"curso"`
}

// TeacherSummary is one row of the teacher roster listing
type TeacherSummary struct {
	IDProfessor  int64  `json:"id_professor"`
	Nome         string `json:"nome"`
	Matricula    string `json:"matricula"`
	Email        string `json:"email"`
	Departamento string `json:"departamento"`
}
