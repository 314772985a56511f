package models

// Principal is a role-specific detail row (estudante, professor or
// coordenador). The column holding CampoEspecifico depends on the role,
// see RoleTable.FieldColumn.
type Principal struct {
	ID              int64  `json:"id"`
	Nome            string `json:"nome"`
	Matricula       string `json:"matricula"`
	CampoEspecifico string `json:"campo_especifico"`
	UserID          int64  `json:"id_usuario_fk"`
}

// PrincipalDetails is a principal joined with its owning account,
// as returned by the detail lookup.
type PrincipalDetails struct {
	PrincipalID     int64
	Nome            string
	Matricula       string
	CampoEspecifico string
	Email           string
	UserID          int64
}

// RosterEntry is a principal row joined with the account email, used by
// the per-subject student and teacher listings.
type RosterEntry struct {
	PrincipalID     int64
	Nome            string
	Matricula       string
	Email           string
	CampoEspecifico string
}
