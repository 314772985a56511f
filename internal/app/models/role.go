package models

import "fmt"

// Role defines the user role type
type Role string

const (
	RoleEstudante   Role = "ESTUDANTE"
	RoleProfessor   Role = "PROFESSOR"
	RoleCoordenacao Role = "COORDENACAO"
)

// RoleTable describes where a role keeps its principal and enrollment rows.
// SQL identifiers are always taken from this closed mapping, never from
// request input.
type RoleTable struct {
	Table       string // principal table
	IDColumn    string // principal primary key column
	FieldColumn string // role-specific column (curso, departamento, setor)
	PivotTable  string // enrollment pivot table, empty for roles without one
	PivotKey    string // principal key column in the pivot table
}

var roleTables = map[Role]RoleTable{
	RoleEstudante: {
		Table:       "estudantes",
		IDColumn:    "id_estudante",
		FieldColumn: "curso",
		PivotTable:  "estudante_materia",
		PivotKey:    "id_estudante",
	},
	RoleProfessor: {
		Table:       "professores",
		IDColumn:    "id_professor",
		FieldColumn: "departamento",
		PivotTable:  "professor_materia",
		PivotKey:    "id_professor",
	},
	RoleCoordenacao: {
		Table:       "coordenacao",
		IDColumn:    "id_coordenador",
		FieldColumn: "setor",
	},
}

// ParseRole converts a wire-level tipo_usuario value into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if _, ok := roleTables[role]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

// Valid reports whether the role is one of the known role values.
func (r Role) Valid() bool {
	_, ok := roleTables[r]
	return ok
}

// Table returns the table mapping for the role. The role must be valid.
func (r Role) Table() RoleTable {
	return roleTables[r]
}

// HasEnrollments reports whether principals of this role link to subjects.
// Coordination staff never participate in enrollments.
func (r Role) HasEnrollments() bool {
	return roleTables[r].PivotTable != ""
}

// Roles returns all known roles.
func Roles() []Role {
	return []Role{RoleEstudante, RoleProfessor, RoleCoordenacao}
}
