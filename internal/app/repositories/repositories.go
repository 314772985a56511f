package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	PrincipalRepository  *PrincipalRepository
	EnrollmentRepository *EnrollmentRepository
	SubjectRepository    *SubjectRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		PrincipalRepository:  NewPrincipalRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		SubjectRepository:    NewSubjectRepository(db),
	}
}
