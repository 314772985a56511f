package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rlacerda/gestao-escolar/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentsBySubject(t *testing.T) {
	principals := &fakePrincipalRepo{
		log: &callLog{},
		roster: []*models.RosterEntry{
			{PrincipalID: 7, Nome: "Ana", Matricula: "20240001", Email: "ana@escola.br", CampoEspecifico: "Engenharia"},
		},
	}
	svc := NewRosterService(principals)

	students, err := svc.StudentsBySubject(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(3), principals.rosterID)
	require.Len(t, students, 1)
	assert.Equal(t, int64(7), students[0].IDEstudante)
	assert.Equal(t, "Engenharia", students[0].Curso)
}

func TestTeachersBySubject(t *testing.T) {
	principals := &fakePrincipalRepo{
		log: &callLog{},
		roster: []*models.RosterEntry{
			{PrincipalID: 2, Nome: "Bruno", Matricula: "P-100", Email: "bruno@escola.br", CampoEspecifico: "Exatas"},
		},
	}
	svc := NewRosterService(principals)

	teachers, err := svc.TeachersBySubject(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, teachers, 1)
	assert.Equal(t, int64(2), teachers[0].IDProfessor)
	assert.Equal(t, "Exatas", teachers[0].Departamento)
}

func TestStudentsBySubject_EmptyRosterIsNotNil(t *testing.T) {
	svc := NewRosterService(&fakePrincipalRepo{log: &callLog{}})

	students, err := svc.StudentsBySubject(context.Background(), 99)
	require.NoError(t, err)

	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestStudentsBySubject_RepositoryError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewRosterService(&fakePrincipalRepo{log: &callLog{}, rosterErr: boom})

	_, err := svc.StudentsBySubject(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}
