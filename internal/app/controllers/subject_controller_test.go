package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/rlacerda/gestao-escolar/internal/app/models"
	"github.com/rlacerda/gestao-escolar/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListarMaterias(t *testing.T) {
	f := newFixture()
	f.subject.materias = []*models.Materia{
		{ID: 1, Nome: "Cálculo I"},
		{ID: 2, Nome: "Física I"},
	}

	w := f.do(t, http.MethodGet, "/materias", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 2)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), first["id_materia"])
	assert.Equal(t, "Cálculo I", first["nome_materia"])
}

func TestListarMaterias_Error(t *testing.T) {
	f := newFixture()
	f.subject.getErr = errors.New("connection reset")

	w := f.do(t, http.MethodGet, "/materias", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Erro ao buscar matérias.", decode(t, w)["error"])
}

func TestCriarMateria(t *testing.T) {
	f := newFixture()
	f.subject.created = &models.Materia{ID: 9, Nome: "Cálculo I"}

	w := f.do(t, http.MethodPost, "/materias/nova", map[string]any{
		"nome_materia": "Cálculo I",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Matéria cadastrada com sucesso.", body["message"])
	assert.Equal(t, float64(9), body["id_materia"])
	assert.Equal(t, "Cálculo I", body["nome_materia"])
	assert.Equal(t, "Cálculo I", f.subject.gotNome)
}

func TestCriarMateria_MissingName(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPost, "/materias/nova", map[string]any{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "O nome da matéria é obrigatório.", decode(t, w)["error"])
}

func TestCriarMateria_Duplicate(t *testing.T) {
	f := newFixture()
	f.subject.createErr = apperrors.NewCustomError(apperrors.ErrSubjectAlreadyExists, "Esta matéria já existe.")

	w := f.do(t, http.MethodPost, "/materias/nova", map[string]any{
		"nome_materia": "Cálculo I",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Esta matéria já existe.", decode(t, w)["error"])
}
