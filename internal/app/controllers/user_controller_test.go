package controllers_test

import (
	"net/http"
	"testing"

	"github.com/rlacerda/gestao-escolar/internal/app/models/dto"
	"github.com/rlacerda/gestao-escolar/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditar(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPut, "/usuarios/editar/10", map[string]any{
		"email":            "ana@escola.br",
		"nome":             "Ana Souza",
		"matricula":        "20240001",
		"tipo_usuario":     "ESTUDANTE",
		"campo_especifico": "Engenharia",
		"id_materias":      []int64{2, 5},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Usuário ID 10 (ESTUDANTE) atualizado com sucesso.", decode(t, w)["message"])
	assert.Equal(t, int64(10), f.user.gotUpdateID)
	require.NotNil(t, f.user.gotUpdate)
	assert.Equal(t, []int64{2, 5}, f.user.gotUpdate.IDMaterias)
}

func TestEditar_InvalidID(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPut, "/usuarios/editar/abc", map[string]any{
		"email":        "ana@escola.br",
		"nome":         "Ana",
		"matricula":    "20240001",
		"tipo_usuario": "ESTUDANTE",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ID de usuário inválido.", decode(t, w)["error"])
	assert.Nil(t, f.user.gotUpdate)
}

func TestEditar_MissingFields(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPut, "/usuarios/editar/10", map[string]any{
		"email": "ana@escola.br",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email, Nome, Matrícula e Tipo de Usuário são obrigatórios.", decode(t, w)["error"])
}

func TestEditar_PrincipalNotFound(t *testing.T) {
	f := newFixture()
	f.user.updateErr = apperrors.NewCustomError(apperrors.ErrUserNotFound,
		"Usuário principal não encontrado para edição. Verifique o tipo_usuario.")

	w := f.do(t, http.MethodPut, "/usuarios/editar/10", map[string]any{
		"email":        "ana@escola.br",
		"nome":         "Ana",
		"matricula":    "20240001",
		"tipo_usuario": "PROFESSOR",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t,
		"Usuário principal não encontrado para edição. Verifique o tipo_usuario.",
		decode(t, w)["error"])
}

func TestEditar_Conflict(t *testing.T) {
	f := newFixture()
	f.user.updateErr = apperrors.NewCustomError(apperrors.ErrMatriculaAlreadyExists,
		"E-mail ou Matrícula já cadastrados.")

	w := f.do(t, http.MethodPut, "/usuarios/editar/10", map[string]any{
		"email":        "ana@escola.br",
		"nome":         "Ana",
		"matricula":    "20240002",
		"tipo_usuario": "ESTUDANTE",
	})

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestExcluir(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodDelete, "/usuarios/excluir/42", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Usuário ID 42 excluído com sucesso.", decode(t, w)["message"])
	assert.Equal(t, int64(42), f.user.gotDeleteID)
}

func TestExcluir_NotFound(t *testing.T) {
	f := newFixture()
	f.user.deleteErr = apperrors.NewCustomError(apperrors.ErrUserNotFound, "Usuário não encontrado.")

	w := f.do(t, http.MethodDelete, "/usuarios/excluir/42", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuário não encontrado.", decode(t, w)["error"])
}

func TestExcluir_InvalidID(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodDelete, "/usuarios/excluir/abc", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuscarDetalhes(t *testing.T) {
	f := newFixture()
	f.user.details = &dto.UserDetails{
		Nome:            "Ana Souza",
		Matricula:       "20240001",
		CampoEspecifico: "Engenharia",
		Email:           "ana@escola.br",
		IDUsuario:       10,
		TipoUsuario:     "ESTUDANTE",
		IDMaterias:      []int64{},
	}

	w := f.do(t, http.MethodPost, "/usuarios/buscar_detalhes", map[string]any{
		"email":        "ana@escola.br",
		"matricula":    "20240001",
		"tipo_usuario": "ESTUDANTE",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Detalhes do usuário encontrados.", body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana Souza", data["nome"])
	assert.Equal(t, float64(10), data["id_usuario"])

	// An empty enrollment list stays an empty array on the wire, not null.
	ids, ok := data["id_materias"].([]any)
	require.True(t, ok)
	assert.Empty(t, ids)
}

func TestBuscarDetalhes_MissingFields(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPost, "/usuarios/buscar_detalhes", map[string]any{
		"email": "ana@escola.br",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t,
		"Email, Matrícula e Tipo de Usuário são obrigatórios para a consulta.",
		decode(t, w)["error"])
}

func TestBuscarDetalhes_NotFound(t *testing.T) {
	f := newFixture()
	f.user.detailsErr = apperrors.NewCustomError(apperrors.ErrUserNotFound,
		"Usuário não encontrado com as credenciais fornecidas.")

	w := f.do(t, http.MethodPost, "/usuarios/buscar_detalhes", map[string]any{
		"email":        "nobody@escola.br",
		"matricula":    "999",
		"tipo_usuario": "PROFESSOR",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
}
