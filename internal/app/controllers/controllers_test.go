package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rlacerda/gestao-escolar/internal/app/controllers"
	"github.com/rlacerda/gestao-escolar/internal/app/models"
	"github.com/rlacerda/gestao-escolar/internal/app/models/dto"
	"github.com/rlacerda/gestao-escolar/internal/app/routes"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuthService struct {
	registerID   int64
	registerRole models.Role
	registerErr  error
	gotRegister  *dto.RegisterRequest

	loginUser *models.Usuario
	loginErr  error
}

func (f *fakeAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (int64, models.Role, error) {
	f.gotRegister = req
	return f.registerID, f.registerRole, f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.Usuario, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginUser, nil
}

type fakeUserService struct {
	updateErr   error
	gotUpdateID int64
	gotUpdate   *dto.UpdateUserRequest

	deleteErr   error
	gotDeleteID int64

	details    *dto.UserDetails
	detailsErr error
}

func (f *fakeUserService) Update(ctx context.Context, userID int64, req *dto.UpdateUserRequest) error {
	f.gotUpdateID = userID
	f.gotUpdate = req
	return f.updateErr
}

func (f *fakeUserService) Delete(ctx context.Context, userID int64) error {
	f.gotDeleteID = userID
	return f.deleteErr
}

func (f *fakeUserService) GetDetails(ctx context.Context, req *dto.UserDetailsRequest) (*dto.UserDetails, error) {
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	return f.details, nil
}

type fakeSubjectService struct {
	materias []*models.Materia
	getErr   error

	created   *models.Materia
	createErr error
	gotNome   string
}

func (f *fakeSubjectService) GetAll(ctx context.Context) ([]*models.Materia, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.materias, nil
}

func (f *fakeSubjectService) Create(ctx context.Context, nome string) (*models.Materia, error) {
	f.gotNome = nome
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

type fakeRosterService struct {
	students    []dto.StudentSummary
	studentsErr error
	teachers    []dto.TeacherSummary
	teachersErr error
	gotID       int64
}

func (f *fakeRosterService) StudentsBySubject(ctx context.Context, materiaID int64) ([]dto.StudentSummary, error) {
	f.gotID = materiaID
	return f.students, f.studentsErr
}

func (f *fakeRosterService) TeachersBySubject(ctx context.Context, materiaID int64) ([]dto.TeacherSummary, error) {
	f.gotID = materiaID
	return f.teachers, f.teachersErr
}

type fixture struct {
	auth    *fakeAuthService
	user    *fakeUserService
	subject *fakeSubjectService
	roster  *fakeRosterService
	router  *gin.Engine
}

func newFixture() *fixture {
	f := &fixture{
		auth:    &fakeAuthService{},
		user:    &fakeUserService{},
		subject: &fakeSubjectService{},
		roster:  &fakeRosterService{},
	}

	nop := zerolog.Nop()
	f.router = gin.New()
	routes.SetupRouter(
		f.router,
		controllers.NewAuthController(f.auth, nop),
		controllers.NewUserController(f.user, nop),
		controllers.NewSubjectController(f.subject, nop),
		controllers.NewRosterController(f.roster, nop),
	)

	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "ok", data["status"])
}
