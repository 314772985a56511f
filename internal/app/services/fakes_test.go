package services

import (
	"context"

	"github.com/rlacerda/gestao-escolar/internal/app/models"
	"github.com/rlacerda/gestao-escolar/internal/db"
)

// callLog records the order of repository calls so tests can assert
// write ordering inside a transaction.
type callLog struct {
	calls []string
}

func (l *callLog) record(name string) {
	l.calls = append(l.calls, name)
}

// fakeTxRunner runs the transaction function with a nil pgx.Tx. A fn
// error is returned as-is, standing in for the rollback path.
type fakeTxRunner struct {
	beginErr error
	began    int
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.began++
	return fn(ctx, nil)
}

type fakeUserRepo struct {
	log *callLog

	createID  int64
	createErr error
	created   *models.Usuario

	updateAffected int64
	updateErr      error
	updatedEmail   string
	updatedHash    *string

	deleteAffected int64
	deleteErr      error
	deletedID      int64

	user       *models.Usuario
	getByEmail error
}

func (f *fakeUserRepo) Create(ctx context.Context, q db.Querier, u *models.Usuario) (int64, error) {
	f.log.record("users.Create")
	f.created = u
	return f.createID, f.createErr
}

func (f *fakeUserRepo) Update(ctx context.Context, q db.Querier, id int64, email string, senhaHash *string) (int64, error) {
	f.log.record("users.Update")
	f.updatedEmail = email
	f.updatedHash = senhaHash
	return f.updateAffected, f.updateErr
}

func (f *fakeUserRepo) Delete(ctx context.Context, q db.Querier, id int64) (int64, error) {
	f.log.record("users.Delete")
	f.deletedID = id
	return f.deleteAffected, f.deleteErr
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	f.log.record("users.GetByEmail")
	if f.getByEmail != nil {
		return nil, f.getByEmail
	}
	return f.user, nil
}

type fakePrincipalRepo struct {
	log *callLog

	createID   int64
	createErr  error
	created    *models.Principal
	createRole models.Role

	updateErr    error
	updatedNome  string
	updatedCampo string

	findID  int64
	findErr error

	inUse        bool
	inUseErr     error
	inUseExclude int64

	details    *models.PrincipalDetails
	detailsErr error

	roster    []*models.RosterEntry
	rosterErr error
	rosterID  int64
}

func (f *fakePrincipalRepo) Create(ctx context.Context, q db.Querier, role models.Role, p *models.Principal) (int64, error) {
	f.log.record("principals.Create")
	f.created = p
	f.createRole = role
	return f.createID, f.createErr
}

func (f *fakePrincipalRepo) Update(ctx context.Context, q db.Querier, role models.Role, principalID int64, nome, matricula, campo string) error {
	f.log.record("principals.Update")
	f.updatedNome = nome
	f.updatedCampo = campo
	return f.updateErr
}

func (f *fakePrincipalRepo) FindIDByUserID(ctx context.Context, q db.Querier, role models.Role, userID int64) (int64, error) {
	f.log.record("principals.FindIDByUserID")
	return f.findID, f.findErr
}

func (f *fakePrincipalRepo) MatriculaInUse(ctx context.Context, q db.Querier, matricula string, excludeUserID int64) (bool, error) {
	f.log.record("principals.MatriculaInUse")
	f.inUseExclude = excludeUserID
	return f.inUse, f.inUseErr
}

func (f *fakePrincipalRepo) GetDetails(ctx context.Context, role models.Role, email, matricula string) (*models.PrincipalDetails, error) {
	f.log.record("principals.GetDetails")
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	return f.details, nil
}

func (f *fakePrincipalRepo) ListBySubject(ctx context.Context, role models.Role, materiaID int64) ([]*models.RosterEntry, error) {
	f.log.record("principals.ListBySubject")
	f.rosterID = materiaID
	return f.roster, f.rosterErr
}

type fakeEnrollmentRepo struct {
	log *callLog

	insertErr      error
	insertedIDs    []int64
	insertedPrinID int64
	insertedRole   models.Role

	deleteErr     error
	deletedPrinID int64

	listIDs []int64
	listErr error
}

func (f *fakeEnrollmentRepo) Insert(ctx context.Context, q db.Querier, role models.Role, principalID int64, materiaIDs []int64) error {
	f.log.record("enrollments.Insert")
	f.insertedRole = role
	f.insertedPrinID = principalID
	f.insertedIDs = materiaIDs
	return f.insertErr
}

func (f *fakeEnrollmentRepo) DeleteAll(ctx context.Context, q db.Querier, role models.Role, principalID int64) error {
	f.log.record("enrollments.DeleteAll")
	f.deletedPrinID = principalID
	return f.deleteErr
}

func (f *fakeEnrollmentRepo) ListIDs(ctx context.Context, role models.Role, principalID int64) ([]int64, error) {
	f.log.record("enrollments.ListIDs")
	return f.listIDs, f.listErr
}

type fakeSubjectRepo struct {
	materias []*models.Materia
	getErr   error

	createID  int64
	createErr error
	created   *models.Materia
}

func (f *fakeSubjectRepo) GetAll(ctx context.Context) ([]*models.Materia, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.materias, nil
}

func (f *fakeSubjectRepo) Create(ctx context.Context, m *models.Materia) error {
	f.created = m
	if f.createErr != nil {
		return f.createErr
	}
	m.ID = f.createID
	return nil
}
