package services_test

import (
	"context"
	"testing"

	"github.com/financeflow/financeflow_backend/internal/adapters/memory"
	"github.com/financeflow/financeflow_backend/internal/apperrors"
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/financeflow/financeflow_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SessionStore ---
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) SaveSnapshot(ctx context.Context, user domain.User, token string) error {
	args := m.Called(ctx, user, token)
	return args.Error(0)
}

func (m *MockSessionStore) LoadSnapshot(ctx context.Context) (*domain.User, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockSessionStore) ClearSnapshot(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Test Suite ---

// The session suite pairs a mocked snapshot store with the real ledger
// engine so that identity switches are observable in the collections.
type SessionServiceTestSuite struct {
	suite.Suite
	mockStore *MockSessionStore
	ledger    portssvc.LedgerSvcFacade
	service   portssvc.SessionSvcFacade
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.mockStore = new(MockSessionStore)
	suite.ledger = services.NewLedgerService(memory.NewLedgerRepository(), services.NewPlanService(), nil, nil)
	suite.service = services.NewSessionService(suite.mockStore, suite.ledger)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (suite *SessionServiceTestSuite) TestActivate_PersistsAndSeeds() {
	ctx := context.Background()
	user := domain.User{UserID: "1", Name: "John Depositor", Email: "john@example.com", Role: domain.RoleDepositor}

	suite.mockStore.On("SaveSnapshot", ctx, user, "tok").Return(nil).Once()

	suite.Require().NoError(suite.service.Activate(ctx, user, "tok"))

	current, err := suite.service.Current(ctx)
	suite.Require().NoError(err)
	suite.Equal("1", current.UserID)

	deposits, err := suite.ledger.ListDeposits(ctx, "1")
	suite.Require().NoError(err)
	suite.Len(deposits, 2)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestActivate_SwitchDiscardsPreviousUser() {
	ctx := context.Background()
	john := domain.User{UserID: "1", Role: domain.RoleDepositor}
	jane := domain.User{UserID: "2", Role: domain.RoleBorrower}

	suite.mockStore.On("SaveSnapshot", ctx, mock.AnythingOfType("domain.User"), "tok").Return(nil).Twice()

	suite.Require().NoError(suite.service.Activate(ctx, john, "tok"))
	suite.Require().NoError(suite.service.Activate(ctx, jane, "tok"))

	// John's collections are gone, Jane's seed is in place.
	johnDeposits, err := suite.ledger.ListDeposits(ctx, "1")
	suite.Require().NoError(err)
	suite.Empty(johnDeposits)

	janeLoans, err := suite.ledger.ListLoans(ctx, "2")
	suite.Require().NoError(err)
	suite.Len(janeLoans, 1)
}

func (suite *SessionServiceTestSuite) TestActivate_SameUserReseedsWithoutClear() {
	ctx := context.Background()
	john := domain.User{UserID: "1", Role: domain.RoleDepositor}

	suite.mockStore.On("SaveSnapshot", ctx, john, "tok").Return(nil).Twice()

	suite.Require().NoError(suite.service.Activate(ctx, john, "tok"))
	suite.Require().NoError(suite.service.Activate(ctx, john, "tok"))

	deposits, err := suite.ledger.ListDeposits(ctx, "1")
	suite.Require().NoError(err)
	suite.Len(deposits, 2)
}

func (suite *SessionServiceTestSuite) TestDeactivate_ClearsLedgerAndSnapshot() {
	ctx := context.Background()
	john := domain.User{UserID: "1", Role: domain.RoleDepositor}

	suite.mockStore.On("SaveSnapshot", ctx, john, "tok").Return(nil).Once()
	suite.mockStore.On("ClearSnapshot", ctx).Return(nil).Once()

	suite.Require().NoError(suite.service.Activate(ctx, john, "tok"))
	suite.Require().NoError(suite.service.Deactivate(ctx))

	deposits, err := suite.ledger.ListDeposits(ctx, "1")
	suite.Require().NoError(err)
	suite.Empty(deposits)

	suite.mockStore.On("LoadSnapshot", ctx).Return(nil, "", apperrors.ErrNotFound).Once()
	current, err := suite.service.Current(ctx)
	suite.Require().Error(err)
	suite.Nil(current)
	suite.ErrorIs(err, apperrors.ErrNotAuthenticated)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestDeactivate_WithoutActiveSessionStillClearsSnapshot() {
	ctx := context.Background()
	suite.mockStore.On("ClearSnapshot", ctx).Return(nil).Once()

	suite.Require().NoError(suite.service.Deactivate(ctx))
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestCurrent_FallsBackToSnapshot() {
	ctx := context.Background()
	stored := &domain.User{UserID: "1", Role: domain.RoleDepositor}

	suite.mockStore.On("LoadSnapshot", ctx).Return(stored, "tok", nil).Once()

	current, err := suite.service.Current(ctx)
	suite.Require().NoError(err)
	suite.Equal("1", current.UserID)

	// The restored identity gets its collections back, not empty lists.
	deposits, err := suite.ledger.ListDeposits(ctx, "1")
	suite.Require().NoError(err)
	suite.Len(deposits, 2)

	// Cached now; the store is not consulted again.
	again, err := suite.service.Current(ctx)
	suite.Require().NoError(err)
	suite.Equal("1", again.UserID)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestRestore_ReseedsPersistedIdentity() {
	ctx := context.Background()
	stored := &domain.User{UserID: "2", Role: domain.RoleBorrower}

	suite.mockStore.On("LoadSnapshot", ctx).Return(stored, "tok", nil).Once()

	suite.Require().NoError(suite.service.Restore(ctx))

	loans, err := suite.ledger.ListLoans(ctx, "2")
	suite.Require().NoError(err)
	suite.Len(loans, 1)

	current, err := suite.service.Current(ctx)
	suite.Require().NoError(err)
	suite.Equal("2", current.UserID)
}

func (suite *SessionServiceTestSuite) TestRestore_NoSnapshotIsNotAnError() {
	ctx := context.Background()
	suite.mockStore.On("LoadSnapshot", ctx).Return(nil, "", apperrors.ErrNotFound).Once()

	suite.Require().NoError(suite.service.Restore(ctx))
	suite.mockStore.AssertExpectations(suite.T())
}
