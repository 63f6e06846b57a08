package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/financeflow/financeflow_backend/internal/adapters/memory"
	"github.com/financeflow/financeflow_backend/internal/adapters/sqlitestore"
	"github.com/financeflow/financeflow_backend/internal/apperrors"
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	"github.com/financeflow/financeflow_backend/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// The user suite pairs a mocked gateway with the real sqlite snapshot store
// so the credential-invalidation side effect is verified against the actual
// persistence layer.
type UserServiceTestSuite struct {
	suite.Suite
	mockGateway *MockRemoteGateway
	store       *sqlitestore.SessionStore
	directory   *memory.UserDirectory
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockGateway = new(MockRemoteGateway)
	store, err := sqlitestore.NewSessionStore(":memory:")
	suite.Require().NoError(err)
	suite.store = store
	suite.directory = memory.NewUserDirectory()
}

func (suite *UserServiceTestSuite) TearDownTest() {
	_ = suite.store.Close()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestListUsers_RemoteSuccess() {
	ctx := context.Background()
	remote := []domain.User{{UserID: "42", Name: "Remote User", Role: domain.RoleDepositor}}
	suite.mockGateway.On("ListUsers", ctx).Return(remote, nil).Once()

	svc := services.NewUserService(suite.mockGateway, suite.directory, suite.store)
	users, err := svc.ListUsers(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(users, 1)
	suite.Equal("42", users[0].UserID)
}

func (suite *UserServiceTestSuite) TestListUsers_GatewayDownFallsBackAndKeepsToken() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.SaveSnapshot(ctx, domain.User{UserID: "3", Role: domain.RoleAdmin}, "token_3_1700000000000"))
	suite.mockGateway.On("ListUsers", ctx).Return(nil, apperrors.ErrRemoteUnavailable).Once()

	svc := services.NewUserService(suite.mockGateway, suite.directory, suite.store)
	users, err := svc.ListUsers(ctx)

	suite.Require().NoError(err)
	suite.Len(users, 3) // seeded directory

	// An unreachable gateway says nothing about the token's validity.
	suite.Equal("token_3_1700000000000", suite.store.Token(ctx))
}

func (suite *UserServiceTestSuite) TestListUsers_GatewayUnauthorizedClearsToken() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.SaveSnapshot(ctx, domain.User{UserID: "3", Role: domain.RoleAdmin}, "token_3_1700000000000"))
	rejected := fmt.Errorf("%w: gateway returned 401", apperrors.ErrUnauthorized)
	suite.mockGateway.On("ListUsers", ctx).Return(nil, rejected).Once()

	svc := services.NewUserService(suite.mockGateway, suite.directory, suite.store)
	users, err := svc.ListUsers(ctx)

	// The listing still succeeds through the local directory, but the
	// rejected token is wiped so it is not replayed.
	suite.Require().NoError(err)
	suite.Len(users, 3)
	suite.Empty(suite.store.Token(ctx))

	_, _, snapErr := suite.store.LoadSnapshot(ctx)
	suite.ErrorIs(snapErr, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestListUsers_NoGatewayUsesDirectory() {
	ctx := context.Background()

	svc := services.NewUserService(nil, suite.directory, suite.store)
	users, err := svc.ListUsers(ctx)

	suite.Require().NoError(err)
	suite.Len(users, 3)
}
