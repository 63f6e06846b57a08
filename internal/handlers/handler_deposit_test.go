package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/financeflow/financeflow_backend/internal/adapters/memory"
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/financeflow/financeflow_backend/internal/core/services"
	"github.com/financeflow/financeflow_backend/internal/dto"
	"github.com/financeflow/financeflow_backend/internal/handlers"
	"github.com/financeflow/financeflow_backend/internal/platform/config"
	"github.com/financeflow/financeflow_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// The deposit handler suite runs real plan and ledger services behind the
// actual router and auth middleware, so requests exercise the whole stack
// below the HTTP boundary.
type DepositHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	ledger    portssvc.LedgerSvcFacade
	jwtSecret string
}

func (suite *DepositHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	cfg := &config.Config{
		JWTSecret:     suite.jwtSecret,
		AuthRateLimit: "5-M",
	}

	plans := services.NewPlanService()
	suite.ledger = services.NewLedgerService(memory.NewLedgerRepository(), plans, nil, nil)

	container := &portssvc.ServiceContainer{
		Plan:   plans,
		Ledger: suite.ledger,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func TestDepositHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DepositHandlerTestSuite))
}

func (suite *DepositHandlerTestSuite) authHeader(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *DepositHandlerTestSuite) doJSON(method, path, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", suite.authHeader(userID))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DepositHandlerTestSuite) TestCreateDeposit_Success() {
	w := suite.doJSON(http.MethodPost, "/api/v1/deposits", "1", dto.CreateDepositRequest{
		Amount: decimal.NewFromInt(25000),
		PlanID: "2",
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.DepositResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("1", resp.UserID)
	suite.Equal("active", resp.Status)
	suite.Equal(int64(15), resp.DurationDays)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(25000)))
}

func (suite *DepositHandlerTestSuite) TestCreateDeposit_UnknownPlan() {
	w := suite.doJSON(http.MethodPost, "/api/v1/deposits", "1", dto.CreateDepositRequest{
		Amount: decimal.NewFromInt(1000),
		PlanID: "42",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DepositHandlerTestSuite) TestCreateDeposit_MissingFields() {
	w := suite.doJSON(http.MethodPost, "/api/v1/deposits", "1", map[string]any{"planId": "1"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *DepositHandlerTestSuite) TestCreateDeposit_NoToken() {
	w := suite.doJSON(http.MethodPost, "/api/v1/deposits", "", dto.CreateDepositRequest{
		Amount: decimal.NewFromInt(1000),
		PlanID: "1",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *DepositHandlerTestSuite) TestListDeposits_ReturnsSessionScopedRecords() {
	user := domain.User{UserID: "1", Role: domain.RoleDepositor}
	suite.Require().NoError(suite.ledger.ReseedForUser(context.Background(), user))

	w := suite.doJSON(http.MethodGet, "/api/v1/deposits", "1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.DepositResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)

	// Another identity sees nothing.
	w = suite.doJSON(http.MethodGet, "/api/v1/deposits", "2", nil)
	suite.Equal(http.StatusOK, w.Code)
	var other []dto.DepositResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &other))
	suite.Empty(other)
}

func (suite *DepositHandlerTestSuite) TestWithdrawDeposit_Success() {
	user := domain.User{UserID: "1", Role: domain.RoleDepositor}
	suite.Require().NoError(suite.ledger.ReseedForUser(context.Background(), user))

	w := suite.doJSON(http.MethodPost, "/api/v1/deposits/1/withdraw", "1", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DepositResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("withdrawn", resp.Status)
}

func (suite *DepositHandlerTestSuite) TestWithdrawDeposit_Unknown() {
	w := suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/deposits/%s/withdraw", "missing"), "1", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}
