package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/financeflow/financeflow_backend/internal/adapters/gateway"
	"github.com/financeflow/financeflow_backend/internal/apperrors"
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sandboxUsers() []map[string]any {
	return []map[string]any{
		{
			"_id":       "1",
			"name":      "John Depositor",
			"email":     "john@example.com",
			"password":  "password123",
			"role":      "depositor",
			"balance":   50000.0,
			"createdAt": "2024-01-01",
		},
		{
			"_id":       "2",
			"name":      "Jane Borrower",
			"email":     "jane@example.com",
			"password":  "password123",
			"role":      "borrower",
			"balance":   0.0,
			"createdAt": "2024-01-01T10:30:00Z",
		},
	}
}

func newTestClient(t *testing.T, handler http.Handler) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gateway.NewClient(srv.URL, 5*time.Second, nil)
}

func TestLogin_MatchesEmailAndPassword(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(sandboxUsers()))
	}))

	user, token, err := client.Login(context.Background(), "john@example.com", "password123")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "1", user.UserID)
	assert.Equal(t, "John Depositor", user.Name)
	assert.Equal(t, domain.RoleDepositor, user.Role)
	assert.True(t, user.Balance.Equal(decimal.NewFromInt(50000)))
	assert.True(t, strings.HasPrefix(token, "token_1_"), "token %q", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(sandboxUsers()))
	}))

	user, token, err := client.Login(context.Background(), "john@example.com", "wrong")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogin_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := gateway.NewClient(srv.URL, time.Second, nil)

	_, _, err := client.Login(context.Background(), "john@example.com", "password123")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)
}

func TestLogin_Unauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, _, err := client.Login(context.Background(), "john@example.com", "password123")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogin_MalformedBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))

	_, _, err := client.Login(context.Background(), "john@example.com", "password123")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)
}

func TestRegister_PostsUserWithStartingBalance(t *testing.T) {
	var received map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		received["_id"] = "99"
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(received))
	}))

	user, err := client.Register(context.Background(), portsrepo.RegisterParams{
		Name:     "New Depositor",
		Email:    "new@example.com",
		Password: "secret",
		Role:     domain.RoleDepositor,
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "99", user.UserID)
	assert.Equal(t, domain.RoleDepositor, user.Role)
	assert.True(t, user.Balance.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, "secret", received["password"])
	assert.Equal(t, 10000.0, received["balance"])
}

func TestRegister_NonDepositorStartsAtZero(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 0.0, body["balance"])
		body["_id"] = "100"
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}))

	user, err := client.Register(context.Background(), portsrepo.RegisterParams{
		Name:     "New Borrower",
		Email:    "b@example.com",
		Password: "secret",
		Role:     domain.RoleBorrower,
	})

	require.NoError(t, err)
	assert.True(t, user.Balance.IsZero())
}

func TestListUsers_ParsesBothTimestampFormats(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(sandboxUsers()))
	}))

	users, err := client.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), users[0].CreatedAt)
	assert.Equal(t, time.Date(2024, time.January, 1, 10, 30, 0, 0, time.UTC), users[1].CreatedAt)
}

func TestCreateDeposit_SendsBearerToken(t *testing.T) {
	var gotAuth string
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/deposits", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL, 5*time.Second, func(ctx context.Context) string {
		return "token_1_1700000000000"
	})

	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	err := client.CreateDeposit(context.Background(), domain.Deposit{
		DepositID:    "d1",
		UserID:       "1",
		Amount:       decimal.NewFromInt(25000),
		DurationDays: 15,
		InterestRate: decimal.NewFromFloat(0.12),
		StartDate:    start,
		MaturityDate: start.Add(15 * 24 * time.Hour),
		Status:       domain.DepositActive,
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer token_1_1700000000000", gotAuth)
	assert.Equal(t, 25000.0, body["amount"])
	assert.Equal(t, "active", body["status"])
	assert.Equal(t, "2024-06-01T00:00:00Z", body["startDate"])
}

func TestCreateTransaction_RemoteErrorIsTyped(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := client.CreateTransaction(context.Background(), domain.Transaction{
		TransactionID: "t1",
		UserID:        "1",
		Type:          domain.TxnDeposit,
		Amount:        decimal.NewFromInt(100),
		Date:          time.Now(),
		Status:        domain.TxnCompleted,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)
}

func TestCreateLoan_PostsLoanShape(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/loans", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	}))

	err := client.CreateLoan(context.Background(), domain.Loan{
		LoanID:          "l1",
		UserID:          "2",
		Amount:          decimal.NewFromInt(50000),
		DurationDays:    90,
		InterestRate:    decimal.NewFromFloat(0.18),
		StartDate:       time.Now(),
		DueDate:         time.Now().Add(90 * 24 * time.Hour),
		RemainingAmount: decimal.NewFromInt(50000),
		Status:          domain.LoanPending,
		MonthlyPayment:  decimal.NewFromFloat(17406.39),
		Purpose:         "Business expansion",
	})

	require.NoError(t, err)
	assert.Equal(t, 50000.0, body["amount"])
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "Business expansion", body["purpose"])
	assert.Equal(t, float64(90), body["durationDays"])
}
