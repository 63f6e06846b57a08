package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/financeflow/financeflow_backend/internal/apperrors"
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// TokenProvider supplies the stored bearer token for outgoing requests.
// An empty string means no Authorization header is sent.
type TokenProvider func(ctx context.Context) string

// Client talks to the generic CRUD sandbox API (/users, /deposits, /loans,
// /transactions). All failures are typed: 401-class responses unwrap to
// apperrors.ErrUnauthorized, everything else network/HTTP/parse unwraps to
// apperrors.ErrRemoteUnavailable so callers can dispatch to the local
// fallback.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokenFn TokenProvider
}

var _ portsrepo.RemoteGateway = (*Client)(nil)

// NewClient creates a gateway client. The timeout bounds every request; a
// hung sandbox call must not block an action indefinitely.
func NewClient(baseURL string, timeout time.Duration, tokenFn TokenProvider) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		tokenFn: tokenFn,
	}
}

// remoteUser is the wire shape of a /users record. The sandbox assigns _id
// and stores the password as a plain field; login matches against it.
type remoteUser struct {
	ID        string  `json:"_id,omitempty"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password,omitempty"`
	Role      string  `json:"role"`
	Balance   float64 `json:"balance"`
	CreatedAt string  `json:"createdAt"`
}

type remoteDeposit struct {
	UserID          string  `json:"userId"`
	Amount          float64 `json:"amount"`
	DurationDays    int64   `json:"durationDays"`
	InterestRate    float64 `json:"interestRate"`
	StartDate       string  `json:"startDate"`
	MaturityDate    string  `json:"maturityDate"`
	AccruedInterest float64 `json:"accruedInterest"`
	Status          string  `json:"status"`
	AutoRenewal     bool    `json:"autoRenewal"`
}

type remoteLoan struct {
	UserID          string  `json:"userId"`
	Amount          float64 `json:"amount"`
	DurationDays    int64   `json:"durationDays"`
	InterestRate    float64 `json:"interestRate"`
	StartDate       string  `json:"startDate"`
	DueDate         string  `json:"dueDate"`
	RemainingAmount float64 `json:"remainingAmount"`
	Status          string  `json:"status"`
	MonthlyPayment  float64 `json:"monthlyPayment"`
	Purpose         string  `json:"purpose"`
}

type remoteTransaction struct {
	UserID      string  `json:"userId"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}

// do issues one JSON request. out may be nil when the response body is not
// needed.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", apperrors.ErrRemoteUnavailable, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", apperrors.ErrRemoteUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokenFn != nil {
		if token := c.tokenFn(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: gateway returned 401", apperrors.ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: gateway returned status %d", apperrors.ErrRemoteUnavailable, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", apperrors.ErrRemoteUnavailable, err)
		}
	}
	return nil
}

// Register creates a user record on the sandbox. Depositors start with a
// balance of 10000, everyone else with 0.
func (c *Client) Register(ctx context.Context, params portsrepo.RegisterParams) (*domain.User, error) {
	balance := 0.0
	if params.Role == domain.RoleDepositor {
		balance = 10000
	}
	payload := remoteUser{
		Name:      params.Name,
		Email:     params.Email,
		Password:  params.Password,
		Role:      string(params.Role),
		Balance:   balance,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var created remoteUser
	if err := c.do(ctx, http.MethodPost, "/users", payload, &created); err != nil {
		return nil, err
	}
	user := toDomainUser(created)
	return &user, nil
}

// Login fetches all sandbox users and matches email plus plaintext password,
// which is the sandbox's whole authentication model. The returned token is a
// bearer pseudo-token in the fixed token_<id>_<ms> format.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	var users []remoteUser
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, "", err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			user := toDomainUser(u)
			token := fmt.Sprintf("token_%s_%d", u.ID, time.Now().UnixMilli())
			return &user, token, nil
		}
	}
	return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []remoteUser
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, toDomainUser(u))
	}
	return out, nil
}

func (c *Client) CreateDeposit(ctx context.Context, deposit domain.Deposit) error {
	payload := remoteDeposit{
		UserID:          deposit.UserID,
		Amount:          deposit.Amount.InexactFloat64(),
		DurationDays:    deposit.DurationDays,
		InterestRate:    deposit.InterestRate.InexactFloat64(),
		StartDate:       deposit.StartDate.UTC().Format(time.RFC3339),
		MaturityDate:    deposit.MaturityDate.UTC().Format(time.RFC3339),
		AccruedInterest: deposit.AccruedInterest.InexactFloat64(),
		Status:          string(deposit.Status),
		AutoRenewal:     deposit.AutoRenewal,
	}
	return c.do(ctx, http.MethodPost, "/deposits", payload, nil)
}

func (c *Client) CreateLoan(ctx context.Context, loan domain.Loan) error {
	payload := remoteLoan{
		UserID:          loan.UserID,
		Amount:          loan.Amount.InexactFloat64(),
		DurationDays:    loan.DurationDays,
		InterestRate:    loan.InterestRate.InexactFloat64(),
		StartDate:       loan.StartDate.UTC().Format(time.RFC3339),
		DueDate:         loan.DueDate.UTC().Format(time.RFC3339),
		RemainingAmount: loan.RemainingAmount.InexactFloat64(),
		Status:          string(loan.Status),
		MonthlyPayment:  loan.MonthlyPayment.InexactFloat64(),
		Purpose:         loan.Purpose,
	}
	return c.do(ctx, http.MethodPost, "/loans", payload, nil)
}

func (c *Client) CreateTransaction(ctx context.Context, txn domain.Transaction) error {
	payload := remoteTransaction{
		UserID:      txn.UserID,
		Type:        string(txn.Type),
		Amount:      txn.Amount.InexactFloat64(),
		Date:        txn.Date.UTC().Format(time.RFC3339),
		Description: txn.Description,
		Status:      string(txn.Status),
	}
	return c.do(ctx, http.MethodPost, "/transactions", payload, nil)
}

func toDomainUser(u remoteUser) domain.User {
	return domain.User{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      domain.UserRole(u.Role),
		Balance:   decimal.NewFromFloat(u.Balance),
		CreatedAt: parseTimestamp(u.CreatedAt),
	}
}

// parseTimestamp accepts both RFC 3339 and bare yyyy-mm-dd, which is what
// hand-seeded sandbox records tend to contain.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
