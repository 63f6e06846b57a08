package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/financeflow/financeflow_backend/internal/apperrors"
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// UserDirectory is the local fallback credential directory: the three fixed
// seed users plus anything fallback registration fabricates.
type UserDirectory struct {
	mu    sync.RWMutex
	users []domain.User
}

var _ portsrepo.UserDirectory = (*UserDirectory)(nil)

// NewUserDirectory creates a directory pre-populated with the seed users.
func NewUserDirectory() *UserDirectory {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &UserDirectory{
		users: []domain.User{
			{
				UserID:    "1",
				Name:      "John Depositor",
				Email:     "john@example.com",
				Role:      domain.RoleDepositor,
				Balance:   decimal.NewFromInt(50000),
				CreatedAt: created,
			},
			{
				UserID:    "2",
				Name:      "Jane Borrower",
				Email:     "jane@example.com",
				Role:      domain.RoleBorrower,
				Balance:   decimal.Zero,
				CreatedAt: created,
			},
			{
				UserID:    "3",
				Name:      "Admin User",
				Email:     "admin@example.com",
				Role:      domain.RoleAdmin,
				Balance:   decimal.Zero,
				CreatedAt: created,
			},
		},
	}
}

func (d *UserDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.users {
		if strings.EqualFold(d.users[i].Email, email) {
			u := d.users[i]
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (d *UserDirectory) Add(_ context.Context, user domain.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = append(d.users, user)
	return nil
}

func (d *UserDirectory) ListUsers(_ context.Context) ([]domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]domain.User(nil), d.users...), nil
}
