package testutil

import (
	"context"
	"sync"

	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/billing"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/credit"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/subscription"
	"github.com/kartiknayak1216/lenso-backend-service/internal/domain/user"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/errors"
)

// MockUserRepository is a mock implementation of user.Repository
type MockUserRepository struct {
	mu          sync.Mutex
	Users       map[string]*user.User // keyed by external ID
	Bundles     []*user.Bundle
	NextID      int64
	GetError    error
	CreateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:  make(map[string]*user.User),
		NextID: 1,
	}
}

func (m *MockUserRepository) GetByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.Users[externalID]
	if !ok {
		return nil, errors.NotFound("User")
	}
	return u, nil
}

func (m *MockUserRepository) CreateBundle(ctx context.Context, b *user.Bundle) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Users[b.User.ExternalID]; ok {
		return user.ErrAlreadyExists
	}
	b.User.ID = m.NextID
	m.NextID++
	b.Account.UserID = b.User.ID
	b.Subscription.UserID = b.User.ID
	b.BillingEntry.UserID = b.User.ID
	m.Users[b.User.ExternalID] = b.User
	m.Bundles = append(m.Bundles, b)
	return nil
}

// AddUser seeds a user record directly, bypassing bundle creation
func (m *MockUserRepository) AddUser(u *user.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID == 0 {
		u.ID = m.NextID
		m.NextID++
	}
	m.Users[u.ExternalID] = u
}

// MockCreditRepository is a mock implementation of credit.Repository. Its
// ApplyDeduction mirrors the store's serialized check-then-write so that
// concurrent callers observe the same no-overdraw guarantee.
type MockCreditRepository struct {
	mu          sync.Mutex
	Accounts    map[int64]*credit.Account
	GetError    error
	DeductError error
}

func NewMockCreditRepository() *MockCreditRepository {
	return &MockCreditRepository{
		Accounts: make(map[int64]*credit.Account),
	}
}

func (m *MockCreditRepository) GetByUserID(ctx context.Context, userID int64) (*credit.Account, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Accounts[userID]
	if !ok {
		return nil, errors.NotFound("Credits")
	}
	cp := *a
	return &cp, nil
}

func (m *MockCreditRepository) ApplyDeduction(ctx context.Context, userID, amount int64, day string) (*credit.Account, error) {
	if m.DeductError != nil {
		return nil, m.DeductError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Accounts[userID]
	if !ok {
		return nil, errors.NotFound("Credits")
	}
	if a.IsDaily && a.UsageDate != day {
		a.TodayUsed = 0
		a.UsageDate = day
	}
	if a.Remaining(day) < amount {
		return nil, errors.InsufficientCredits(a.Remaining(day))
	}
	if a.IsDaily {
		a.TodayUsed += amount
	}
	a.UsedCredit += amount
	cp := *a
	return &cp, nil
}

// SetAccount seeds a credit account
func (m *MockCreditRepository) SetAccount(a *credit.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Accounts[a.UserID] = a
}

// MockSubscriptionRepository is a mock implementation of subscription.Repository
type MockSubscriptionRepository struct {
	Subscriptions map[int64]*subscription.Subscription
	GetError      error
}

func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{
		Subscriptions: make(map[int64]*subscription.Subscription),
	}
}

func (m *MockSubscriptionRepository) GetByUserID(ctx context.Context, userID int64) (*subscription.Subscription, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	s, ok := m.Subscriptions[userID]
	if !ok {
		return nil, errors.NotFound("Subscription")
	}
	return s, nil
}

// MockBillingRepository is a mock implementation of billing.Repository
type MockBillingRepository struct {
	Entries     map[int64][]*billing.Entry
	NextID      int64
	ListError   error
	AppendError error
}

func NewMockBillingRepository() *MockBillingRepository {
	return &MockBillingRepository{
		Entries: make(map[int64][]*billing.Entry),
		NextID:  1,
	}
}

func (m *MockBillingRepository) ListByUserID(ctx context.Context, userID int64) ([]*billing.Entry, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Entries[userID], nil
}

func (m *MockBillingRepository) Append(ctx context.Context, entry *billing.Entry) error {
	if m.AppendError != nil {
		return m.AppendError
	}
	entry.ID = m.NextID
	m.NextID++
	m.Entries[entry.UserID] = append(m.Entries[entry.UserID], entry)
	return nil
}
