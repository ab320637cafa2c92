package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/payment"
	"github.com/iliyamo/acara-ticketing/internal/queue"
	"github.com/iliyamo/acara-ticketing/internal/repository"
)

// memUsers is an in-memory UserStore with the same unique constraints as
// the users table.
type memUsers struct {
	mu    sync.Mutex
	byID  map[string]*model.User
	order []string
}

func newMemUsers() *memUsers { return &memUsers{byID: map[string]*model.User{}} }

func (m *memUsers) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.byID {
		if other.UserName == u.UserName || other.Email == u.Email {
			return &repository.StoreError{Code: repository.ErrDuplicateEntry, Name: "DuplicateKeyError", Message: "Duplicate entry"}
		}
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.byID[u.ID] = &cp
	m.order = append(m.order, u.ID)
	return nil
}

func (m *memUsers) FindByID(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) FindActiveByIdentifier(_ context.Context, identifier string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.order {
		u := m.byID[id]
		if u.IsActive && (u.UserName == identifier || u.Email == identifier) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) ActivateByCode(_ context.Context, code string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.order {
		u := m.byID[id]
		if u.ActivationCode == code {
			u.IsActive = true
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) UpdateProfile(_ context.Context, id, fullName, picture string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.FullName, u.ProfilePicture = fullName, picture
	cp := *u
	return &cp, nil
}

func (m *memUsers) UpdatePassword(_ context.Context, id, hash string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Password = hash
	cp := *u
	return &cp, nil
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) UserRegistered(ctx context.Context, ev queue.UserRegisteredEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateLink(ctx context.Context, req payment.Request) (payment.Link, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payment.Link), args.Error(1)
}

type MockTickets struct {
	mock.Mock
}

func (m *MockTickets) FindByID(ctx context.Context, id string) (*model.Ticket, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*model.Ticket)
	return t, args.Error(1)
}

type MockOrders struct {
	mock.Mock
}

func (m *MockOrders) Create(ctx context.Context, o *model.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrders) UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	args := m.Called(ctx, orderID, status)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}
