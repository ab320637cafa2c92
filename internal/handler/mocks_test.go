package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/acara-ticketing/internal/model"
)

type MockAccounts struct {
	mock.Mock
}

func userResult(args mock.Arguments) (*model.User, error) {
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockAccounts) Register(ctx context.Context, in model.RegisterInput) (*model.User, error) {
	return userResult(m.Called(ctx, in))
}

func (m *MockAccounts) Login(ctx context.Context, in model.LoginInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockAccounts) GetProfile(ctx context.Context, id string) (*model.User, error) {
	return userResult(m.Called(ctx, id))
}

func (m *MockAccounts) Activate(ctx context.Context, in model.ActivationInput) (*model.User, error) {
	return userResult(m.Called(ctx, in))
}

func (m *MockAccounts) UpdateProfile(ctx context.Context, id string, in model.UpdateProfileInput) (*model.User, error) {
	return userResult(m.Called(ctx, id, in))
}

func (m *MockAccounts) UpdatePassword(ctx context.Context, id string, in model.UpdatePasswordInput) (*model.User, error) {
	return userResult(m.Called(ctx, id, in))
}

type MockCategories struct {
	mock.Mock
}

func categoryResult(args mock.Arguments) (*model.Category, error) {
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *MockCategories) Create(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategories) FindAll(ctx context.Context, q model.PageQuery) ([]*model.Category, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]*model.Category)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockCategories) FindByID(ctx context.Context, id string) (*model.Category, error) {
	return categoryResult(m.Called(ctx, id))
}

func (m *MockCategories) Update(ctx context.Context, id string, in model.CategoryInput) (*model.Category, error) {
	return categoryResult(m.Called(ctx, id, in))
}

func (m *MockCategories) Delete(ctx context.Context, id string) (*model.Category, error) {
	return categoryResult(m.Called(ctx, id))
}

type MockEvents struct {
	mock.Mock
}

func eventResult(args mock.Arguments) (*model.Event, error) {
	e, _ := args.Get(0).(*model.Event)
	return e, args.Error(1)
}

func (m *MockEvents) Create(ctx context.Context, e *model.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEvents) FindAll(ctx context.Context, q model.PageQuery) ([]*model.Event, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]*model.Event)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockEvents) FindByID(ctx context.Context, id string) (*model.Event, error) {
	return eventResult(m.Called(ctx, id))
}

func (m *MockEvents) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	return eventResult(m.Called(ctx, slug))
}

func (m *MockEvents) Update(ctx context.Context, id string, in model.EventInput) (*model.Event, error) {
	return eventResult(m.Called(ctx, id, in))
}

func (m *MockEvents) Delete(ctx context.Context, id string) (*model.Event, error) {
	return eventResult(m.Called(ctx, id))
}

type MockTickets struct {
	mock.Mock
}

func (m *MockTickets) Create(ctx context.Context, t *model.Ticket) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTickets) FindAll(ctx context.Context, q model.PageQuery) ([]*model.Ticket, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]*model.Ticket)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockTickets) FindByID(ctx context.Context, id string) (*model.Ticket, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*model.Ticket)
	return t, args.Error(1)
}

func (m *MockTickets) FindByEvent(ctx context.Context, eventID string) ([]*model.Ticket, error) {
	args := m.Called(ctx, eventID)
	items, _ := args.Get(0).([]*model.Ticket)
	return items, args.Error(1)
}

func (m *MockTickets) Update(ctx context.Context, id string, in model.TicketInput) (*model.Ticket, error) {
	args := m.Called(ctx, id, in)
	t, _ := args.Get(0).(*model.Ticket)
	return t, args.Error(1)
}

func (m *MockTickets) Delete(ctx context.Context, id string) (*model.Ticket, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*model.Ticket)
	return t, args.Error(1)
}
