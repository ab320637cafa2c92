package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/payment"
	"github.com/iliyamo/acara-ticketing/internal/validation"
)

// TicketFinder loads the ticket being ordered.
type TicketFinder interface {
	FindByID(ctx context.Context, id string) (*model.Ticket, error)
}

// OrderStore persists orders.
type OrderStore interface {
	Create(ctx context.Context, o *model.Order) error
	UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error)
}

// PaymentGateway creates payment links.
type PaymentGateway interface {
	CreateLink(ctx context.Context, req payment.Request) (payment.Link, error)
}

// OrderService places ticket orders.  Ticket quantity is not reserved:
// concurrent orders can exceed the available stock.
type OrderService struct {
	tickets TicketFinder
	orders  OrderStore
	gateway PaymentGateway
}

// NewOrderService wires an OrderService.
func NewOrderService(tickets TicketFinder, orders OrderStore, gateway PaymentGateway) *OrderService {
	return &OrderService{tickets: tickets, orders: orders, gateway: gateway}
}

// Create prices the order, asks the gateway for a payment link and stores
// the order as pending.  A missing ticket surfaces as repository.ErrNotFound.
func (s *OrderService) Create(ctx context.Context, userID string, in model.OrderInput) (*model.Order, error) {
	if err := validation.Order(in); err != nil {
		return nil, err
	}
	ticket, err := s.tickets.FindByID(ctx, in.TicketID)
	if err != nil {
		return nil, err
	}

	total := ticket.Price * float64(in.Quantity)
	o := &model.Order{
		ID:       uuid.NewString(),
		OrderID:  newOrderID(),
		UserID:   userID,
		TicketID: ticket.ID,
		EventID:  ticket.EventID,
		Quantity: uint32(in.Quantity),
		Total:    total,
		Status:   model.OrderPending,
	}

	link, err := s.gateway.CreateLink(ctx, payment.Request{
		TransactionDetails: payment.TransactionDetails{
			OrderID:     o.OrderID,
			GrossAmount: int64(math.Round(total)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create payment link: %w", err)
	}
	o.Payment = model.Payment{Token: link.Token, RedirectURL: link.RedirectURL}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Complete marks a pending order as paid.  Settled orders yield
// repository.ErrOrderSettled.
func (s *OrderService) Complete(ctx context.Context, orderID string) (*model.Order, error) {
	return s.orders.UpdateStatus(ctx, orderID, model.OrderCompleted)
}

// Cancel marks a pending order as cancelled.
func (s *OrderService) Cancel(ctx context.Context, orderID string) (*model.Order, error) {
	return s.orders.UpdateStatus(ctx, orderID, model.OrderCancelled)
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
