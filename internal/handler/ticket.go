package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/response"
	"github.com/iliyamo/acara-ticketing/internal/validation"
)

// TicketStore is implemented by *repository.TicketRepo.
type TicketStore interface {
	Create(ctx context.Context, t *model.Ticket) error
	FindAll(ctx context.Context, q model.PageQuery) ([]*model.Ticket, int64, error)
	FindByID(ctx context.Context, id string) (*model.Ticket, error)
	FindByEvent(ctx context.Context, eventID string) ([]*model.Ticket, error)
	Update(ctx context.Context, id string, in model.TicketInput) (*model.Ticket, error)
	Delete(ctx context.Context, id string) (*model.Ticket, error)
}

// TicketHandler serves /tickets.  The referenced event is not checked.
type TicketHandler struct {
	Tickets TicketStore
}

func NewTicketHandler(s TicketStore) *TicketHandler {
	return &TicketHandler{Tickets: s}
}

func (h *TicketHandler) Create(c echo.Context) error {
	var in model.TicketInput
	if err := bind(c, &in); err != nil {
		return response.Error(c, err, "failed to create ticket")
	}
	if err := validation.Ticket(in); err != nil {
		return response.Error(c, err, "failed to create ticket")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	t := &model.Ticket{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Quantity:    uint32(*in.Quantity),
		EventID:     in.EventID,
	}
	if err := h.Tickets.Create(ctx, t); err != nil {
		return response.Error(c, err, "failed to create ticket")
	}
	return response.Success(c, t, "success create ticket")
}

func (h *TicketHandler) FindAll(c echo.Context) error {
	q := pageQuery(c)
	ctx, cancel := requestCtx(c)
	defer cancel()

	items, total, err := h.Tickets.FindAll(ctx, q)
	if err != nil {
		return response.Error(c, err, "failed to find all ticket")
	}
	return response.Paginate(c, items, total, q, "success find all ticket")
}

func (h *TicketHandler) FindOne(c echo.Context) error {
	id := c.Param("id")
	if !validID(id) {
		return response.NotFound(c, "failed find one ticket")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	t, err := orNil(h.Tickets.FindByID(ctx, id))
	if err != nil {
		return response.Error(c, err, "failed to find one ticket")
	}
	return response.Success(c, t, "success find one ticket")
}

// FindAllByEvent lists every ticket of an event.  A malformed event id is
// answered with 500 "tickets not found" and null data.
func (h *TicketHandler) FindAllByEvent(c echo.Context) error {
	eventID := c.Param("eventId")
	if !validID(eventID) {
		return response.Error(c, nil, "tickets not found")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	items, err := h.Tickets.FindByEvent(ctx, eventID)
	if err != nil {
		return response.Error(c, err, "failed to find all ticket by event")
	}
	return response.Success(c, items, "success find all tickets by an event")
}

func (h *TicketHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if !validID(id) {
		return response.NotFound(c, "failed update ticket")
	}
	var in model.TicketInput
	if err := bind(c, &in); err != nil {
		return response.Error(c, err, "failed to update ticket")
	}
	if err := validation.Ticket(in); err != nil {
		return response.Error(c, err, "failed to update ticket")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	t, err := orNil(h.Tickets.Update(ctx, id, in))
	if err != nil {
		return response.Error(c, err, "failed to update ticket")
	}
	return response.Success(c, t, "success update ticket")
}

func (h *TicketHandler) Remove(c echo.Context) error {
	id := c.Param("id")
	if !validID(id) {
		return response.NotFound(c, "failed remove ticket")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	t, err := orNil(h.Tickets.Delete(ctx, id))
	if err != nil {
		return response.Error(c, err, "failed to remove ticket")
	}
	return response.Success(c, t, "success delete ticket")
}
