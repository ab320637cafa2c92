package handler

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"

	"github.com/iliyamo/acara-ticketing/internal/middleware"
	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/repository"
	"github.com/iliyamo/acara-ticketing/internal/response"
	"github.com/iliyamo/acara-ticketing/internal/utils"
	"github.com/iliyamo/acara-ticketing/internal/validation"
)

// EventStore is implemented by *repository.EventRepo.
type EventStore interface {
	Create(ctx context.Context, e *model.Event) error
	FindAll(ctx context.Context, q model.PageQuery) ([]*model.Event, int64, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
	FindBySlug(ctx context.Context, slug string) (*model.Event, error)
	Update(ctx context.Context, id string, in model.EventInput) (*model.Event, error)
	Delete(ctx context.Context, id string) (*model.Event, error)
}

// EventHandler serves /events.  Descriptions are sanitized with a UGC
// policy before they are stored.
type EventHandler struct {
	Events    EventStore
	sanitizer *bluemonday.Policy
}

func NewEventHandler(s EventStore) *EventHandler {
	return &EventHandler{Events: s, sanitizer: bluemonday.UGCPolicy()}
}

func (h *EventHandler) Create(c echo.Context) error {
	var in model.EventInput
	if err := bind(c, &in); err != nil {
		return response.Error(c, err, "failed to create event")
	}
	in.Description = h.sanitizer.Sanitize(in.Description)
	if err := validation.Event(in); err != nil {
		return response.Error(c, err, "failed to create event")
	}
	claims, _ := middleware.CurrentUser(c)
	ctx, cancel := requestCtx(c)
	defer cancel()

	e := &model.Event{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        utils.Slugify(in.Name),
		CategoryID:  in.CategoryID,
		StartDate:   *in.StartDate,
		EndDate:     *in.EndDate,
		Description: in.Description,
		Banner:      in.Banner,
		IsFeatured:  in.IsFeatured,
		IsOnline:    in.IsOnline,
		IsPublish:   in.IsPublish,
		Location:    in.Location,
		CreatedBy:   claims.ID,
	}
	if e.Slug == "" {
		e.Slug = e.ID
	}
	err := h.Events.Create(ctx, e)
	if repository.IsDuplicate(err) {
		// slug taken by an event with the same name
		e.Slug = suffixSlug(e.Slug, e.ID[:8])
		err = h.Events.Create(ctx, e)
	}
	if err != nil {
		return response.Error(c, err, "failed to create event")
	}
	return response.Success(c, e, "success to create event")
}

// maxSlugLen matches the events.slug column.
const maxSlugLen = 255

// suffixSlug appends "-suffix" to slug, shortening slug so the result still
// fits the column.
func suffixSlug(slug, suffix string) string {
	suffix = "-" + suffix
	if keep := maxSlugLen - len(suffix); len(slug) > keep {
		slug = strings.TrimRight(slug[:keep], "-")
	}
	return slug + suffix
}

func (h *EventHandler) FindAll(c echo.Context) error {
	q := pageQuery(c)
	ctx, cancel := requestCtx(c)
	defer cancel()

	items, total, err := h.Events.FindAll(ctx, q)
	if err != nil {
		return response.Error(c, err, "failed find all event")
	}
	return response.Paginate(c, items, total, q, "success find all event")
}

func (h *EventHandler) FindOne(c echo.Context) error {
	id := c.Param("id")
	if !validID(id) {
		return response.NotFound(c, "failed find one event")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	e, err := orNil(h.Events.FindByID(ctx, id))
	if err != nil {
		return response.Error(c, err, "failed find one event")
	}
	return response.Success(c, e, "success find one event")
}

// FindOneBySlug answers 200 with null data when no event has the slug.
func (h *EventHandler) FindOneBySlug(c echo.Context) error {
	ctx, cancel := requestCtx(c)
	defer cancel()

	e, err := orNil(h.Events.FindBySlug(ctx, c.Param("slug")))
	if err != nil {
		return response.Error(c, err, "failed find one by slug event")
	}
	return response.Success(c, e, "success find one by slug event")
}

func (h *EventHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if !validID(id) {
		return response.NotFound(c, "failed update event")
	}
	var in model.EventInput
	if err := bind(c, &in); err != nil {
		return response.Error(c, err, "failed update event")
	}
	in.Description = h.sanitizer.Sanitize(in.Description)
	if err := validation.Event(in); err != nil {
		return response.Error(c, err, "failed update event")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	e, err := orNil(h.Events.Update(ctx, id, in))
	if err != nil {
		return response.Error(c, err, "failed update event")
	}
	return response.Success(c, e, "success update event")
}

func (h *EventHandler) Remove(c echo.Context) error {
	id := c.Param("id")
	if !validID(id) {
		return response.NotFound(c, "failed remove event")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	e, err := orNil(h.Events.Delete(ctx, id))
	if err != nil {
		return response.Error(c, err, "failed remove event")
	}
	return response.Success(c, e, "success remove event")
}
