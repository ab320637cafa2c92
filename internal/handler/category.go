package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/response"
	"github.com/iliyamo/acara-ticketing/internal/validation"
)

// CategoryStore is implemented by *repository.CategoryRepo.
type CategoryStore interface {
	Create(ctx context.Context, c *model.Category) error
	FindAll(ctx context.Context, q model.PageQuery) ([]*model.Category, int64, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	Update(ctx context.Context, id string, in model.CategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id string) (*model.Category, error)
}

// CategoryHandler serves /categories.
type CategoryHandler struct {
	Categories CategoryStore
}

func NewCategoryHandler(s CategoryStore) *CategoryHandler {
	return &CategoryHandler{Categories: s}
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var in model.CategoryInput
	if err := bind(c, &in); err != nil {
		return response.Error(c, err, "failed create category")
	}
	if err := validation.Category(in); err != nil {
		return response.Error(c, err, "failed create category")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	cat := &model.Category{ID: uuid.NewString(), Name: in.Name, Description: in.Description, Icon: in.Icon}
	if err := h.Categories.Create(ctx, cat); err != nil {
		return response.Error(c, err, "failed create category")
	}
	return response.Success(c, cat, "success create category")
}

func (h *CategoryHandler) FindAll(c echo.Context) error {
	q := pageQuery(c)
	ctx, cancel := requestCtx(c)
	defer cancel()

	items, total, err := h.Categories.FindAll(ctx, q)
	if err != nil {
		return response.Error(c, err, "failed find all category")
	}
	return response.Paginate(c, items, total, q, "success find all category")
}

func (h *CategoryHandler) FindOne(c echo.Context) error {
	id := c.Param("id")
	if !validID(id) {
		return response.NotFound(c, "failed find one category")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	cat, err := orNil(h.Categories.FindByID(ctx, id))
	if err != nil {
		return response.Error(c, err, "failed find one category")
	}
	return response.Success(c, cat, "success find one category")
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if !validID(id) {
		return response.NotFound(c, "failed update category")
	}
	var in model.CategoryInput
	if err := bind(c, &in); err != nil {
		return response.Error(c, err, "failed update category")
	}
	if err := validation.Category(in); err != nil {
		return response.Error(c, err, "failed update category")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	cat, err := orNil(h.Categories.Update(ctx, id, in))
	if err != nil {
		return response.Error(c, err, "failed update category")
	}
	return response.Success(c, cat, "success update category")
}

func (h *CategoryHandler) Remove(c echo.Context) error {
	id := c.Param("id")
	if !validID(id) {
		return response.NotFound(c, "failed remove category")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	cat, err := orNil(h.Categories.Delete(ctx, id))
	if err != nil {
		return response.Error(c, err, "failed remove category")
	}
	return response.Success(c, cat, "success remove category")
}
