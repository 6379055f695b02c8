package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/user-item-service/internal/apperr"
	"github.com/iliyamo/user-item-service/internal/queue"
	"github.com/iliyamo/user-item-service/internal/repository"
	queue_publisher "github.com/iliyamo/user-item-service/internal/service"
)

// ItemHandler bundles dependencies for the protected item endpoints.
type ItemHandler struct {
	Items *repository.ItemRepo
}

func NewItemHandler(i *repository.ItemRepo) *ItemHandler {
	return &ItemHandler{Items: i}
}

type itemReq struct {
	Name string `json:"name"`
}

// Create inserts an item and returns the stored record.
func (h *ItemHandler) Create(c echo.Context) error {
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.ValidationMissing, "invalid body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return apperr.New(apperr.ValidationMissing, "name required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Items.Create(ctx, req.Name)
	if err != nil {
		return apperr.Wrap(apperr.StoreError, "create item failed", err)
	}
	it, err := h.Items.GetByID(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.StoreError, "load item failed", err)
	}

	go func(ev queue.ItemCreatedEvent) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishItemCreated(ctx, ev)
	}(queue.ItemCreatedEvent{
		ItemID:    it.ID,
		Name:      it.Name,
		CreatedAt: it.CreatedAt.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, it)
}

// List returns all items.
func (h *ItemHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Items.List(ctx)
	if err != nil {
		return apperr.Wrap(apperr.StoreError, "list items failed", err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns a single item by id.
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := pathID(c, "item")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	it, err := h.Items.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return apperr.New(apperr.NotFound, "item not found")
		}
		return apperr.Wrap(apperr.StoreError, "query failed", err)
	}
	return c.JSON(http.StatusOK, it)
}

// Update renames an item.
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := pathID(c, "item")
	if err != nil {
		return err
	}
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.ValidationMissing, "invalid body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return apperr.New(apperr.ValidationMissing, "name required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Items.Update(ctx, id, req.Name); err != nil {
		if err == repository.ErrNotFound {
			return apperr.New(apperr.NotFound, "item not found")
		}
		return apperr.Wrap(apperr.StoreError, "update item failed", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Item updated successfully"})
}

// Delete removes an item.
func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "item")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Items.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return apperr.New(apperr.NotFound, "item not found")
		}
		return apperr.Wrap(apperr.StoreError, "delete item failed", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Item deleted successfully"})
}
