package handler

import (
	"log/slog"
	"net/http"

	"cabinet/internal/delivery/api/response"
	"cabinet/internal/domain/entity"
	"cabinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	ItemUC usecase.ItemUsecase
	Logger *slog.Logger
}

// ItemHandler serves the equipment catalog.
type ItemHandler struct {
	itemUC usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		itemUC: params.ItemUC,
		logger: params.Logger,
	}
}

// ItemRequest represents the request body for creating or updating an item
type ItemRequest struct {
	SKU         string `json:"sku" validate:"required,max=64"`
	Name        string `json:"name" validate:"required,max=200"`
	Category    string `json:"category" validate:"max=100"`
	Unit        string `json:"unit" validate:"max=32"`
	Description string `json:"description" validate:"max=1000"`
	ParLevel    *int   `json:"par_level" validate:"omitempty,gte=0"`
}

func (r *ItemRequest) toInput() *usecase.ItemInput {
	return &usecase.ItemInput{
		SKU:         r.SKU,
		Name:        r.Name,
		Category:    r.Category,
		Unit:        r.Unit,
		Description: r.Description,
		ParLevel:    r.ParLevel,
	}
}

// ListItemsQuery filters the catalog listing
type ListItemsQuery struct {
	PageQuery
	Category string `query:"category"`
	Search   string `query:"q"`
}

// CreateItem adds an item to the catalog
func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	item, err := h.itemUC.CreateItem(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newItemResponse(item))
}

// GetItem returns one catalog item
func (h *ItemHandler) GetItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	item, err := h.itemUC.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemResponse(item))
}

// ListItems pages through the catalog
func (h *ItemHandler) ListItems(c echo.Context) error {
	var query ListItemsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	page, err := h.itemUC.ListItems(c.Request().Context(), entity.ItemFilter{
		Category: query.Category,
		Search:   query.Search,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PageResponse[*ItemResponse]{
		Items:  mapSlice(page.Items, newItemResponse),
		Total:  page.Total,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
}

// UpdateItem replaces the editable fields of an item
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	item, err := h.itemUC.UpdateItem(c.Request().Context(), itemID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemResponse(item))
}

// DeleteItem removes an item from the catalog
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	if err := h.itemUC.DeleteItem(c.Request().Context(), itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetLabel returns the PNG QR label of an item
func (h *ItemHandler) GetLabel(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	png, err := h.itemUC.GenerateLabel(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+itemID.String()+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}
