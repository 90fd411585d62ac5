package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cabinet/internal/delivery/api/response"
	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StockHandlerParams holds dependencies for StockHandler, injected by Fx.
type StockHandlerParams struct {
	fx.In

	StockUC usecase.StockUsecase
	Logger  *slog.Logger
}

// StockHandler serves cabinet stock levels, adjustments and reports.
type StockHandler struct {
	stockUC usecase.StockUsecase
	logger  *slog.Logger
}

// NewStockHandler is the constructor for StockHandler
func NewStockHandler(params StockHandlerParams) *StockHandler {
	return &StockHandler{
		stockUC: params.StockUC,
		logger:  params.Logger,
	}
}

// AdjustStockRequest represents the request body for a stock adjustment.
// A negative delta withdraws, a positive one restocks.
type AdjustStockRequest struct {
	CabinetCode string    `json:"cabinet" validate:"required,max=64"`
	ItemID      uuid.UUID `json:"item_id" validate:"required"`
	Delta       int       `json:"delta" validate:"required"`
	Reason      string    `json:"reason" validate:"max=255"`
}

// AdjustStockResponse is the committed adjustment
type AdjustStockResponse struct {
	Level    *StockLevelResponse    `json:"level"`
	Movement *StockMovementResponse `json:"movement"`
}

// ListLevelsQuery selects the cabinet to list
type ListLevelsQuery struct {
	CabinetCode string `query:"cabinet" validate:"required,max=64"`
}

// StockReportResponse summarises stock across cabinets
type StockReportResponse struct {
	GeneratedAt      time.Time                   `json:"generated_at"`
	GeneratedAtLocal string                      `json:"generated_at_local"`
	Items            []*ItemStockSummaryResponse `json:"items"`
	BelowPar         []*ItemStockSummaryResponse `json:"below_par"`
}

// Adjust applies a signed delta to one item in one cabinet
func (h *StockHandler) Adjust(c echo.Context) error {
	actorID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AdjustStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.stockUC.Adjust(c.Request().Context(), &usecase.AdjustStockInput{
		CabinetCode: req.CabinetCode,
		ItemID:      req.ItemID,
		Delta:       req.Delta,
		Reason:      req.Reason,
		ActorID:     actorID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AdjustStockResponse{
		Level:    newStockLevelResponse(output.Level),
		Movement: newStockMovementResponse(output.Movement),
	})
}

// ListLevels returns the stock levels of one cabinet
func (h *StockHandler) ListLevels(c echo.Context) error {
	var query ListLevelsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	levels, err := h.stockUC.ListLevels(c.Request().Context(), query.CabinetCode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(levels, newStockLevelResponse))
}

// Report returns per-item totals and the items at or below par level
func (h *StockHandler) Report(c echo.Context) error {
	report, err := h.stockUC.Report(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &StockReportResponse{
		GeneratedAt:      report.GeneratedAt,
		GeneratedAtLocal: report.GeneratedAtLocal,
		Items:            newItemStockSummaryResponses(report.Items),
		BelowPar:         newItemStockSummaryResponses(report.BelowPar),
	})
}
