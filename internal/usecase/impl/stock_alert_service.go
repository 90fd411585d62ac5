package impl

import (
	"context"
	"log/slog"

	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/repository"
	"cabinet/internal/errors"
	"cabinet/internal/usecase"

	"go.uber.org/fx"
)

type stockAlertService struct {
	itemRepo  repository.ItemRepository
	stockRepo repository.StockRepository
	logger    *slog.Logger
}

// StockAlertServiceParams holds dependencies for StockAlertService, injected by Fx.
type StockAlertServiceParams struct {
	fx.In

	ItemRepo  repository.ItemRepository
	StockRepo repository.StockRepository
	Logger    *slog.Logger
}

// NewStockAlertService is the constructor for stockAlertService.
func NewStockAlertService(params StockAlertServiceParams) usecase.StockAlertUsecase {
	return &stockAlertService{
		itemRepo:  params.ItemRepo,
		stockRepo: params.StockRepo,
		logger:    params.Logger,
	}
}

func (srv *stockAlertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *stockAlertService) ProcessStockEvent(ctx context.Context, event *entity.StockEvent) (*entity.StockAlert, error) {
	if event == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("stock event is empty"))
	}

	item, err := srv.itemRepo.FindByID(ctx, event.ItemID)
	if err != nil {
		return nil, mapItemLookupError(err)
	}
	if event.QuantityAfter > item.ParLevel {
		return nil, nil
	}

	alert := &entity.StockAlert{
		EventID:     event.EventID,
		CabinetCode: event.CabinetCode,
		ItemID:      event.ItemID,
		Quantity:    event.QuantityAfter,
		ParLevel:    item.ParLevel,
	}
	created, err := srv.stockRepo.CreateAlert(ctx, alert)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store stock alert")
	}
	if !created {
		srv.log(ctx).Debug("Stock alert already recorded", slog.Any("eventID", event.EventID))

		return nil, nil
	}

	srv.log(ctx).Warn("Stock below par level",
		slog.String("cabinet", alert.CabinetCode),
		slog.String("sku", item.SKU),
		slog.Int("quantity", alert.Quantity),
		slog.Int("parLevel", alert.ParLevel),
	)

	return alert, nil
}
