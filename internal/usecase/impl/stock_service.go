package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"cabinet/config"
	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/repository"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	"cabinet/internal/usecase"
	"cabinet/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxCabinetCodeLength = 64

type stockService struct {
	txManager repository.TransactionManager
	stockRepo repository.StockRepository
	publisher service.EventPublisher
	location  *time.Location
	logger    *slog.Logger
	now       func() time.Time
}

// StockServiceParams holds dependencies for StockService, injected by Fx.
type StockServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	StockRepo repository.StockRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewStockService is the constructor for stockService. It fails when the
// configured time zone is unknown.
func NewStockService(params StockServiceParams) (usecase.StockUsecase, error) {
	zone := ""
	if params.Config != nil {
		zone = params.Config.Env.Timezone
	}
	location, err := util.LoadLocation(zone)
	if err != nil {
		return nil, errors.Wrap(err, "invalid report time zone")
	}

	return &stockService{
		txManager: params.TxManager,
		stockRepo: params.StockRepo,
		publisher: params.Publisher,
		location:  location,
		logger:    params.Logger,
		now:       time.Now,
	}, nil
}

func (srv *stockService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Adjust applies the delta under a row lock on the cabinet's level and logs
// the movement in the same transaction. The stock event is published after
// commit; a failed publish is logged and does not undo the adjustment.
func (srv *stockService) Adjust(ctx context.Context, input *usecase.AdjustStockInput) (*usecase.AdjustStockOutput, error) {
	cabinetCode := strings.ToUpper(strings.TrimSpace(input.CabinetCode))
	if err := validateAdjustment(cabinetCode, input); err != nil {
		return nil, err
	}

	var output usecase.AdjustStockOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ItemRepo().FindByID(ctx, input.ItemID); err != nil {
			return mapItemLookupError(err)
		}

		stockRepo := repoFactory.StockRepo()
		level, err := stockRepo.LockLevel(ctx, cabinetCode, input.ItemID)
		if err != nil {
			return errors.Wrap(err, "failed to lock stock level")
		}

		next := level.Quantity + input.Delta
		if next < 0 {
			return errors.WithStack(domainerrors.ErrInsufficientStock.WithDetails(
				"on hand " + strconv.Itoa(level.Quantity) + ", requested " + strconv.Itoa(-input.Delta)))
		}
		level.Quantity = next
		level.UpdatedAt = srv.now().UTC()
		if err := stockRepo.SaveLevel(ctx, level); err != nil {
			return errors.Wrap(err, "failed to save stock level")
		}

		movement := &entity.StockMovement{
			CabinetCode:   cabinetCode,
			ItemID:        input.ItemID,
			Delta:         input.Delta,
			QuantityAfter: next,
			Reason:        strings.TrimSpace(input.Reason),
			ActorID:       input.ActorID,
		}
		if err := stockRepo.CreateMovement(ctx, movement); err != nil {
			return errors.Wrap(err, "failed to record stock movement")
		}

		output.Level = level
		output.Movement = movement

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute stock adjustment transaction")
	}

	srv.log(ctx).Info("Stock adjusted",
		slog.String("cabinet", cabinetCode),
		slog.Any("itemID", input.ItemID),
		slog.Int("delta", input.Delta),
		slog.Int("quantity", output.Level.Quantity),
	)
	srv.publishAdjusted(ctx, output.Movement)

	return &output, nil
}

func (srv *stockService) publishAdjusted(ctx context.Context, movement *entity.StockMovement) {
	occurredAt := movement.CreatedAt
	if occurredAt.IsZero() {
		occurredAt = srv.now()
	}

	msg := &service.StockEventMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Event: &entity.StockEvent{
			EventID:       uuid.New(),
			Type:          entity.StockEventAdjusted,
			MovementID:    movement.ID,
			CabinetCode:   movement.CabinetCode,
			ItemID:        movement.ItemID,
			Delta:         movement.Delta,
			QuantityAfter: movement.QuantityAfter,
			ActorID:       movement.ActorID,
			OccurredAt:    occurredAt.UTC(),
		},
	}
	if err := srv.publisher.PublishStockEvent(ctx, msg); err != nil {
		srv.log(ctx).Error("Failed to publish stock event",
			slog.Any("movementID", movement.ID),
			slog.Any("error", err),
		)
	}
}

func (srv *stockService) ListLevels(ctx context.Context, cabinetCode string) ([]*entity.StockLevel, error) {
	levels, err := srv.stockRepo.ListLevels(ctx, strings.ToUpper(strings.TrimSpace(cabinetCode)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock levels")
	}

	return levels, nil
}

func (srv *stockService) Report(ctx context.Context) (*usecase.StockReport, error) {
	summaries, err := srv.stockRepo.SummarizeByItem(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize stock")
	}

	belowPar := make([]*entity.ItemStockSummary, 0)
	for _, summary := range summaries {
		if summary.LowCabinets > 0 {
			belowPar = append(belowPar, summary)
		}
	}

	generatedAt := srv.now().UTC()

	return &usecase.StockReport{
		GeneratedAt:      generatedAt,
		GeneratedAtLocal: util.FormatLocalTime(generatedAt, srv.location),
		Items:            summaries,
		BelowPar:         belowPar,
	}, nil
}

func validateAdjustment(cabinetCode string, input *usecase.AdjustStockInput) error {
	switch {
	case cabinetCode == "":
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("cabinet code is required"))
	case len(cabinetCode) > maxCabinetCodeLength:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("cabinet code is too long"))
	case input.ItemID == uuid.Nil:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("item id is required"))
	case input.Delta == 0:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("delta must not be zero"))
	}

	return nil
}
