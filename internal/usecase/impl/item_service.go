package impl

import (
	"context"
	"log/slog"
	"strings"

	"cabinet/config"
	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/repository"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	"cabinet/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type itemService struct {
	itemRepo        repository.ItemRepository
	labels          service.LabelService
	defaultParLevel int
	logger          *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo repository.ItemRepository
	Labels   service.LabelService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	defaultParLevel := 0
	if params.Config != nil && params.Config.Stock != nil {
		defaultParLevel = params.Config.Stock.DefaultParLevel
	}

	return &itemService{
		itemRepo:        params.ItemRepo,
		labels:          params.Labels,
		defaultParLevel: defaultParLevel,
		logger:          params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *itemService) CreateItem(ctx context.Context, input *usecase.ItemInput) (*entity.Item, error) {
	item := &entity.Item{ParLevel: srv.defaultParLevel}
	if err := applyItemInput(item, input); err != nil {
		return nil, err
	}

	if err := srv.itemRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}
	srv.log(ctx).Info("Item created", slog.Any("itemID", item.ID), slog.String("sku", item.SKU))

	return item, nil
}

func (srv *itemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapItemLookupError(err)
	}

	return item, nil
}

func (srv *itemService) ListItems(ctx context.Context, filter entity.ItemFilter) (*usecase.ItemPage, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Search = strings.TrimSpace(filter.Search)

	items, total, err := srv.itemRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return &usecase.ItemPage{Items: items, Total: total}, nil
}

func (srv *itemService) UpdateItem(ctx context.Context, id uuid.UUID, input *usecase.ItemInput) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapItemLookupError(err)
	}
	if err := applyItemInput(item, input); err != nil {
		return nil, err
	}

	if err := srv.itemRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, mapItemLookupError(err)
		}

		return nil, errors.Wrap(err, "failed to update item")
	}

	return item, nil
}

func (srv *itemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := srv.itemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return mapItemLookupError(err)
		}

		return errors.Wrap(err, "failed to delete item")
	}
	srv.log(ctx).Info("Item deleted", slog.Any("itemID", id))

	return nil
}

func (srv *itemService) GenerateLabel(ctx context.Context, id uuid.UUID) ([]byte, error) {
	item, err := srv.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.labels.GenerateItemLabel(item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render item label")
	}

	return png, nil
}

func applyItemInput(item *entity.Item, input *usecase.ItemInput) error {
	item.SKU = strings.ToUpper(strings.TrimSpace(input.SKU))
	item.Name = strings.TrimSpace(input.Name)
	item.Category = strings.TrimSpace(input.Category)
	item.Unit = strings.TrimSpace(input.Unit)
	item.Description = strings.TrimSpace(input.Description)
	if input.ParLevel != nil {
		item.ParLevel = *input.ParLevel
	}

	switch {
	case item.SKU == "":
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("sku is required"))
	case item.Name == "":
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name is required"))
	case item.ParLevel < 0:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("par level cannot be negative"))
	}

	return nil
}

func mapItemLookupError(err error) error {
	if errors.Is(err, repository.ErrItemNotFound) {
		return errors.Wrap(domainerrors.ErrItemNotFound, "item lookup failed")
	}

	return errors.Wrap(err, "failed to find item")
}
