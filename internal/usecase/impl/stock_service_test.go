package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/repository"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	mockRepo "cabinet/internal/mocks/repository"
	mockSvc "cabinet/internal/mocks/service"
	"cabinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stockServiceFixtures struct {
	service   usecase.StockUsecase
	txManager *mockRepo.MockTransactionManager
	stockRepo *mockRepo.MockStockRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestStockService(t *testing.T) stockServiceFixtures {
	fx := stockServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		stockRepo: mockRepo.NewMockStockRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	srv, err := NewStockService(StockServiceParams{
		TxManager: fx.txManager,
		StockRepo: fx.stockRepo,
		Publisher: fx.publisher,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)
	fx.service = srv

	return fx
}

// adjustTx wires a transaction whose item and stock repositories are mocks.
func (fx stockServiceFixtures) adjustTx(t *testing.T) (*mockRepo.MockItemRepository, *mockRepo.MockStockRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txItemRepo := mockRepo.NewMockItemRepository(t)
	txStockRepo := mockRepo.NewMockStockRepository(t)
	factory.EXPECT().ItemRepo().Return(txItemRepo)
	factory.EXPECT().StockRepo().Return(txStockRepo).Maybe()
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(executeWith(factory))

	return txItemRepo, txStockRepo
}

func TestStockService_Adjust_StoresReturnedTimestamp(t *testing.T) {
	fx := createTestStockService(t)
	adjustedAt := time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC)
	fx.service.(*stockService).now = func() time.Time { return adjustedAt }

	ctx := context.Background()
	itemID, levelID := uuid.New(), uuid.New()

	txItemRepo, txStockRepo := fx.adjustTx(t)
	txItemRepo.EXPECT().FindByID(ctx, itemID).Return(&entity.Item{ID: itemID}, nil)
	txStockRepo.EXPECT().LockLevel(ctx, "ICU-1", itemID).
		Return(&entity.StockLevel{ID: levelID, CabinetCode: "ICU-1", ItemID: itemID, Quantity: 2}, nil)

	var saved time.Time
	txStockRepo.EXPECT().SaveLevel(ctx, mock.AnythingOfType("*entity.StockLevel")).
		Run(func(_ context.Context, level *entity.StockLevel) {
			saved = level.UpdatedAt
		}).
		Return(nil)
	txStockRepo.EXPECT().CreateMovement(ctx, mock.AnythingOfType("*entity.StockMovement")).Return(nil)
	fx.publisher.EXPECT().PublishStockEvent(ctx, mock.Anything).Return(nil)

	output, err := fx.service.Adjust(ctx, &usecase.AdjustStockInput{
		CabinetCode: "ICU-1",
		ItemID:      itemID,
		Delta:       4,
		ActorID:     uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, adjustedAt, saved)
	assert.Equal(t, saved, output.Level.UpdatedAt)
}

func TestStockService_Adjust_Success(t *testing.T) {
	fx := createTestStockService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	itemID, actorID, levelID, movementID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	txItemRepo, txStockRepo := fx.adjustTx(t)
	txItemRepo.EXPECT().FindByID(ctx, itemID).Return(&entity.Item{ID: itemID, ParLevel: 5}, nil)
	txStockRepo.EXPECT().LockLevel(ctx, "ICU-1", itemID).
		Return(&entity.StockLevel{ID: levelID, CabinetCode: "ICU-1", ItemID: itemID, Quantity: 8}, nil)
	txStockRepo.EXPECT().
		SaveLevel(ctx, mock.MatchedBy(func(level *entity.StockLevel) bool {
			return level.ID == levelID && level.Quantity == 5
		})).
		Return(nil)
	txStockRepo.EXPECT().
		CreateMovement(ctx, mock.AnythingOfType("*entity.StockMovement")).
		Run(func(_ context.Context, movement *entity.StockMovement) {
			movement.ID = movementID
		}).
		Return(nil)

	var published *service.StockEventMessage
	fx.publisher.EXPECT().
		PublishStockEvent(ctx, mock.AnythingOfType("*service.StockEventMessage")).
		Run(func(_ context.Context, msg *service.StockEventMessage) {
			published = msg
		}).
		Return(nil)

	output, err := fx.service.Adjust(ctx, &usecase.AdjustStockInput{
		CabinetCode: " icu-1 ",
		ItemID:      itemID,
		Delta:       -3,
		Reason:      "dispensed",
		ActorID:     actorID,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, output.Level.Quantity)
	assert.Equal(t, movementID, output.Movement.ID)
	assert.Equal(t, 5, output.Movement.QuantityAfter)

	require.NotNil(t, published)
	assert.Equal(t, "req-42", published.RequestID)
	assert.Equal(t, entity.StockEventAdjusted, published.Event.Type)
	assert.Equal(t, movementID, published.Event.MovementID)
	assert.Equal(t, "ICU-1", published.Event.CabinetCode)
	assert.Equal(t, -3, published.Event.Delta)
	assert.Equal(t, 5, published.Event.QuantityAfter)
	assert.NotEqual(t, uuid.Nil, published.Event.EventID)
}

func TestStockService_Adjust_InsufficientStock(t *testing.T) {
	fx := createTestStockService(t)
	ctx := context.Background()
	itemID := uuid.New()

	txItemRepo, txStockRepo := fx.adjustTx(t)
	txItemRepo.EXPECT().FindByID(ctx, itemID).Return(&entity.Item{ID: itemID}, nil)
	txStockRepo.EXPECT().LockLevel(ctx, "ICU-1", itemID).
		Return(&entity.StockLevel{ID: uuid.New(), CabinetCode: "ICU-1", ItemID: itemID, Quantity: 2}, nil)

	_, err := fx.service.Adjust(ctx, &usecase.AdjustStockInput{CabinetCode: "ICU-1", ItemID: itemID, Delta: -3})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestStockService_Adjust_UnknownItem(t *testing.T) {
	fx := createTestStockService(t)
	ctx := context.Background()
	itemID := uuid.New()

	txItemRepo, _ := fx.adjustTx(t)
	txItemRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrItemNotFound)

	_, err := fx.service.Adjust(ctx, &usecase.AdjustStockInput{CabinetCode: "ICU-1", ItemID: itemID, Delta: 4})

	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestStockService_Adjust_PublishFailureKeepsAdjustment(t *testing.T) {
	fx := createTestStockService(t)
	ctx := context.Background()
	itemID := uuid.New()

	txItemRepo, txStockRepo := fx.adjustTx(t)
	txItemRepo.EXPECT().FindByID(ctx, itemID).Return(&entity.Item{ID: itemID}, nil)
	txStockRepo.EXPECT().LockLevel(ctx, "WARD-3", itemID).
		Return(&entity.StockLevel{ID: uuid.New(), CabinetCode: "WARD-3", ItemID: itemID}, nil)
	txStockRepo.EXPECT().SaveLevel(ctx, mock.Anything).Return(nil)
	txStockRepo.EXPECT().CreateMovement(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishStockEvent(ctx, mock.Anything).Return(errors.New("topic not found"))

	output, err := fx.service.Adjust(ctx, &usecase.AdjustStockInput{CabinetCode: "WARD-3", ItemID: itemID, Delta: 12})

	require.NoError(t, err)
	assert.Equal(t, 12, output.Level.Quantity)
}

func TestStockService_Adjust_Validation(t *testing.T) {
	fx := createTestStockService(t)
	itemID := uuid.New()

	tests := []struct {
		name  string
		input *usecase.AdjustStockInput
	}{
		{name: "empty cabinet", input: &usecase.AdjustStockInput{CabinetCode: "  ", ItemID: itemID, Delta: 1}},
		{name: "missing item", input: &usecase.AdjustStockInput{CabinetCode: "ICU-1", Delta: 1}},
		{name: "zero delta", input: &usecase.AdjustStockInput{CabinetCode: "ICU-1", ItemID: itemID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Adjust(context.Background(), tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestStockService_ListLevels(t *testing.T) {
	fx := createTestStockService(t)
	ctx := context.Background()

	fx.stockRepo.EXPECT().ListLevels(ctx, "ICU-1").Return([]*entity.StockLevel{{CabinetCode: "ICU-1", Quantity: 3}}, nil)

	levels, err := fx.service.ListLevels(ctx, "icu-1")

	require.NoError(t, err)
	assert.Len(t, levels, 1)
}

func TestStockService_Report(t *testing.T) {
	fx := createTestStockService(t)
	ctx := context.Background()

	summaries := []*entity.ItemStockSummary{
		{SKU: "GLV-M", ParLevel: 40, TotalQuantity: 300, CabinetCount: 3},
		{SKU: "SYR-5ML", ParLevel: 10, TotalQuantity: 14, CabinetCount: 2, LowCabinets: 1},
	}
	fx.stockRepo.EXPECT().SummarizeByItem(ctx).Return(summaries, nil)

	report, err := fx.service.Report(ctx)

	require.NoError(t, err)
	assert.Len(t, report.Items, 2)
	require.Len(t, report.BelowPar, 1)
	assert.Equal(t, "SYR-5ML", report.BelowPar[0].SKU)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.NotEmpty(t, report.GeneratedAtLocal)
}

func TestNewStockService_UnknownTimezone(t *testing.T) {
	cfg := newTestConfig(0)
	cfg.Env.Timezone = "Mars/Olympus_Mons"

	_, err := NewStockService(StockServiceParams{Config: cfg, Logger: newDiscardLogger()})

	assert.Error(t, err)
}
