package impl

import (
	"context"
	"testing"

	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/repository"
	"cabinet/internal/errors"
	mockRepo "cabinet/internal/mocks/repository"
	mockSvc "cabinet/internal/mocks/service"
	"cabinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type itemServiceFixtures struct {
	service  usecase.ItemUsecase
	itemRepo *mockRepo.MockItemRepository
	labels   *mockSvc.MockLabelService
}

func createTestItemService(t *testing.T) itemServiceFixtures {
	fx := itemServiceFixtures{
		itemRepo: mockRepo.NewMockItemRepository(t),
		labels:   mockSvc.NewMockLabelService(t),
	}
	fx.service = NewItemService(ItemServiceParams{
		ItemRepo: fx.itemRepo,
		Labels:   fx.labels,
		Config:   newTestConfig(0),
		Logger:   newDiscardLogger(),
	})

	return fx
}

func TestItemService_CreateItem_DefaultsParLevel(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(item *entity.Item) bool {
			return item.SKU == "IV-SET-20" && item.Name == "IV set" && item.ParLevel == 5
		})).
		Return(nil)

	item, err := fx.service.CreateItem(ctx, &usecase.ItemInput{SKU: " iv-set-20 ", Name: "IV set", Unit: "piece"})

	require.NoError(t, err)
	assert.Equal(t, 5, item.ParLevel)
}

func TestItemService_CreateItem_Validation(t *testing.T) {
	fx := createTestItemService(t)
	negative := -1

	tests := []struct {
		name  string
		input *usecase.ItemInput
	}{
		{name: "missing sku", input: &usecase.ItemInput{Name: "Gloves"}},
		{name: "missing name", input: &usecase.ItemInput{SKU: "GLV-M"}},
		{name: "negative par level", input: &usecase.ItemInput{SKU: "GLV-M", Name: "Gloves", ParLevel: &negative}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.CreateItem(context.Background(), tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestItemService_UpdateItem_KeepsParLevelWhenOmitted(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, id).Return(&entity.Item{ID: id, SKU: "GLV-M", Name: "Gloves", ParLevel: 40}, nil)
	fx.itemRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(item *entity.Item) bool {
			return item.ID == id && item.Name == "Nitrile gloves" && item.ParLevel == 40
		})).
		Return(nil)

	item, err := fx.service.UpdateItem(ctx, id, &usecase.ItemInput{SKU: "GLV-M", Name: "Nitrile gloves"})

	require.NoError(t, err)
	assert.Equal(t, 40, item.ParLevel)
}

func TestItemService_NotFoundIsMapped(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrItemNotFound)
	fx.itemRepo.EXPECT().Delete(ctx, id).Return(repository.ErrItemNotFound)

	_, err := fx.service.GetItem(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))

	err = fx.service.DeleteItem(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestItemService_ListItems_TrimsFilter(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().
		List(ctx, entity.ItemFilter{Category: "consumable", Search: "glove", Limit: 20}).
		Return([]*entity.Item{{SKU: "GLV-M"}}, int64(1), nil)

	page, err := fx.service.ListItems(ctx, entity.ItemFilter{Category: " consumable", Search: "glove ", Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}

func TestItemService_GenerateLabel(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	item := &entity.Item{ID: uuid.New(), SKU: "GLV-M"}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.labels.EXPECT().GenerateItemLabel(item).Return([]byte("png"), nil)

	png, err := fx.service.GenerateLabel(ctx, item.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
