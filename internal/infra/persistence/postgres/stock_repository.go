package postgres

import (
	"context"

	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/repository"
	"cabinet/internal/errors"
	"cabinet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{db: db}
}

func (repo *stockRepository) LockLevel(ctx context.Context, cabinetCode string, itemID uuid.UUID) (*entity.StockLevel, error) {
	db := repo.db.WithContext(ctx)

	// Make sure the row exists so the lock below always has something to hold.
	seed := &model.StockLevelModel{CabinetCode: cabinetCode, ItemID: itemID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrItemNotFound.WrapMessage("unknown item")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to seed stock level")
	}

	var levelM model.StockLevelModel
	err := db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("cabinet_code = ? AND item_id = ?", cabinetCode, itemID).
		First(&levelM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock stock level")
	}

	return toStockLevelDomain(&levelM), nil
}

// SaveLevel writes the quantity and the caller's UpdatedAt, so the value the
// caller returns is the value stored.
func (repo *stockRepository) SaveLevel(ctx context.Context, level *entity.StockLevel) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StockLevelModel{}).
		Where("id = ?", level.ID).
		Updates(map[string]any{
			"quantity":   level.Quantity,
			"updated_at": level.UpdatedAt,
		})
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInsufficientStock.WrapMessage("quantity would become negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save stock level")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStockLevelNotFound
	}

	return nil
}

func (repo *stockRepository) FindLevel(ctx context.Context, cabinetCode string, itemID uuid.UUID) (*entity.StockLevel, error) {
	var levelM model.StockLevelModel
	err := repo.db.WithContext(ctx).
		Where("cabinet_code = ? AND item_id = ?", cabinetCode, itemID).
		First(&levelM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockLevelNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock level")
	}

	return toStockLevelDomain(&levelM), nil
}

func (repo *stockRepository) ListLevels(ctx context.Context, cabinetCode string) ([]*entity.StockLevel, error) {
	query := repo.db.WithContext(ctx).Model(&model.StockLevelModel{})
	if cabinetCode != "" {
		query = query.Where("cabinet_code = ?", cabinetCode)
	}

	var levelModels []*model.StockLevelModel
	if err := query.Order("cabinet_code ASC, item_id ASC").Find(&levelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stock levels")
	}

	levels := make([]*entity.StockLevel, 0, len(levelModels))
	for _, levelM := range levelModels {
		levels = append(levels, toStockLevelDomain(levelM))
	}

	return levels, nil
}

func (repo *stockRepository) CreateMovement(ctx context.Context, movement *entity.StockMovement) error {
	movementM := fromStockMovementDomain(movement)

	if err := repo.db.WithContext(ctx).Create(movementM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record stock movement")
	}

	movement.ID = movementM.ID
	movement.CreatedAt = movementM.CreatedAt

	return nil
}

type itemSummaryRow struct {
	ItemID        uuid.UUID
	SKU           string `gorm:"column:sku"`
	Name          string
	ParLevel      int
	TotalQuantity int
	CabinetCount  int
	LowCabinets   int
}

// SummarizeByItem is a reporting query and may be served by a replica.
func (repo *stockRepository) SummarizeByItem(ctx context.Context) ([]*entity.ItemStockSummary, error) {
	var rows []itemSummaryRow
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Table("items AS i").
		Select(`i.id AS item_id, i.sku, i.name, i.par_level,
			COALESCE(SUM(s.quantity), 0) AS total_quantity,
			COUNT(s.id) AS cabinet_count,
			COUNT(s.id) FILTER (WHERE s.quantity <= i.par_level) AS low_cabinets`).
		Joins("LEFT JOIN stock_levels AS s ON s.item_id = i.id").
		Group("i.id, i.sku, i.name, i.par_level").
		Order("i.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize stock")
	}

	summaries := make([]*entity.ItemStockSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entity.ItemStockSummary{
			ItemID:        row.ItemID,
			SKU:           row.SKU,
			Name:          row.Name,
			ParLevel:      row.ParLevel,
			TotalQuantity: row.TotalQuantity,
			CabinetCount:  row.CabinetCount,
			LowCabinets:   row.LowCabinets,
		})
	}

	return summaries, nil
}

func (repo *stockRepository) CreateAlert(ctx context.Context, alert *entity.StockAlert) (bool, error) {
	alertM := fromStockAlertDomain(alert)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "event_id"}}, DoNothing: true}).
		Create(alertM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create stock alert")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return true, nil
}

func toStockLevelDomain(data *model.StockLevelModel) *entity.StockLevel {
	if data == nil {
		return nil
	}

	return &entity.StockLevel{
		ID:          data.ID,
		CabinetCode: data.CabinetCode,
		ItemID:      data.ItemID,
		Quantity:    data.Quantity,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromStockMovementDomain(data *entity.StockMovement) *model.StockMovementModel {
	return &model.StockMovementModel{
		ID:            data.ID,
		CabinetCode:   data.CabinetCode,
		ItemID:        data.ItemID,
		Delta:         data.Delta,
		QuantityAfter: data.QuantityAfter,
		Reason:        data.Reason,
		ActorID:       data.ActorID,
		CreatedAt:     data.CreatedAt,
	}
}

func fromStockAlertDomain(data *entity.StockAlert) *model.StockAlertModel {
	return &model.StockAlertModel{
		ID:          data.ID,
		EventID:     data.EventID,
		CabinetCode: data.CabinetCode,
		ItemID:      data.ItemID,
		Quantity:    data.Quantity,
		ParLevel:    data.ParLevel,
		CreatedAt:   data.CreatedAt,
	}
}
