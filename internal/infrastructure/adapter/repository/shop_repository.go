package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShopRepository implements persistence.ShopRepository using GORM
type ShopRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewShopRepository creates a new ShopRepository instance
func NewShopRepository(db *gorm.DB, logger coreport.Logger) *ShopRepository {
	return &ShopRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func shopItemToEntity(m *model.ShopItem) *entity.ShopItem {
	return &entity.ShopItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Active:      m.Active,
	}
}

func ownedItemToEntity(m *model.OwnedItem) *entity.OwnedItem {
	return &entity.OwnedItem{
		UserID:      m.UserID,
		ItemID:      m.ItemID,
		GrantedAt:   m.GrantedAt,
		Price:       m.Price,
		Name:        m.Name,
		Description: m.Description,
	}
}

// ListActiveItems returns active items, cheapest first
func (r *ShopRepository) ListActiveItems(ctx context.Context) ([]*entity.ShopItem, error) {
	var rows []model.ShopItem
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("price ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Wrap("list shop items", err)
	}

	items := make([]*entity.ShopItem, 0, len(rows))
	for i := range rows {
		items = append(items, shopItemToEntity(&rows[i]))
	}
	return items, nil
}

// GetItem returns a catalog item regardless of its active flag
func (r *ShopRepository) GetItem(ctx context.Context, itemID string) (*entity.ShopItem, error) {
	var itemModel model.ShopItem
	err := r.db.WithContext(ctx).Where("id = ?", itemID).Take(&itemModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrItemNotFound
	}
	if err != nil {
		return nil, r.errorClassifier.Wrap("get shop item", err)
	}
	return shopItemToEntity(&itemModel), nil
}

// UpsertItem creates or replaces a catalog item
func (r *ShopRepository) UpsertItem(ctx context.Context, item *entity.ShopItem) error {
	itemModel := model.ShopItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Active:      item.Active,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "price", "active", "updated_at"}),
	}).Create(&itemModel).Error
	if err != nil {
		return r.errorClassifier.Wrap("upsert shop item", err)
	}
	return nil
}

// FindGrant returns the grant of itemID to userID, or nil
func (r *ShopRepository) FindGrant(ctx context.Context, userID, itemID string) (*entity.OwnedItem, error) {
	var grant model.OwnedItem
	err := r.db.WithContext(ctx).Where("user_id = ? AND item_id = ?", userID, itemID).Take(&grant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.errorClassifier.Wrap("find grant", err)
	}
	return ownedItemToEntity(&grant), nil
}

// UpsertGrant writes the grant, refreshing the snapshot when it already exists
func (r *ShopRepository) UpsertGrant(ctx context.Context, grant *entity.OwnedItem) error {
	grantModel := model.OwnedItem{
		UserID:      grant.UserID,
		ItemID:      grant.ItemID,
		GrantedAt:   grant.GrantedAt,
		Price:       grant.Price,
		Name:        grant.Name,
		Description: grant.Description,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"granted_at", "price", "name", "description"}),
	}).Create(&grantModel).Error
	if err != nil {
		r.logger.Error("Database error when granting item", map[string]any{
			"user_id": grant.UserID,
			"item_id": grant.ItemID,
			"error":   err.Error(),
		})
		return r.errorClassifier.Wrap("upsert grant", err)
	}
	return nil
}

// ListGrants returns the items owned by userID, most recently granted first
func (r *ShopRepository) ListGrants(ctx context.Context, userID string) ([]*entity.OwnedItem, error) {
	var rows []model.OwnedItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("granted_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Wrap("list grants", err)
	}

	grants := make([]*entity.OwnedItem, 0, len(rows))
	for i := range rows {
		grants = append(grants, ownedItemToEntity(&rows[i]))
	}
	return grants, nil
}
