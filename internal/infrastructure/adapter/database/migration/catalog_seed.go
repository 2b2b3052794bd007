package migration

import (
	"context"
	"fmt"
	"os"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/persistence"
	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

// CatalogGift is a gift entry of the catalog file
type CatalogGift struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Price  int64  `yaml:"price"`
	Icon   string `yaml:"icon"`
	Active *bool  `yaml:"active"`
}

// CatalogShopItem is a shop entry of the catalog file
type CatalogShopItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       int64  `yaml:"price"`
	Active      *bool  `yaml:"active"`
}

// Catalog is the provisioning file for gifts and shop items
type Catalog struct {
	Gifts     []CatalogGift     `yaml:"gifts"`
	ShopItems []CatalogShopItem `yaml:"shopItems"`
}

// LoadCatalog reads a catalog file. Entries without an id get one derived
// from their name.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes catalog YAML
func ParseCatalog(raw []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for i := range catalog.Gifts {
		gift := &catalog.Gifts[i]
		if gift.ID == "" {
			gift.ID = slug.Make(gift.Name)
		}
		if gift.ID == "" {
			return nil, fmt.Errorf("catalog gift %d has neither id nor name", i)
		}
	}
	for i := range catalog.ShopItems {
		item := &catalog.ShopItems[i]
		if item.ID == "" {
			item.ID = slug.Make(item.Name)
		}
		if item.ID == "" {
			return nil, fmt.Errorf("catalog shop item %d has neither id nor name", i)
		}
	}

	return &catalog, nil
}

func isActive(flag *bool) bool {
	return flag == nil || *flag
}

// CatalogSeeder upserts catalog entries through the ledger unit of work
type CatalogSeeder struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewCatalogSeeder creates a new catalog seeder
func NewCatalogSeeder(uow persistence.UnitOfWork, logger coreport.Logger) *CatalogSeeder {
	return &CatalogSeeder{
		uow:    uow,
		logger: logger,
	}
}

// Seed writes every catalog entry in one transaction
func (s *CatalogSeeder) Seed(ctx context.Context, catalog *Catalog) error {
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		gifts := s.uow.GetGiftRepository(txCtx)
		for _, g := range catalog.Gifts {
			gift := &entity.Gift{
				ID:     g.ID,
				Name:   g.Name,
				Price:  g.Price,
				Icon:   g.Icon,
				Active: isActive(g.Active),
			}
			if err := gifts.UpsertCatalogGift(txCtx, gift); err != nil {
				return err
			}
		}

		shop := s.uow.GetShopRepository(txCtx)
		for _, i := range catalog.ShopItems {
			item := &entity.ShopItem{
				ID:          i.ID,
				Name:        i.Name,
				Description: i.Description,
				Price:       i.Price,
				Active:      isActive(i.Active),
			}
			if err := shop.UpsertItem(txCtx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to seed catalog", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	s.logger.Info("Catalog seeded", map[string]any{
		"gifts":      len(catalog.Gifts),
		"shop_items": len(catalog.ShopItems),
	})
	return nil
}
