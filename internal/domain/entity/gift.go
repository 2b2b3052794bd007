package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
)

// DefaultGiftIcon is shown when a gift has no icon of its own
const DefaultGiftIcon = "🎁"

// DefaultSenderName is used when the sender does not give a display name
const DefaultSenderName = "Bạn"

// Gift is a priced virtual gift from the catalog
type Gift struct {
	ID     string
	Name   string
	Price  int64
	Icon   string
	Active bool
}

// DisplayIcon returns the icon or the default one
func (g Gift) DisplayIcon() string {
	if g.Icon == "" {
		return DefaultGiftIcon
	}
	return g.Icon
}

// Snapshot returns the copy of the gift stored on messages and receipts
func (g Gift) Snapshot() GiftSnapshot {
	return GiftSnapshot{
		ID:    g.ID,
		Name:  g.Name,
		Price: g.Price,
		Icon:  g.DisplayIcon(),
	}
}

// GiftSnapshot is the gift payload frozen at send time
type GiftSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Icon  string `json:"icon"`
}

// GiftSource tells where a resolved gift came from
type GiftSource string

// Gift sources
const (
	GiftSourceCatalog  GiftSource = "catalog"
	GiftSourceFallback GiftSource = "fallback"
)

// GiftResolution is the outcome of looking a gift up by id
type GiftResolution struct {
	Gift   Gift
	Source GiftSource
}

// fallbackGifts are sendable even when the catalog has no record for them
var fallbackGifts = []Gift{
	{ID: "banh-mi-thit", Name: "Bánh mì thịt", Price: 20, Icon: "🥖", Active: true},
	{ID: "tra-sua", Name: "Trà sữa", Price: 15, Icon: "🧋", Active: true},
	{ID: "hoa-hong", Name: "Hoa hồng", Price: 10, Icon: "🌹", Active: true},
	{ID: "cafe-sua", Name: "Cà phê sữa", Price: 12, Icon: "☕️", Active: true},
}

// FallbackGift returns the built-in gift with the given id
func FallbackGift(id string) (Gift, bool) {
	for _, g := range fallbackGifts {
		if g.ID == id {
			return g, true
		}
	}
	return Gift{}, false
}

// ResolveGift picks the catalog record when present, otherwise the fallback table.
// catalog is nil when the catalog has no record for id.
func ResolveGift(id string, catalog *Gift) (GiftResolution, error) {
	if catalog == nil {
		fallback, ok := FallbackGift(id)
		if !ok {
			return GiftResolution{}, fmt.Errorf("%w: %s", errs.ErrGiftNotFound, id)
		}
		return GiftResolution{Gift: fallback, Source: GiftSourceFallback}, nil
	}

	if !catalog.Active {
		return GiftResolution{}, fmt.Errorf("%w: %s", errs.ErrGiftInactive, id)
	}

	gift := *catalog
	gift.ID = id
	if gift.Name == "" {
		gift.Name = id
	}
	if gift.Price <= 0 {
		return GiftResolution{}, fmt.Errorf("%w: %d", errs.ErrInvalidGiftPrice, gift.Price)
	}

	return GiftResolution{Gift: gift, Source: GiftSourceCatalog}, nil
}

// GiftAnnouncement is the chat text posted when a gift is sent
func GiftAnnouncement(senderName string, gift Gift) string {
	return fmt.Sprintf("🎁 %s đã tặng quà: %s %s (🥖 %d)", senderName, gift.Icon, gift.Name, gift.Price)
}
