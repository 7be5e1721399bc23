package restaurant

import "time"

const (
	StatusActive = "active"

	MinPriceRating = 1
	MaxPriceRating = 3
)

// Restaurant is the aggregate root. Location and Owner are exclusively owned and share
// the restaurant's lifetime; Categories mirrors the current restaurant_category rows.
type Restaurant struct {
	ID          uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string               `gorm:"not null;index;column:name" json:"name"`
	PriceRating int                  `gorm:"not null;column:price_rating" json:"price_rating"`
	Rating      int                  `gorm:"not null;default:0;column:rating" json:"rating"`
	Status      string               `gorm:"not null;default:'active';column:status" json:"status"`
	LocationID  uint                 `gorm:"not null;uniqueIndex;column:location_id" json:"location_id"`
	Location    Location             `gorm:"foreignKey:LocationID" json:"location"`
	OwnerID     uint                 `gorm:"not null;uniqueIndex;column:restaurant_owner_id" json:"owner_id"`
	Owner       RestaurantOwner      `gorm:"foreignKey:OwnerID" json:"owner"`
	Categories  []RestaurantCategory `gorm:"foreignKey:RestaurantID" json:"categories"`
	MenuItems   []MenuItem           `gorm:"foreignKey:RestaurantID" json:"menu_items,omitempty"`
	CreatedAt   time.Time            `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"not null" json:"updated_at"`
}

func (Restaurant) TableName() string { return "restaurant" }
