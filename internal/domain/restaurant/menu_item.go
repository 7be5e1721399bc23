package restaurant

import "time"

type MenuItem struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID uint      `gorm:"not null;index;column:restaurant_id" json:"restaurant_id"`
	Name         string    `gorm:"not null;column:name" json:"name"`
	Price        float64   `gorm:"not null;column:price" json:"price"`
	Description  string    `gorm:"column:description" json:"description"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (MenuItem) TableName() string { return "menu_item" }
