package restaurant

import "time"

type RestaurantOwner struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserDetailID uint       `gorm:"not null;uniqueIndex;column:user_detail_id" json:"user_detail_id"`
	UserDetail   UserDetail `gorm:"foreignKey:UserDetailID" json:"user_detail"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}

func (RestaurantOwner) TableName() string { return "restaurant_owner" }
