package restaurant

import "time"

// UserDetail is owned by exactly one RestaurantOwner.
// Email uniqueness is checked at write time, not enforced by a constraint.
type UserDetail struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"not null;column:first_name" json:"first_name"`
	LastName  string    `gorm:"not null;column:last_name" json:"last_name"`
	Email     string    `gorm:"not null;index;column:email" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UserDetail) TableName() string { return "user_detail" }
