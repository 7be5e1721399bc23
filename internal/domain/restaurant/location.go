package restaurant

import "time"

// Location is owned by exactly one Restaurant. Street uniqueness is checked at write time.
type Location struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Street    string    `gorm:"not null;index;column:street" json:"street"`
	City      string    `gorm:"not null;column:city" json:"city"`
	ZipCode   int       `gorm:"not null;column:zip_code" json:"zip_code"`
	State     string    `gorm:"not null;size:2;column:state" json:"state"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Location) TableName() string { return "location" }
