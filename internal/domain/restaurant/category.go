package restaurant

// Category is a name-keyed tag shared by many restaurants.
type Category struct {
	Name string `gorm:"primaryKey;size:100;column:name" json:"name"`
}

func (Category) TableName() string { return "category" }

// RestaurantCategory links one restaurant to one category, keyed by (restaurant_id, category_name).
type RestaurantCategory struct {
	RestaurantID uint     `gorm:"primaryKey;autoIncrement:false;column:restaurant_id" json:"restaurant_id"`
	CategoryName string   `gorm:"primaryKey;size:100;column:category_name" json:"category_name"`
	Category     Category `gorm:"foreignKey:CategoryName;references:Name" json:"category"`
}

func (RestaurantCategory) TableName() string { return "restaurant_category" }

// CategoryNames returns the category names of the given links in order.
func CategoryNames(links []RestaurantCategory) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.CategoryName)
	}
	return out
}
