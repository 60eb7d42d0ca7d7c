package models

// Category represents a product category.
// Its name is unique across the catalog; deleting it removes its products.
type Category struct {
	ID       uint      `gorm:"primaryKey"`
	Name     string    `gorm:"size:50;not null;uniqueIndex:uq_categories_name"`
	Products []Product `gorm:"foreignKey:CategoryID"`
}

func (c *Category) TableName() string {
	return "categories"
}
