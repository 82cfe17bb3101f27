package entity

import "time"

// Category representa una categoría de productos. Name se guarda ya
// normalizado (title-case por locale) y es único: el índice de la base es la
// fuente de verdad de la unicidad.
type Category struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"uniqueIndex;size:100;not null"`
	Description string    `gorm:"size:255"`
	CreatedAt   time.Time `gorm:"not null"`

	Products []Product `gorm:"foreignKey:CategoryID"`
}

// TableName nombre de tabla explícito.
func (Category) TableName() string { return "categories" }
