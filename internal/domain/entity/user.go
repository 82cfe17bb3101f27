package entity

import "time"

// User representa un usuario que registra movimientos. Profile es una
// etiqueta libre (no hay roles forzados ni autenticación en este sistema).
type User struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"uniqueIndex;size:150;not null"`
	Profile   string    `gorm:"size:50;not null"`
	CreatedAt time.Time `gorm:"not null"`

	Movements []Movement `gorm:"foreignKey:UserID"`
}

// TableName nombre de tabla explícito.
func (User) TableName() string { return "users" }
