package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/pkg/config"
)

// Open abre la conexión GORM contra PostgreSQL con el pool configurado.
// TranslateError permite detectar violaciones de unicidad como
// gorm.ErrDuplicatedKey sin importar el driver.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.ConnectionString()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("abrir conexión: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtener *sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return db, nil
}

// AutoMigrate crea/ajusta el esquema de las entidades del dominio.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Category{},
		&entity.Product{},
		&entity.Item{},
		&entity.User{},
		&entity.Movement{},
	)
}
