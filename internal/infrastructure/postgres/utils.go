package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isUniqueViolation verifica si un error es una violación de constraint único.
// GORM con TranslateError lo normaliza a ErrDuplicatedKey; el código 23505 de
// pgconn se chequea además por si el error llega sin traducir.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// startOfDay trunca un instante al inicio de su día en UTC. Las comparaciones
// de vencimiento son por fecha, no por hora.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
