package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestDateOrZero(t *testing.T) {
	// dateEstablished es nullable en el esquema heredado: una fila sembrada
	// sin fecha no puede tumbar el listado de tiendas.
	assert.True(t, dateOrZero(pgtype.Date{Valid: false}).IsZero(),
		"NULL se mapea al cero de time.Time")

	when := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
	got := dateOrZero(pgtype.Date{Time: when, Valid: true})
	assert.Equal(t, when, got, "una fecha válida pasa sin cambios")
}
