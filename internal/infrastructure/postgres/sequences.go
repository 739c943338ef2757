package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-cli/internal/domain"
)

// Secuencias generadoras de identificadores del esquema.
const (
	SeqUsers          = "users_userid_seq"
	SeqOrders         = "orders_ordernumber_seq"
	SeqProductUpdates = "productupdates_updatenumber_seq"
	SeqSupplyRequests = "productsupplyrequests_requestnumber_seq"
)

var knownSequences = map[string]bool{
	SeqUsers:          true,
	SeqOrders:         true,
	SeqProductUpdates: true,
	SeqSupplyRequests: true,
}

// Sequences lee el estado de las secuencias del esquema. Solo lo usa la
// vista de contadores del panel de administración: la identidad de las filas
// nuevas siempre viene de INSERT ... RETURNING, nunca de leer la secuencia.
type Sequences struct {
	q Querier
}

// NewSequences construye el lector de secuencias.
func NewSequences(q Querier) *Sequences {
	return &Sequences{q: q}
}

// Current devuelve el último valor entregado por la secuencia. Se lee
// last_value directamente en lugar de currval() porque currval exige haber
// llamado nextval en la misma sesión. El nombre se valida contra la lista
// conocida porque el identificador no es un parámetro enlazable.
func (s *Sequences) Current(ctx context.Context, name string) (int64, error) {
	if !knownSequences[name] {
		return 0, domain.ErrInvalidInput
	}
	var value int64
	err := s.q.QueryRow(ctx, fmt.Sprintf("SELECT last_value FROM %s", name)).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("read sequence %s: %w", name, err)
	}
	return value, nil
}
