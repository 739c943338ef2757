package usecase

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción. El runner
// de infraestructura los construye sobre la tx antes de invocar el callback.
type TxRepos struct {
	Products repository.ProductRepository
	Orders   repository.OrderRepository
	Updates  repository.ProductUpdateRepository
	Supplies repository.SupplyRequestRepository
}

// TxRunner ejecuta un callback dentro de una transacción: Commit si fn
// devuelve nil, Rollback en caso contrario. Puerto implementado por
// infrastructure/postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// SequenceReader lee el estado de una secuencia generadora de IDs. Solo lo
// consume la vista de contadores del panel de administración.
type SequenceReader interface {
	Current(ctx context.Context, name string) (int64, error)
}
