package usecase

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
)

// reportLimit cuántas filas (o filas por tienda) muestran los reportes.
const reportLimit = 5

// ReportUseCase reportes de solo lectura para gerentes: popularidad de
// productos y clientes, y auditoría recurrente.
type ReportUseCase struct {
	reports repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reports repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports}
}

// PopularProducts top 5 de productos por cantidad de pedidos en las tiendas
// del actor.
func (uc *ReportUseCase) PopularProducts(ctx context.Context, actor *entity.User) ([]repository.ProductCount, error) {
	if !actor.IsStaff() {
		return nil, domain.ErrForbidden
	}
	return uc.reports.PopularProducts(ctx, actor.ID, reportLimit)
}

// PopularCustomers top 5 de clientes por cantidad de pedidos en las tiendas
// del actor.
func (uc *ReportUseCase) PopularCustomers(ctx context.Context, actor *entity.User) ([]repository.CustomerCount, error) {
	if !actor.IsStaff() {
		return nil, domain.ErrForbidden
	}
	return uc.reports.PopularCustomers(ctx, actor.ID, reportLimit)
}

// RecentUpdates grupos de auditoría más recurrentes por tienda del actor
// (hasta 5 por tienda, por conteo descendente).
func (uc *ReportUseCase) RecentUpdates(ctx context.Context, actor *entity.User) ([]repository.UpdateGroup, error) {
	if !actor.IsStaff() {
		return nil, domain.ErrForbidden
	}
	return uc.reports.RecurringUpdates(ctx, actor.ID, reportLimit)
}
