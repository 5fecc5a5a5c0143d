package usecase

import (
	"context"
	"fmt"

	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/application/response"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/port"
	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/criteria"
)

// ListSalesUseCase caso de uso para listar ventas con criterios
type ListSalesUseCase struct {
	sales port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(sales port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{sales: sales}
}

// Execute busca ventas según los criterios recibidos
func (uc *ListSalesUseCase) Execute(ctx context.Context, crit criteria.Criteria) (*response.SaleListResponse, error) {
	summaries, total, err := uc.sales.SearchByCriteria(ctx, crit)
	if err != nil {
		return nil, fmt.Errorf("error listing sales: %w", err)
	}

	data := make([]response.SaleSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		data = append(data, response.SaleSummaryResponse{
			ID:         s.Sale.ID,
			Date:       s.Sale.Date,
			Total:      s.Sale.Total,
			ItemsCount: s.ItemsCount,
		})
	}

	return &response.SaleListResponse{
		TotalRecords: total,
		Data:         data,
	}, nil
}
