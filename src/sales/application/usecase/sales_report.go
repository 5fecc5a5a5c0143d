package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/application/response"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/port"
)

// SalesReportUseCase caso de uso para el reporte de ventas por rango de fechas
type SalesReportUseCase struct {
	sales port.SaleRepository
}

// NewSalesReportUseCase crea una nueva instancia del caso de uso
func NewSalesReportUseCase(sales port.SaleRepository) *SalesReportUseCase {
	return &SalesReportUseCase{sales: sales}
}

// Execute genera el reporte paginado para el rango [startDate, endDate].
// El rango se consulta como [start, end+1día) para aprovechar índices
// sobre la fecha en lugar de truncarla
func (uc *SalesReportUseCase) Execute(ctx context.Context, startDate, endDate time.Time, page, pageSize int) (*response.SalesReportResponse, error) {
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end_date must not be before start_date")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	from := startDate
	to := endDate.AddDate(0, 0, 1)

	sales, err := uc.sales.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}

	totalRecords := len(sales)
	totalPages := int(math.Ceil(float64(totalRecords) / float64(pageSize)))

	// Paginación en memoria sobre el rango consultado
	start := (page - 1) * pageSize
	if start > totalRecords {
		start = totalRecords
	}
	end := start + pageSize
	if end > totalRecords {
		end = totalRecords
	}

	data := make([]response.SaleSummaryResponse, 0, end-start)
	for _, sale := range sales[start:end] {
		data = append(data, response.SaleSummaryResponse{
			ID:         sale.ID,
			Date:       sale.Date,
			Total:      sale.Total,
			ItemsCount: sale.TotalItems(),
		})
	}

	return &response.SalesReportResponse{
		TotalRecords: totalRecords,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
		Data:         data,
	}, nil
}
