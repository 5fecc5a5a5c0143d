package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleSummaryResponse representa una venta en listados y reportes
type SaleSummaryResponse struct {
	ID         uuid.UUID       `json:"id"`
	Date       time.Time       `json:"date"`
	Total      decimal.Decimal `json:"total"`
	ItemsCount int             `json:"items_count"`
}

// SaleListResponse representa el listado paginado de ventas
type SaleListResponse struct {
	TotalRecords int                   `json:"total_records"`
	Data         []SaleSummaryResponse `json:"data"`
}

// SalesReportResponse representa el reporte de ventas por rango de fechas
type SalesReportResponse struct {
	TotalRecords int                   `json:"total_records"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	TotalPages   int                   `json:"total_pages"`
	Data         []SaleSummaryResponse `json:"data"`
}
