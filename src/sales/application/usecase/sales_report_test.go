package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/application/usecase"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type rangeRecordingSaleRepository struct {
	fakeSaleRepository
	from, to time.Time
}

func (r *rangeRecordingSaleRepository) FindByDateRange(_ context.Context, from, to time.Time) ([]*entity.Sale, error) {
	r.from = from
	r.to = to
	return r.sales, nil
}

func saleOn(date time.Time, total int64) *entity.Sale {
	sale := entity.NewSale(uuid.New(), date)
	sale.AddItem(uuid.New(), 1, decimal.NewFromInt(total))
	return sale
}

func TestSalesReport(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	t.Run("QueriesInclusiveRange", func(t *testing.T) {
		repo := &rangeRecordingSaleRepository{}
		uc := usecase.NewSalesReportUseCase(repo)

		report, err := uc.Execute(context.Background(), start, end, 1, 10)
		require.NoError(t, err)
		require.Equal(t, start, repo.from)
		// El límite superior es exclusivo: end + 1 día
		require.Equal(t, end.AddDate(0, 0, 1), repo.to)
		require.Zero(t, report.TotalRecords)
		require.Empty(t, report.Data)
	})

	t.Run("PaginatesResults", func(t *testing.T) {
		repo := &rangeRecordingSaleRepository{}
		for i := 0; i < 7; i++ {
			repo.sales = append(repo.sales, saleOn(start.AddDate(0, 0, i), int64(100*(i+1))))
		}
		uc := usecase.NewSalesReportUseCase(repo)

		report, err := uc.Execute(context.Background(), start, end, 2, 3)
		require.NoError(t, err)
		require.Equal(t, 7, report.TotalRecords)
		require.Equal(t, 2, report.Page)
		require.Equal(t, 3, report.PageSize)
		require.Equal(t, 3, report.TotalPages)
		require.Len(t, report.Data, 3)
		require.True(t, report.Data[0].Total.Equal(decimal.NewFromInt(400)))
		require.Equal(t, 1, report.Data[0].ItemsCount)
	})

	t.Run("LastPartialPage", func(t *testing.T) {
		repo := &rangeRecordingSaleRepository{}
		for i := 0; i < 7; i++ {
			repo.sales = append(repo.sales, saleOn(start.AddDate(0, 0, i), 100))
		}
		uc := usecase.NewSalesReportUseCase(repo)

		report, err := uc.Execute(context.Background(), start, end, 3, 3)
		require.NoError(t, err)
		require.Len(t, report.Data, 1)
	})

	t.Run("PageBeyondRangeIsEmpty", func(t *testing.T) {
		repo := &rangeRecordingSaleRepository{}
		repo.sales = append(repo.sales, saleOn(start, 100))
		uc := usecase.NewSalesReportUseCase(repo)

		report, err := uc.Execute(context.Background(), start, end, 5, 10)
		require.NoError(t, err)
		require.Equal(t, 1, report.TotalRecords)
		require.Empty(t, report.Data)
	})

	t.Run("DefaultsInvalidPagination", func(t *testing.T) {
		repo := &rangeRecordingSaleRepository{}
		uc := usecase.NewSalesReportUseCase(repo)

		report, err := uc.Execute(context.Background(), start, end, 0, -1)
		require.NoError(t, err)
		require.Equal(t, 1, report.Page)
		require.Equal(t, 10, report.PageSize)
	})

	t.Run("RejectsInvertedRange", func(t *testing.T) {
		repo := &rangeRecordingSaleRepository{}
		uc := usecase.NewSalesReportUseCase(repo)

		_, err := uc.Execute(context.Background(), end, start, 1, 10)
		require.Error(t, err)
	})
}
