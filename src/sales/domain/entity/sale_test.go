package entity_test

import (
	"testing"
	"time"

	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSale(t *testing.T) {
	date := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	t.Run("NewSaleStartsEmpty", func(t *testing.T) {
		id := uuid.New()
		sale := entity.NewSale(id, date)
		require.Equal(t, id, sale.ID)
		require.Equal(t, date, sale.Date)
		require.True(t, sale.Total.IsZero())
		require.Zero(t, sale.TotalItems())
	})

	t.Run("AddItemRecalculatesTotal", func(t *testing.T) {
		sale := entity.NewSale(uuid.New(), date)
		laptopID := uuid.New()
		mouseID := uuid.New()

		sale.AddItem(laptopID, 2, decimal.NewFromInt(1500))
		require.True(t, sale.Total.Equal(decimal.NewFromInt(3000)), "total was %s", sale.Total)

		sale.AddItem(mouseID, 3, decimal.NewFromInt(50))
		require.True(t, sale.Total.Equal(decimal.NewFromInt(3150)), "total was %s", sale.Total)

		require.Equal(t, 2, sale.TotalItems())
		require.Equal(t, laptopID, sale.Items[0].ProductID)
		require.Equal(t, sale.ID, sale.Items[0].SaleID)
		require.Equal(t, mouseID, sale.Items[1].ProductID)
	})

	t.Run("SubtotalWithDecimalPrices", func(t *testing.T) {
		sale := entity.NewSale(uuid.New(), date)
		sale.AddItem(uuid.New(), 3, decimal.RequireFromString("19.99"))
		require.True(t, sale.Total.Equal(decimal.RequireFromString("59.97")), "total was %s", sale.Total)
	})
}

func TestSaleErrors(t *testing.T) {
	t.Run("ProductNotFoundMessage", func(t *testing.T) {
		id := uuid.New()
		err := &entity.ProductNotFoundError{ProductID: id}
		require.Equal(t, "el producto con ID "+id.String()+" no existe", err.Error())
	})

	t.Run("ShortfallMessage", func(t *testing.T) {
		s := entity.Shortfall{ProductName: "Laptop Core i7", Available: 1, Requested: 2}
		require.Equal(t, "Stock insuficiente para 'Laptop Core i7': disponible 1, solicitado 2.", s.Message())
	})

	t.Run("InsufficientStockJoinsAllShortfalls", func(t *testing.T) {
		err := &entity.InsufficientStockError{Shortfalls: []entity.Shortfall{
			{ProductName: "Laptop", Available: 2, Requested: 10},
			{ProductName: "Mouse", Available: 3, Requested: 5},
		}}
		require.Equal(t,
			"Stock insuficiente para 'Laptop': disponible 2, solicitado 10. "+
				"Stock insuficiente para 'Mouse': disponible 3, solicitado 5.",
			err.Error())
	})
}
