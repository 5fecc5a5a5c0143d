package controller_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	productEntity "github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/application/usecase"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/port"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/infrastructure/controller"
	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/criteria"
	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type memProductRepository struct {
	store map[uuid.UUID]*productEntity.Product
}

func (r *memProductRepository) Save(_ context.Context, p *productEntity.Product) error {
	r.store[p.ID] = p
	return nil
}

func (r *memProductRepository) FindByID(_ context.Context, id uuid.UUID) (*productEntity.Product, error) {
	p, ok := r.store[id]
	if !ok {
		return nil, productEntity.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *memProductRepository) Update(_ context.Context, p *productEntity.Product) error {
	r.store[p.ID] = p
	return nil
}

func (r *memProductRepository) SearchByCriteria(_ context.Context, _ criteria.Criteria) ([]*productEntity.Product, int, error) {
	return nil, 0, nil
}

type memSaleRepository struct {
	products  *memProductRepository
	sales     []*entity.Sale
	alwaysErr error
	from, to  time.Time
}

func (r *memSaleRepository) RegisterSale(_ context.Context, sale *entity.Sale, products []*productEntity.Product) error {
	if r.alwaysErr != nil {
		return r.alwaysErr
	}
	for _, p := range products {
		clone := *p
		clone.Version++
		r.products.store[p.ID] = &clone
	}
	r.sales = append(r.sales, sale)
	return nil
}

func (r *memSaleRepository) FindByDateRange(_ context.Context, from, to time.Time) ([]*entity.Sale, error) {
	r.from = from
	r.to = to
	return r.sales, nil
}

func (r *memSaleRepository) SearchByCriteria(_ context.Context, _ criteria.Criteria) ([]*port.SaleSummary, int, error) {
	return nil, 0, nil
}

type locationClock struct {
	loc *time.Location
}

func (c locationClock) Now() time.Time { return time.Now().In(c.loc) }

func setupRouter(productRepo *memProductRepository, saleRepo *memSaleRepository, clk port.Clock) *gin.Engine {
	gin.SetMode(gin.TestMode)

	registerUC := usecase.NewRegisterSaleUseCase(productRepo, saleRepo, clk).
		WithRetryPolicy(time.Millisecond, 2)
	listUC := usecase.NewListSalesUseCase(saleRepo)
	reportUC := usecase.NewSalesReportUseCase(saleRepo)

	router := gin.New()
	api := router.Group("/api/v1")
	controller.NewSaleController(registerUC, listUC, reportUC, clk).RegisterRoutes(api)
	return router
}

func postSale(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSaleControllerRegisterSale(t *testing.T) {
	newRepos := func(t *testing.T, stock int) (*memProductRepository, *memSaleRepository, *productEntity.Product) {
		t.Helper()
		product, err := productEntity.NewProduct("Laptop Core i7", decimal.NewFromInt(1500), stock, nil)
		require.NoError(t, err)
		productRepo := &memProductRepository{store: map[uuid.UUID]*productEntity.Product{product.ID: product}}
		saleRepo := &memSaleRepository{products: productRepo}
		return productRepo, saleRepo, product
	}

	t.Run("Returns201WithLocation", func(t *testing.T) {
		productRepo, saleRepo, product := newRepos(t, 10)
		router := setupRouter(productRepo, saleRepo, locationClock{loc: time.UTC})

		rec := postSale(router, fmt.Sprintf(`{"items":[{"product_id":%q,"quantity":2}]}`, product.ID))
		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Message string    `json:"message"`
			SaleID  uuid.UUID `json:"sale_id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "Venta registrada exitosamente", body.Message)
		require.NotEqual(t, uuid.Nil, body.SaleID)
		require.Equal(t, "/api/v1/sales/"+body.SaleID.String(), rec.Header().Get("Location"))

		require.Equal(t, 8, productRepo.store[product.ID].Stock)
	})

	t.Run("Returns404ForUnknownProduct", func(t *testing.T) {
		productRepo, saleRepo, _ := newRepos(t, 10)
		router := setupRouter(productRepo, saleRepo, locationClock{loc: time.UTC})

		rec := postSale(router, fmt.Sprintf(`{"items":[{"product_id":%q,"quantity":1}]}`, uuid.New()))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "no existe")
	})

	t.Run("Returns422WithAllShortfalls", func(t *testing.T) {
		productRepo, saleRepo, product := newRepos(t, 1)
		router := setupRouter(productRepo, saleRepo, locationClock{loc: time.UTC})

		rec := postSale(router, fmt.Sprintf(`{"items":[{"product_id":%q,"quantity":2}]}`, product.ID))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Contains(t, rec.Body.String(), "disponible 1")
		require.Contains(t, rec.Body.String(), "solicitado 2")
	})

	t.Run("Returns400ForMalformedBody", func(t *testing.T) {
		productRepo, saleRepo, _ := newRepos(t, 10)
		router := setupRouter(productRepo, saleRepo, locationClock{loc: time.UTC})

		require.Equal(t, http.StatusBadRequest, postSale(router, `{"items":`).Code)
		require.Equal(t, http.StatusBadRequest, postSale(router, `{}`).Code)
	})

	t.Run("Returns503WhenRetriesExhausted", func(t *testing.T) {
		productRepo, saleRepo, product := newRepos(t, 10)
		saleRepo.alwaysErr = fmt.Errorf("db down: %w", errs.ErrTransient)
		router := setupRouter(productRepo, saleRepo, locationClock{loc: time.UTC})

		rec := postSale(router, fmt.Sprintf(`{"items":[{"product_id":%q,"quantity":1}]}`, product.ID))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, 10, productRepo.store[product.ID].Stock)
	})
}

func TestSaleControllerSalesReport(t *testing.T) {
	productRepo := &memProductRepository{store: map[uuid.UUID]*productEntity.Product{}}
	saleRepo := &memSaleRepository{products: productRepo}
	sale := entity.NewSale(uuid.New(), time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC))
	sale.AddItem(uuid.New(), 2, decimal.NewFromInt(1500))
	saleRepo.sales = append(saleRepo.sales, sale)

	router := setupRouter(productRepo, saleRepo, locationClock{loc: time.UTC})

	t.Run("ReturnsPaginatedReport", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/report?start_date=2026-08-01&end_date=2026-08-31", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			TotalRecords int `json:"total_records"`
			TotalPages   int `json:"total_pages"`
			Data         []struct {
				ItemsCount int `json:"items_count"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, 1, body.TotalRecords)
		require.Equal(t, 1, body.TotalPages)
		require.Len(t, body.Data, 1)
		require.Equal(t, 1, body.Data[0].ItemsCount)
	})

	t.Run("RejectsInvalidDates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/report?start_date=15-08-2026&end_date=2026-08-31", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("InterpretsDatesInBusinessTimezone", func(t *testing.T) {
		cot := time.FixedZone("COT", -5*60*60)
		tzProductRepo := &memProductRepository{store: map[uuid.UUID]*productEntity.Product{}}
		tzSaleRepo := &memSaleRepository{products: tzProductRepo}

		// Venta a las 22:00 hora local del último día del rango; en UTC ya
		// es el día siguiente
		lateSale := entity.NewSale(uuid.New(), time.Date(2026, 8, 31, 22, 0, 0, 0, cot))
		lateSale.AddItem(uuid.New(), 1, decimal.NewFromInt(100))
		tzSaleRepo.sales = append(tzSaleRepo.sales, lateSale)

		tzRouter := setupRouter(tzProductRepo, tzSaleRepo, locationClock{loc: cot})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/report?start_date=2026-08-01&end_date=2026-08-31", nil)
		rec := httptest.NewRecorder()
		tzRouter.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		// Los límites del día son medianoche local, no medianoche UTC
		require.True(t, tzSaleRepo.from.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, cot)), "from was %s", tzSaleRepo.from)
		require.True(t, tzSaleRepo.to.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, cot)), "to was %s", tzSaleRepo.to)
		require.True(t, lateSale.Date.Before(tzSaleRepo.to) && !lateSale.Date.Before(tzSaleRepo.from))
	})
}
