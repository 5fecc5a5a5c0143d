package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	productEntity "github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/application/request"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/application/response"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/application/usecase"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/port"
	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/errs"
	sharedCriteria "github.com/JhonCorredor/IndigoSalesSystem/src/shared/infrastructure/criteria"

	"github.com/gin-gonic/gin"
)

// Campos permitidos para filtrar y ordenar ventas
var saleAllowedFields = []string{"date", "total"}

// SaleController maneja las peticiones HTTP para ventas
type SaleController struct {
	registerSaleUC *usecase.RegisterSaleUseCase
	listSalesUC    *usecase.ListSalesUseCase
	salesReportUC  *usecase.SalesReportUseCase
	clock          port.Clock
	criteriaHelper *sharedCriteria.ControllerHelper
}

// NewSaleController crea una nueva instancia del controlador.
// El reloj define la zona horaria en que se interpretan las fechas del reporte
func NewSaleController(
	registerSaleUC *usecase.RegisterSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	salesReportUC *usecase.SalesReportUseCase,
	clock port.Clock,
) *SaleController {
	return &SaleController{
		registerSaleUC: registerSaleUC,
		listSalesUC:    listSalesUC,
		salesReportUC:  salesReportUC,
		clock:          clock,
		criteriaHelper: sharedCriteria.NewControllerHelper(),
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.POST("", c.RegisterSale)
		sales.GET("", c.ListSales)
		sales.GET("/report", c.SalesReport)
	}

	log.Println("Rutas Sale disponibles:")
	log.Println("  POST   /api/v1/sales")
	log.Println("  GET    /api/v1/sales")
	log.Println("  GET    /api/v1/sales/report")
}

// RegisterSale maneja POST /sales
func (c *SaleController) RegisterSale(ctx *gin.Context) {
	var req request.RegisterSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saleID, err := c.registerSaleUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/v1/sales/%s", saleID))
	ctx.JSON(http.StatusCreated, response.RegisterSaleResponse{
		Message: "Venta registrada exitosamente",
		SaleID:  saleID,
	})
}

// ListSales maneja GET /sales
func (c *SaleController) ListSales(ctx *gin.Context) {
	crit := c.criteriaHelper.BuildCriteriaFromQuery(ctx).Build()
	crit = c.criteriaHelper.ValidateAndSanitizeCriteria(crit, saleAllowedFields)

	resp, err := c.listSalesUC.Execute(ctx.Request.Context(), crit)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SalesReport maneja GET /sales/report?start_date=...&end_date=...
func (c *SaleController) SalesReport(ctx *gin.Context) {
	// Las fechas se interpretan en la zona de negocio: las ventas se
	// estampan con hora local, así los límites del día coinciden
	loc := c.clock.Now().Location()

	startDate, err := time.ParseInLocation("2006-01-02", ctx.Query("start_date"), loc)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
		return
	}

	endDate, err := time.ParseInLocation("2006-01-02", ctx.Query("end_date"), loc)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected YYYY-MM-DD"})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	resp, err := c.salesReportUC.Execute(ctx.Request.Context(), startDate, endDate, page, pageSize)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// statusForError mapea la taxonomía de errores del registro de venta a
// códigos HTTP: el caller recibe estructura suficiente para distinguir
// "no existe" de "stock insuficiente" con todos los faltantes
func statusForError(err error) int {
	var notFound *entity.ProductNotFoundError
	var insufficient *entity.InsufficientStockError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &insufficient):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrEmptyBasket),
		errors.Is(err, productEntity.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, productEntity.ErrInsufficientStock):
		return http.StatusUnprocessableEntity
	case errs.IsTransient(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
