package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/JhonCorredor/IndigoSalesSystem/src/product/application/request"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/application/usecase"
	"github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/errs"
	sharedCriteria "github.com/JhonCorredor/IndigoSalesSystem/src/shared/infrastructure/criteria"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Campos permitidos para filtrar y ordenar productos
var productAllowedFields = []string{"created_at", "name", "price", "stock"}

// ProductController maneja las peticiones HTTP para productos
type ProductController struct {
	createProductUC *usecase.CreateProductUseCase
	getProductUC    *usecase.GetProductUseCase
	updateProductUC *usecase.UpdateProductUseCase
	addStockUC      *usecase.AddStockUseCase
	removeStockUC   *usecase.RemoveStockUseCase
	listProductsUC  *usecase.ListProductsUseCase
	uploadImageUC   *usecase.UploadProductImageUseCase
	criteriaHelper  *sharedCriteria.ControllerHelper
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	createProductUC *usecase.CreateProductUseCase,
	getProductUC *usecase.GetProductUseCase,
	updateProductUC *usecase.UpdateProductUseCase,
	addStockUC *usecase.AddStockUseCase,
	removeStockUC *usecase.RemoveStockUseCase,
	listProductsUC *usecase.ListProductsUseCase,
	uploadImageUC *usecase.UploadProductImageUseCase,
) *ProductController {
	return &ProductController{
		createProductUC: createProductUC,
		getProductUC:    getProductUC,
		updateProductUC: updateProductUC,
		addStockUC:      addStockUC,
		removeStockUC:   removeStockUC,
		listProductsUC:  listProductsUC,
		uploadImageUC:   uploadImageUC,
		criteriaHelper:  sharedCriteria.NewControllerHelper(),
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.GET("/:product_id", c.GetProduct)
		products.POST("", c.CreateProduct)
		products.PUT("/:product_id", c.UpdateProduct)
		products.POST("/:product_id/stock/add", c.AddStock)
		products.POST("/:product_id/stock/remove", c.RemoveStock)
		products.POST("/:product_id/image", c.UploadImage)
	}

	log.Println("Rutas Product disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  GET    /api/v1/products/:product_id")
	log.Println("  POST   /api/v1/products")
	log.Println("  PUT    /api/v1/products/:product_id")
	log.Println("  POST   /api/v1/products/:product_id/stock/add")
	log.Println("  POST   /api/v1/products/:product_id/stock/remove")
	log.Println("  POST   /api/v1/products/:product_id/image")
}

// ListProducts maneja GET /products
func (c *ProductController) ListProducts(ctx *gin.Context) {
	crit := c.criteriaHelper.BuildCriteriaFromQuery(ctx).Build()
	crit = c.criteriaHelper.ValidateAndSanitizeCriteria(crit, productAllowedFields)

	resp, err := c.listProductsUC.Execute(ctx.Request.Context(), crit)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetProduct maneja GET /products/:product_id
func (c *ProductController) GetProduct(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	resp, err := c.getProductUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CreateProduct maneja POST /products
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// UpdateProduct maneja PUT /products/:product_id
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.updateProductUC.Execute(ctx.Request.Context(), id, &req)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AddStock maneja POST /products/:product_id/stock/add
func (c *ProductController) AddStock(ctx *gin.Context) {
	c.adjustStock(ctx, func(id uuid.UUID, quantity int) (interface{}, error) {
		return c.addStockUC.Execute(ctx.Request.Context(), id, quantity)
	})
}

// RemoveStock maneja POST /products/:product_id/stock/remove
func (c *ProductController) RemoveStock(ctx *gin.Context) {
	c.adjustStock(ctx, func(id uuid.UUID, quantity int) (interface{}, error) {
		return c.removeStockUC.Execute(ctx.Request.Context(), id, quantity)
	})
}

func (c *ProductController) adjustStock(ctx *gin.Context, adjust func(uuid.UUID, int) (interface{}, error)) {
	id, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	var req request.StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := adjust(id, req.Quantity)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UploadImage maneja POST /products/:product_id/image (multipart/form-data)
func (c *ProductController) UploadImage(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	resp, err := c.uploadImageUC.Execute(ctx.Request.Context(), id, fileHeader.Filename, file)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// statusForError mapea los errores de producto a códigos HTTP
func statusForError(err error) int {
	switch {
	case errors.Is(err, entity.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrNameRequired),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrInvalidStock),
		errors.Is(err, entity.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrInsufficientStock):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	case errs.IsTransient(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
