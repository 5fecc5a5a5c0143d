package main

import (
	"database/sql"
	"log"

	productUseCase "github.com/JhonCorredor/IndigoSalesSystem/src/product/application/usecase"
	productController "github.com/JhonCorredor/IndigoSalesSystem/src/product/infrastructure/controller"
	productPersistence "github.com/JhonCorredor/IndigoSalesSystem/src/product/infrastructure/persistence"
	productStorage "github.com/JhonCorredor/IndigoSalesSystem/src/product/infrastructure/storage"
	saleUseCase "github.com/JhonCorredor/IndigoSalesSystem/src/sales/application/usecase"
	saleController "github.com/JhonCorredor/IndigoSalesSystem/src/sales/infrastructure/controller"
	salePersistence "github.com/JhonCorredor/IndigoSalesSystem/src/sales/infrastructure/persistence"
	sharedClock "github.com/JhonCorredor/IndigoSalesSystem/src/shared/infrastructure/clock"
	sharedConfig "github.com/JhonCorredor/IndigoSalesSystem/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("🚀 Indigo Sales System - Iniciando...")

	cfg, err := sharedConfig.Load()
	if err != nil {
		log.Fatalf("❌ Error cargando configuración: %v", err)
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Métricas Prometheus si están habilitadas
	if cfg.PrometheusEnabled {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Middlewares compartidos (gzip)
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedCfg.EnableGzip = cfg.GzipEnabled
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Conexión a PostgreSQL
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("❌ Error abriendo conexión a la base de datos: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("❌ Error conectando a la base de datos: %v", err)
	}
	log.Println("✅ Conectado a PostgreSQL")

	// Almacenamiento de imágenes
	imageStorage, err := productStorage.NewLocalImageStorage(cfg.ImageStoragePath, cfg.ImageBaseURL)
	if err != nil {
		log.Fatalf("❌ Error inicializando almacenamiento de imágenes: %v", err)
	}
	router.Static(cfg.ImageBaseURL, cfg.ImageStoragePath)

	// Repositorios
	productRepo := productPersistence.NewProductPostgresRepository(db)
	saleRepo := salePersistence.NewSalePostgresRepository(db)

	// Reloj de negocio (hora local de Colombia)
	businessClock := sharedClock.NewBusinessClock()

	// Casos de uso de productos
	createProductUC := productUseCase.NewCreateProductUseCase(productRepo)
	getProductUC := productUseCase.NewGetProductUseCase(productRepo)
	updateProductUC := productUseCase.NewUpdateProductUseCase(productRepo)
	addStockUC := productUseCase.NewAddStockUseCase(productRepo)
	removeStockUC := productUseCase.NewRemoveStockUseCase(productRepo)
	listProductsUC := productUseCase.NewListProductsUseCase(productRepo)
	uploadImageUC := productUseCase.NewUploadProductImageUseCase(productRepo, imageStorage)

	// Casos de uso de ventas
	registerSaleUC := saleUseCase.NewRegisterSaleUseCase(productRepo, saleRepo, businessClock)
	listSalesUC := saleUseCase.NewListSalesUseCase(saleRepo)
	salesReportUC := saleUseCase.NewSalesReportUseCase(saleRepo)

	// Controladores
	productCtrl := productController.NewProductController(
		createProductUC, getProductUC, updateProductUC,
		addStockUC, removeStockUC, listProductsUC, uploadImageUC,
	)
	saleCtrl := saleController.NewSaleController(registerSaleUC, listSalesUC, salesReportUC, businessClock)

	// Rutas
	api := router.Group("/api/v1")
	productCtrl.RegisterRoutes(api)
	saleCtrl.RegisterRoutes(api)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Printf("✅ Servidor escuchando en puerto %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Error iniciando servidor: %v", err)
	}
}
