package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	productEntity "github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/entity"
	productPort "github.com/JhonCorredor/IndigoSalesSystem/src/product/domain/port"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/application/request"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/entity"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/port"
	"github.com/JhonCorredor/IndigoSalesSystem/src/sales/domain/service"
	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/errs"
	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/infrastructure/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// La política de reintentos es 3 intentos en TOTAL (el inicial más 2
// reintentos) con esperas exponenciales 2s, 4s, 8s... Con 3 intentos solo
// transcurren las esperas de 2s y 4s; el tope de 8s aplica si se configuran
// más reintentos vía WithRetryPolicy
const (
	defaultInitialBackoff = 2 * time.Second
	defaultMaxRetries     = 2
)

// RegisterSaleUseCase registra una venta POS:
// 1. Valida disponibilidad de stock de todas las líneas
// 2. Descuenta stock y arma el aggregate con precios capturados al momento
// 3. Persiste productos y venta como una unidad atómica
// Solo los fallos transitorios de persistencia reintentan; los errores de
// negocio (producto inexistente, stock insuficiente, cantidad inválida)
// fallan de inmediato
type RegisterSaleUseCase struct {
	sales     port.SaleRepository
	validator *service.StockValidator
	clock     port.Clock

	initialBackoff time.Duration
	maxRetries     uint64
}

// NewRegisterSaleUseCase crea una nueva instancia del caso de uso
func NewRegisterSaleUseCase(
	products productPort.ProductRepository,
	sales port.SaleRepository,
	clock port.Clock,
) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{
		sales:          sales,
		validator:      service.NewStockValidator(products),
		clock:          clock,
		initialBackoff: defaultInitialBackoff,
		maxRetries:     defaultMaxRetries,
	}
}

// WithRetryPolicy ajusta la política de reintentos (usado en pruebas)
func (uc *RegisterSaleUseCase) WithRetryPolicy(initial time.Duration, maxRetries uint64) *RegisterSaleUseCase {
	uc.initialBackoff = initial
	uc.maxRetries = maxRetries
	return uc
}

// Execute registra la venta y retorna su ID
func (uc *RegisterSaleUseCase) Execute(ctx context.Context, req *request.RegisterSaleRequest) (uuid.UUID, error) {
	if req == nil || len(req.Items) == 0 {
		metrics.SaleRegisterFailures.WithLabelValues("empty_basket").Inc()
		return uuid.Nil, entity.ErrEmptyBasket
	}

	basket := req.ToBasket()
	log.Printf("🛒 Registrando venta - Líneas: %d", len(basket))

	var saleID uuid.UUID
	attempt := 0

	operation := func() error {
		attempt++
		if attempt > 1 {
			log.Printf("🔁 Reintentando registro de venta (intento %d)", attempt)
			metrics.SaleRegisterRetries.Inc()
		}

		id, err := uc.registerOnce(ctx, basket)
		if err != nil {
			if errs.IsTransient(err) {
				log.Printf("⚠️  Fallo transitorio en intento %d: %v", attempt, err)
				return err
			}
			return backoff.Permanent(err)
		}

		saleID = id
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = uc.initialBackoff
	policy.RandomizationFactor = 0
	policy.Multiplier = 2
	policy.MaxInterval = 8 * uc.initialBackoff // Tope de la progresión 2x
	policy.MaxElapsedTime = 0 // Acotado por intentos, no por tiempo

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, uc.maxRetries), ctx))
	if err != nil {
		metrics.SaleRegisterFailures.WithLabelValues(failureReason(err)).Inc()
		return uuid.Nil, err
	}

	log.Printf("✅ Venta registrada: ID=%s (intentos: %d)", saleID, attempt)
	metrics.SalesRegistered.Inc()
	return saleID, nil
}

// registerOnce ejecuta un intento completo: validar, descontar, persistir.
// No deja efectos observables si falla: los productos se cargan frescos en
// cada intento y el commit es todo-o-nada
func (uc *RegisterSaleUseCase) registerOnce(ctx context.Context, basket []entity.BasketLine) (uuid.UUID, error) {
	resolved, err := uc.validator.Validate(ctx, basket)
	if err != nil {
		return uuid.Nil, err
	}

	sale := entity.NewSale(uuid.New(), uc.clock.Now())

	// Descontar stock y agregar líneas en el orden original de la canasta.
	// La validación garantiza disponibilidad, pero RemoveStock mantiene sus
	// propios invariantes (rechaza cantidades no positivas y el sobregiro
	// combinado de líneas duplicadas)
	products := make([]*productEntity.Product, 0, len(resolved))
	seen := make(map[uuid.UUID]bool)

	for _, line := range resolved {
		if err := line.Product.RemoveStock(line.Quantity); err != nil {
			return uuid.Nil, err
		}
		sale.AddItem(line.Product.ID, line.Quantity, line.Product.Price)

		if !seen[line.Product.ID] {
			seen[line.Product.ID] = true
			products = append(products, line.Product)
		}
	}

	if err := uc.sales.RegisterSale(ctx, sale, products); err != nil {
		return uuid.Nil, fmt.Errorf("error saving sale: %w", err)
	}

	return sale.ID, nil
}

func failureReason(err error) string {
	var notFound *entity.ProductNotFoundError
	var insufficient *entity.InsufficientStockError

	switch {
	case errors.As(err, &notFound):
		return "product_not_found"
	case errors.As(err, &insufficient):
		return "insufficient_stock"
	case errors.Is(err, productEntity.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, productEntity.ErrInsufficientStock):
		return "insufficient_stock"
	case errs.IsTransient(err):
		return "transient_exhausted"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}
