package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SalesRegistered cuenta las ventas registradas exitosamente
	SalesRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "indigo_sales_registered_total",
		Help: "Total de ventas registradas exitosamente",
	})

	// SaleRegisterRetries cuenta los reintentos por fallos transitorios
	SaleRegisterRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "indigo_sale_register_retries_total",
		Help: "Total de reintentos del registro de venta por fallos transitorios",
	})

	// SaleRegisterFailures cuenta los registros fallidos por motivo
	SaleRegisterFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "indigo_sale_register_failures_total",
		Help: "Total de registros de venta fallidos, por motivo",
	}, []string{"reason"})
)
