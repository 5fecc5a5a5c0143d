package port

import "time"

// Clock provee el timestamp de negocio para las ventas.
// Se inyecta para no fijar una zona horaria dentro del workflow
type Clock interface {
	Now() time.Time
}
