package persistence

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/JhonCorredor/IndigoSalesSystem/src/shared/domain/errs"

	"github.com/lib/pq"
)

// ClassifyError separa los errores de base de datos en dos canales: los
// transitorios (reintentables) quedan envolviendo errs.ErrTransient, el
// resto se retorna sin cambios. La cancelación de contexto no es transitoria
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if isTransient(err) {
		return fmt.Errorf("%v: %w", err, errs.ErrTransient)
	}

	return err
}

func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, io.EOF) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", // serialization_failure
			"40P01", // deadlock_detected
			"55P03", // lock_not_available
			"57014": // query_canceled (statement_timeout)
			return true
		}
		switch pqErr.Code.Class() {
		case "08", // connection errors
			"53": // insufficient resources
			return true
		}
	}

	return false
}
