package clock

import "time"

// Colombia está en UTC-5 (America/Bogota) sin horario de verano
const businessTimeZone = "America/Bogota"

// BusinessClock retorna la hora local de negocio.
// Las ventas existentes fueron guardadas con hora local de Colombia, por lo
// que el timestamp de negocio se mantiene en esa zona
type BusinessClock struct {
	loc *time.Location
}

// NewBusinessClock crea el reloj de negocio
func NewBusinessClock() *BusinessClock {
	loc, err := time.LoadLocation(businessTimeZone)
	if err != nil {
		// Sin tzdata disponible se fija el offset manualmente
		loc = time.FixedZone("COT", -5*60*60)
	}
	return &BusinessClock{loc: loc}
}

// Now retorna la hora actual en la zona de negocio
func (c *BusinessClock) Now() time.Time {
	return time.Now().In(c.loc)
}
