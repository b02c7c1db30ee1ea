package models

import "fmt"

// ErrTipoServicioNoSoportado reports a factory call with a discriminator
// outside the closed service-type set.
type ErrTipoServicioNoSoportado struct {
	Tipo string
}

func (e *ErrTipoServicioNoSoportado) Error() string {
	return fmt.Sprintf("unsupported service type: %q", e.Tipo)
}

// ServicioParams carries the construction fields for a service variant.
// CostoBase and Costo are pointers so "not supplied" is distinguishable
// from zero: historical callers send the generic Costo field, which is
// aliased to CostoBase when the latter is absent.
type ServicioParams struct {
	Descripcion      string
	CostoBase        *float64
	Costo            *float64
	DuracionEstimada int
	TipoReparacion   string
	NivelSoporte     string
}

// costoBase resolves the effective base cost, applying the
// Costo -> CostoBase alias for backward-compatible callers
func (p ServicioParams) costoBase() float64 {
	if p.CostoBase != nil {
		return *p.CostoBase
	}
	if p.Costo != nil {
		return *p.Costo
	}
	return 0
}

// CrearServicio builds a service variant from its string discriminator.
// An unknown discriminator fails with ErrTipoServicioNoSoportado naming
// the offending value; nothing is partially constructed. The factory
// performs no I/O and holds no state.
func CrearServicio(tipo string, params ServicioParams) (Servicio, error) {
	datos := DatosServicio{
		Descripcion:      params.Descripcion,
		CostoBase:        params.costoBase(),
		DuracionEstimada: params.DuracionEstimada,
	}

	switch tipo {
	case TipoReparacion:
		return &ServicioReparacion{DatosServicio: datos, TipoReparacion: params.TipoReparacion}, nil
	case TipoSoporteIT:
		return &ServicioSoporteIT{DatosServicio: datos, NivelSoporte: params.NivelSoporte}, nil
	default:
		return nil, &ErrTipoServicioNoSoportado{Tipo: tipo}
	}
}
