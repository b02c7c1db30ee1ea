package models

import (
	"fmt"
	"math"

	"gorm.io/gorm"
)

// Service type discriminators. The set is closed; the factory rejects
// anything else.
const (
	TipoReparacion = "reparacion"
	TipoSoporteIT  = "soporte_it"
)

// Markup multipliers per service variant. Fixed design constants, not
// configurable per instance.
const (
	recargoReparacion = 1.10 // materials surcharge
	recargoSoporteIT  = 1.20 // specialized-support surcharge
)

// Servicio is the pricing capability shared by all service variants.
// The variant set is closed: repair and IT support.
type Servicio interface {
	// CalcularCosto returns the total cost for the service, derived
	// from the base cost and the variant's markup. Pure and
	// deterministic for a given base cost.
	CalcularCosto() float64
	// Tipo returns the persistence discriminator for the variant
	Tipo() string
	// Descripcion returns the free-text description of the service
	Descripcion() string
	// CostoBase returns the base cost before markup
	CostoBase() float64
}

// DatosServicio holds the attributes common to every service variant
type DatosServicio struct {
	Descripcion      string
	CostoBase        float64
	DuracionEstimada int // minutes
}

// ServicioReparacion is a repair service. Its cost adds a 10% materials
// surcharge on top of the base cost.
type ServicioReparacion struct {
	DatosServicio
	TipoReparacion string
}

func (s *ServicioReparacion) CalcularCosto() float64 {
	return redondear2(s.DatosServicio.CostoBase * recargoReparacion)
}

func (s *ServicioReparacion) Tipo() string        { return TipoReparacion }
func (s *ServicioReparacion) Descripcion() string { return s.DatosServicio.Descripcion }
func (s *ServicioReparacion) CostoBase() float64  { return s.DatosServicio.CostoBase }

// ServicioSoporteIT is an IT support service. Its cost adds a 20%
// specialized-support surcharge on top of the base cost.
type ServicioSoporteIT struct {
	DatosServicio
	NivelSoporte string
}

func (s *ServicioSoporteIT) CalcularCosto() float64 {
	return redondear2(s.DatosServicio.CostoBase * recargoSoporteIT)
}

func (s *ServicioSoporteIT) Tipo() string        { return TipoSoporteIT }
func (s *ServicioSoporteIT) Descripcion() string { return s.DatosServicio.Descripcion }
func (s *ServicioSoporteIT) CostoBase() float64  { return s.DatosServicio.CostoBase }

// redondear2 rounds to 2 decimal places, half away from zero
func redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RegistroServicio is the persisted form of a service. Only the
// discriminator, description and base cost are stored; the
// variant-specific field and the computed cost never reach the row.
type RegistroServicio struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Tipo        string  `gorm:"not null" json:"tipo"`
	Descripcion string  `gorm:"not null" json:"descripcion"`
	CostoBase   float64 `gorm:"not null" json:"costo_base"`
}

// TableName specifies the table name for the RegistroServicio model
func (RegistroServicio) TableName() string {
	return "servicios"
}

// GuardarServicio persists a service as a fresh row and returns its
// assigned identity. Services are never deduplicated or shared across
// orders; saving the same service twice yields two rows.
func GuardarServicio(db *gorm.DB, s Servicio) (uint, error) {
	registro := RegistroServicio{
		Tipo:        s.Tipo(),
		Descripcion: s.Descripcion(),
		CostoBase:   s.CostoBase(),
	}
	if err := db.Create(&registro).Error; err != nil {
		return 0, fmt.Errorf("failed to save servicio: %w", err)
	}
	return registro.ID, nil
}
