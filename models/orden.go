package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EstadoPendiente is the initial state of every work order
const EstadoPendiente = "Pendiente"

// FormatoFecha is the creation-timestamp layout, second resolution
const FormatoFecha = "2006-01-02 15:04:05"

// ErrOrdenSinTecnico is returned by Guardar when the order has no
// assigned technician. Saving requires one end-to-end; only transient,
// not-yet-saved orders may go unassigned.
var ErrOrdenSinTecnico = errors.New("orden has no assigned tecnico")

// OrdenDeTrabajo is a work order binding one client, one technician and
// one service. The total cost is computed once at construction from the
// service's pricing rule and never recomputed afterwards.
type OrdenDeTrabajo struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	ClienteID     uint     `gorm:"not null;index" json:"cliente_id"`
	Cliente       *Cliente `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	TecnicoID     *uint    `gorm:"index" json:"tecnico_id"`
	Tecnico       *Tecnico `gorm:"foreignKey:TecnicoID" json:"tecnico,omitempty"`
	ServicioID    uint     `gorm:"index" json:"servicio_id"`
	FechaCreacion string   `gorm:"not null" json:"fecha_creacion"`
	Estado        string   `gorm:"not null;default:'Pendiente'" json:"estado"`
	Descripcion   string   `json:"descripcion"`
	CostoTotal    float64  `json:"costo_total"`

	// Servicio is the in-memory service the order was built from. It is
	// persisted separately as a servicios row during Guardar.
	Servicio Servicio `gorm:"-" json:"-"`
}

// TableName specifies the table name for the OrdenDeTrabajo model
func (OrdenDeTrabajo) TableName() string {
	return "ordenes_trabajo"
}

// NuevaOrdenDeTrabajo constructs a transient work order. The state
// starts as "Pendiente", the creation timestamp is stamped now, and the
// total cost is frozen from servicio.CalcularCosto(). A nil tecnico is
// allowed here but must be assigned before Guardar.
func NuevaOrdenDeTrabajo(cliente *Cliente, servicio Servicio, tecnico *Tecnico, descripcion string) *OrdenDeTrabajo {
	return &OrdenDeTrabajo{
		Cliente:       cliente,
		Tecnico:       tecnico,
		Servicio:      servicio,
		Descripcion:   descripcion,
		FechaCreacion: time.Now().Format(FormatoFecha),
		Estado:        EstadoPendiente,
		CostoTotal:    servicio.CalcularCosto(),
	}
}

// Guardar persists the order, cascading to its related entities first:
// an unsaved client is saved, then an unsaved technician, and the
// service is always inserted as a fresh row. The order row referencing
// the three foreign keys is written last. Returns the order's assigned
// identity.
func (o *OrdenDeTrabajo) Guardar(db *gorm.DB) (uint, error) {
	if o.Tecnico == nil {
		return 0, ErrOrdenSinTecnico
	}

	if o.Cliente.ID == 0 {
		if err := o.Cliente.Guardar(db); err != nil {
			return 0, err
		}
	}
	if o.Tecnico.ID == 0 {
		if err := o.Tecnico.Guardar(db); err != nil {
			return 0, err
		}
	}

	servicioID, err := GuardarServicio(db, o.Servicio)
	if err != nil {
		return 0, err
	}

	o.ClienteID = o.Cliente.ID
	o.TecnicoID = &o.Tecnico.ID
	o.ServicioID = servicioID

	// The related rows are already in place; insert only the order row
	if err := db.Omit(clause.Associations).Create(o).Error; err != nil {
		return 0, fmt.Errorf("failed to save orden: %w", err)
	}
	return o.ID, nil
}
