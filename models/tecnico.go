package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrTecnicoNoEncontrado is returned when a by-name lookup finds no technician.
var ErrTecnicoNoEncontrado = errors.New("tecnico not found")

// Tecnico represents a technician who can be assigned to work orders
type Tecnico struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Nombre       string  `gorm:"not null" json:"nombre"`
	Especialidad string  `gorm:"not null" json:"especialidad"`
	Email        *string `gorm:"uniqueIndex" json:"email"`
	Telefono     *string `json:"telefono"`
}

// TableName specifies the table name for the Tecnico model
func (Tecnico) TableName() string {
	return "tecnicos"
}

// Guardar inserts the technician and lets the store assign its identity
func (t *Tecnico) Guardar(db *gorm.DB) error {
	if err := db.Create(t).Error; err != nil {
		return fmt.Errorf("failed to save tecnico: %w", err)
	}
	return nil
}

// BuscarTecnicoPorNombre resolves a technician by exact display name.
// When names collide the first match wins.
func BuscarTecnicoPorNombre(db *gorm.DB, nombre string) (*Tecnico, error) {
	var tecnico Tecnico
	err := db.Where("nombre = ?", nombre).First(&tecnico).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTecnicoNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up tecnico: %w", err)
	}
	return &tecnico, nil
}

// OrdenesDeTecnico returns the work orders assigned to a technician,
// read from storage on demand rather than tracked in memory.
func OrdenesDeTecnico(db *gorm.DB, tecnicoID uint) ([]OrdenDeTrabajo, error) {
	var ordenes []OrdenDeTrabajo
	if err := db.Where("tecnico_id = ?", tecnicoID).Find(&ordenes).Error; err != nil {
		return nil, fmt.Errorf("failed to load ordenes for tecnico %d: %w", tecnicoID, err)
	}
	return ordenes, nil
}
