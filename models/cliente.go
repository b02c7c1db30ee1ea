package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrClienteNoEncontrado is returned when a by-name lookup finds no client.
// Callers should treat it as a failed precondition, not a fault.
var ErrClienteNoEncontrado = errors.New("cliente not found")

// Cliente represents a client of the technical-service business
type Cliente struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Nombre    string  `gorm:"not null" json:"nombre"`
	Email     *string `gorm:"uniqueIndex" json:"email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

// TableName specifies the table name for the Cliente model
func (Cliente) TableName() string {
	return "clientes"
}

// Guardar inserts the client and lets the store assign its identity.
// The id is set exactly once; re-saving an already-saved client is
// undefined and not supported.
func (c *Cliente) Guardar(db *gorm.DB) error {
	if err := db.Create(c).Error; err != nil {
		return fmt.Errorf("failed to save cliente: %w", err)
	}
	return nil
}

// BuscarClientePorNombre resolves a client by exact display name.
// When names collide the first match wins.
func BuscarClientePorNombre(db *gorm.DB, nombre string) (*Cliente, error) {
	var cliente Cliente
	err := db.Where("nombre = ?", nombre).First(&cliente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClienteNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up cliente: %w", err)
	}
	return &cliente, nil
}
