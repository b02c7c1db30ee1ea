package services

import (
	"log"

	"github.com/servitec/servitec-api/models"
)

// NotificacionObserver announces every new work order. The desktop
// frontend renders these as in-app messages; server-side they go to the
// application log.
type NotificacionObserver struct{}

// Update logs the new-order announcement for the order's client
func (n *NotificacionObserver) Update(orden *models.OrdenDeTrabajo) error {
	log.Printf("Nueva orden: se ha creado una nueva orden para %s", orden.Cliente.Nombre)
	return nil
}

// TecnicoObserver announces the technician assignment for a new order.
// Orders without an assigned technician are skipped.
type TecnicoObserver struct{}

// Update logs the assignment announcement when a technician is set
func (t *TecnicoObserver) Update(orden *models.OrdenDeTrabajo) error {
	if orden.Tecnico != nil {
		log.Printf("Asignación de orden: se ha asignado una nueva orden al técnico %s", orden.Tecnico.Nombre)
	}
	return nil
}
