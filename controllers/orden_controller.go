package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/servitec/servitec-api/models"
	"github.com/servitec/servitec-api/services"
)

// CreateOrdenRequest represents the request body for creating a work
// order. Client and technician are referenced by display name, the way
// the order-entry form captures them.
type CreateOrdenRequest struct {
	Cliente      string   `json:"cliente" binding:"required"`
	Tecnico      string   `json:"tecnico" binding:"required"`
	TipoServicio string   `json:"tipo_servicio" binding:"required"`
	Descripcion  string   `json:"descripcion" binding:"required"`
	Costo        *float64 `json:"costo" binding:"omitempty,gt=0"`
}

// OrdenController handles the work-order endpoints
type OrdenController struct {
	service *services.OrdenService
}

// NewOrdenController builds an OrdenController around the order service
func NewOrdenController(service *services.OrdenService) *OrdenController {
	return &OrdenController{service: service}
}

// CrearOrden handles POST /api/v1/ordenes - creates a new work order
func (ctl *OrdenController) CrearOrden(c *gin.Context) {
	var req CreateOrdenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	orden, err := ctl.service.CrearOrden(services.CrearOrdenParams{
		ClienteNombre: req.Cliente,
		TecnicoNombre: req.Tecnico,
		TipoServicio:  req.TipoServicio,
		Descripcion:   req.Descripcion,
		Costo:         req.Costo,
	})
	if err != nil {
		status, code, message := mapCrearOrdenError(err)
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": message,
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    orden,
	})
}

// ListarOrdenes handles GET /api/v1/ordenes - the joined order listing
func (ctl *OrdenController) ListarOrdenes(c *gin.Context) {
	ordenes, err := ctl.service.ListarOrdenes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ordenes,
	})
}

// mapCrearOrdenError translates order-creation failures onto HTTP
// status codes: lookup misses are recoverable precondition failures,
// an unknown service type is a caller error, everything else is a
// store failure.
func mapCrearOrdenError(err error) (int, string, string) {
	var tipoErr *models.ErrTipoServicioNoSoportado
	switch {
	case errors.Is(err, models.ErrClienteNoEncontrado):
		return http.StatusNotFound, "CLIENTE_NOT_FOUND", "Client not found"
	case errors.Is(err, models.ErrTecnicoNoEncontrado):
		return http.StatusNotFound, "TECNICO_NOT_FOUND", "Technician not found"
	case errors.As(err, &tipoErr):
		return http.StatusBadRequest, "UNSUPPORTED_SERVICE_TYPE", tipoErr.Error()
	default:
		return http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create order"
	}
}
