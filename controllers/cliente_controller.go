package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/servitec/servitec-api/config"
	"github.com/servitec/servitec-api/models"
	"github.com/servitec/servitec-api/utils"
)

// CreateClienteRequest represents the request body for registering a client
type CreateClienteRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Email     string `json:"email" binding:"omitempty"`
	Telefono  string `json:"telefono" binding:"omitempty"`
	Direccion string `json:"direccion" binding:"omitempty"`
}

// ClienteController handles the client endpoints
type ClienteController struct {
	db *config.Database
}

// NewClienteController builds a ClienteController around the shared database
func NewClienteController(db *config.Database) *ClienteController {
	return &ClienteController{db: db}
}

// RegistrarCliente handles POST /api/v1/clientes - registers a new client
func (ctl *ClienteController) RegistrarCliente(c *gin.Context) {
	var req CreateClienteRequest
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

	// Email format is checked here, before the entity is constructed
	if req.Email != "" && !utils.ValidarEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_EMAIL",
				"message": "Email format is not valid",
			},
		})
		return
	}

	cliente := models.Cliente{
		Nombre:    req.Nombre,
		Email:     optional(req.Email),
		Telefono:  optional(req.Telefono),
		Direccion: optional(req.Direccion),
	}

	if err := cliente.Guardar(ctl.db.DB()); err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CLIENTE_EXISTS",
					"message": "A client with this email already exists",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to save client",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    cliente,
	})
}

// ListarClientes handles GET /api/v1/clientes - full-table client listing
func (ctl *ClienteController) ListarClientes(c *gin.Context) {
	var clientes []models.Cliente
	if err := ctl.db.DB().Find(&clientes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load clients",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    clientes,
	})
}

// optional converts an empty form value to a null column value
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// isUniqueViolation checks for duplicate-key errors from either
// PostgreSQL or SQLite
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
