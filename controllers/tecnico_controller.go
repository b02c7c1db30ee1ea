package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/servitec/servitec-api/config"
	"github.com/servitec/servitec-api/models"
	"github.com/servitec/servitec-api/utils"
)

// CreateTecnicoRequest represents the request body for registering a technician
type CreateTecnicoRequest struct {
	Nombre       string `json:"nombre" binding:"required"`
	Especialidad string `json:"especialidad" binding:"required"`
	Email        string `json:"email" binding:"omitempty"`
	Telefono     string `json:"telefono" binding:"omitempty"`
}

// TecnicoController handles the technician endpoints
type TecnicoController struct {
	db *config.Database
}

// NewTecnicoController builds a TecnicoController around the shared database
func NewTecnicoController(db *config.Database) *TecnicoController {
	return &TecnicoController{db: db}
}

// RegistrarTecnico handles POST /api/v1/tecnicos - registers a new technician
func (ctl *TecnicoController) RegistrarTecnico(c *gin.Context) {
	var req CreateTecnicoRequest
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

	tecnico := models.Tecnico{
		Nombre:       req.Nombre,
		Especialidad: req.Especialidad,
		Email:        optional(req.Email),
		Telefono:     optional(req.Telefono),
	}

	if err := tecnico.Guardar(ctl.db.DB()); err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "TECNICO_EXISTS",
					"message": "A technician with this email already exists",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to save technician",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    tecnico,
	})
}

// ListarTecnicos handles GET /api/v1/tecnicos - full-table technician listing
func (ctl *TecnicoController) ListarTecnicos(c *gin.Context) {
	var tecnicos []models.Tecnico
	if err := ctl.db.DB().Find(&tecnicos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load technicians",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tecnicos,
	})
}

// ListarOrdenesDeTecnico handles GET /api/v1/tecnicos/:id/ordenes -
// the order history for one technician, read from storage
func (ctl *TecnicoController) ListarOrdenesDeTecnico(c *gin.Context) {
	var tecnico models.Tecnico
	if err := ctl.db.DB().First(&tecnico, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TECNICO_NOT_FOUND",
				"message": "Technician not found",
			},
		})
		return
	}

	ordenes, err := models.OrdenesDeTecnico(ctl.db.DB(), tecnico.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load technician orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ordenes,
	})
}
