package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/servitec/servitec-api/config"
	"github.com/servitec/servitec-api/controllers"
	"github.com/servitec/servitec-api/models"
	"github.com/servitec/servitec-api/observer"
	"github.com/servitec/servitec-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Servitec API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database. main owns the handle and closes it at shutdown.
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Auto-migrate database models
	if err := db.AutoMigrate(
		&models.Cliente{},
		&models.Tecnico{},
		&models.RegistroServicio{},
		&models.OrdenDeTrabajo{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Register the order observers explicitly
	subject := &observer.OrdenSubject{}
	subject.Attach(&services.NotificacionObserver{})
	subject.Attach(&services.TecnicoObserver{})

	ordenService := services.NewOrdenService(db, subject)

	clienteController := controllers.NewClienteController(db)
	tecnicoController := controllers.NewTecnicoController(db)
	ordenController := controllers.NewOrdenController(ordenService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		v1.POST("/clientes", clienteController.RegistrarCliente)
		v1.GET("/clientes", clienteController.ListarClientes)

		v1.POST("/tecnicos", tecnicoController.RegistrarTecnico)
		v1.GET("/tecnicos", tecnicoController.ListarTecnicos)
		v1.GET("/tecnicos/:id/ordenes", tecnicoController.ListarOrdenesDeTecnico)

		v1.POST("/ordenes", ordenController.CrearOrden)
		v1.GET("/ordenes", ordenController.ListarOrdenes)
	}

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Servitec API is running",
	})
}
