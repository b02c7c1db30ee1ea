package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/servitec/servitec-api/config"
	"github.com/servitec/servitec-api/controllers"
	"github.com/servitec/servitec-api/models"
	"github.com/servitec/servitec-api/observer"
	"github.com/servitec/servitec-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter wires the full application against an in-memory store,
// mirroring the wiring in main
func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	db := config.NewDatabase(gdb)
	if err := db.AutoMigrate(
		&models.Cliente{},
		&models.Tecnico{},
		&models.RegistroServicio{},
		&models.OrdenDeTrabajo{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	subject := &observer.OrdenSubject{}
	subject.Attach(&services.NotificacionObserver{})
	subject.Attach(&services.TecnicoObserver{})

	ordenService := services.NewOrdenService(db, subject)

	clienteController := controllers.NewClienteController(db)
	tecnicoController := controllers.NewTecnicoController(db)
	ordenController := controllers.NewOrdenController(ordenService)

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/clientes", clienteController.RegistrarCliente)
		v1.GET("/clientes", clienteController.ListarClientes)
		v1.POST("/tecnicos", tecnicoController.RegistrarTecnico)
		v1.GET("/tecnicos", tecnicoController.ListarTecnicos)
		v1.GET("/tecnicos/:id/ordenes", tecnicoController.ListarOrdenesDeTecnico)
		v1.POST("/ordenes", ordenController.CrearOrden)
		v1.GET("/ordenes", ordenController.ListarOrdenes)
	}

	return router
}

func doJSON(router *gin.Engine, method, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestHealthEndpointIntegration tests the /api/v1/health endpoint with full routing
func TestHealthEndpointIntegration(t *testing.T) {
	router := setupRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Expected status 200 OK")

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Servitec API is running", response["message"])
}

// TestFullOrderFlow walks the complete flow: register a client and a
// technician, create a repair order by display names, and read it back
// from the joined listing.
func TestFullOrderFlow(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "POST", "/api/v1/clientes", map[string]interface{}{
		"nombre": "Juan Pérez",
		"email":  "juan@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, "POST", "/api/v1/tecnicos", map[string]interface{}{
		"nombre":       "María García",
		"especialidad": "Hardware",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, "POST", "/api/v1/ordenes", map[string]interface{}{
		"cliente":       "Juan Pérez",
		"tecnico":       "María García",
		"tipo_servicio": "Reparación",
		"descripcion":   "reparar laptop",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	data := created["data"].(map[string]interface{})
	assert.Greater(t, data["id"].(float64), float64(0))
	assert.Equal(t, "Pendiente", data["estado"])
	assert.Equal(t, 110.0, data["costo_total"])

	w = doJSON(router, "GET", "/api/v1/ordenes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listing map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	ordenes := listing["data"].([]interface{})
	require.Len(t, ordenes, 1)
	orden := ordenes[0].(map[string]interface{})
	assert.Equal(t, "Juan Pérez", orden["cliente"])
	assert.Equal(t, "María García", orden["tecnico"])
}
