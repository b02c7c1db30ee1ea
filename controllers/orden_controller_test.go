package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/servitec/servitec-api/config"
	"github.com/servitec/servitec-api/models"
	"github.com/servitec/servitec-api/observer"
	"github.com/servitec/servitec-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// countingObserver records how many orders it was notified about
type countingObserver struct {
	count int
}

func (c *countingObserver) Update(orden *models.OrdenDeTrabajo) error {
	c.count++
	return nil
}

func setupOrdenRouter(t *testing.T) (*gin.Engine, *config.Database, *countingObserver) {
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := gdb.AutoMigrate(&models.Cliente{}, &models.Tecnico{}, &models.RegistroServicio{}, &models.OrdenDeTrabajo{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	db := config.NewDatabase(gdb)

	counter := &countingObserver{}
	subject := &observer.OrdenSubject{}
	subject.Attach(counter)

	ctl := NewOrdenController(services.NewOrdenService(db, subject))

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/ordenes", ctl.CrearOrden)
	v1.GET("/ordenes", ctl.ListarOrdenes)

	return router, db, counter
}

func seedClienteYTecnico(t *testing.T, db *config.Database) {
	t.Helper()
	cliente := models.Cliente{Nombre: "Juan Pérez"}
	require.NoError(t, cliente.Guardar(db.DB()))
	tecnico := models.Tecnico{Nombre: "María García", Especialidad: "Hardware"}
	require.NoError(t, tecnico.Guardar(db.DB()))
}

func postOrden(router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", "/api/v1/ordenes", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCrearOrdenEndToEnd(t *testing.T) {
	router, db, counter := setupOrdenRouter(t)
	seedClienteYTecnico(t, db)

	w := postOrden(router, map[string]interface{}{
		"cliente":       "Juan Pérez",
		"tecnico":       "María García",
		"tipo_servicio": "Reparación",
		"descripcion":   "reparar laptop",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Greater(t, data["id"].(float64), float64(0))
	assert.Equal(t, "Pendiente", data["estado"])
	assert.Equal(t, 110.0, data["costo_total"])
	assert.Greater(t, data["cliente_id"].(float64), float64(0))
	assert.Greater(t, data["tecnico_id"].(float64), float64(0))
	assert.Greater(t, data["servicio_id"].(float64), float64(0))

	assert.Equal(t, 1, counter.count, "one notification per created order")
}

func TestCrearOrdenSoporteIT(t *testing.T) {
	router, db, _ := setupOrdenRouter(t)
	seedClienteYTecnico(t, db)

	w := postOrden(router, map[string]interface{}{
		"cliente":       "Juan Pérez",
		"tecnico":       "María García",
		"tipo_servicio": "soporte_it",
		"descripcion":   "instalar red",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 96.0, data["costo_total"], "IT support default base 80.0 with 20% markup")
}

func TestCrearOrdenCostoOverride(t *testing.T) {
	router, db, _ := setupOrdenRouter(t)
	seedClienteYTecnico(t, db)

	w := postOrden(router, map[string]interface{}{
		"cliente":       "Juan Pérez",
		"tecnico":       "María García",
		"tipo_servicio": "reparacion",
		"descripcion":   "cambio de disco",
		"costo":         200.0,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 220.0, data["costo_total"])
}

func TestCrearOrdenErrors(t *testing.T) {
	tests := []struct {
		name           string
		seed           bool
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "client not found",
			seed: true,
			requestBody: map[string]interface{}{
				"cliente":       "Nadie",
				"tecnico":       "María García",
				"tipo_servicio": "reparacion",
				"descripcion":   "x",
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "CLIENTE_NOT_FOUND",
		},
		{
			name: "technician not found",
			seed: true,
			requestBody: map[string]interface{}{
				"cliente":       "Juan Pérez",
				"tecnico":       "Nadie",
				"tipo_servicio": "reparacion",
				"descripcion":   "x",
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "TECNICO_NOT_FOUND",
		},
		{
			name: "unsupported service type",
			seed: true,
			requestBody: map[string]interface{}{
				"cliente":       "Juan Pérez",
				"tecnico":       "María García",
				"tipo_servicio": "jardineria",
				"descripcion":   "x",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "UNSUPPORTED_SERVICE_TYPE",
		},
		{
			name: "missing required fields",
			seed: false,
			requestBody: map[string]interface{}{
				"cliente": "Juan Pérez",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, db, counter := setupOrdenRouter(t)
			if tt.seed {
				seedClienteYTecnico(t, db)
			}

			w := postOrden(router, tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.False(t, response["success"].(bool))
			errorData := response["error"].(map[string]interface{})
			assert.Equal(t, tt.expectedError, errorData["code"])

			assert.Equal(t, 0, counter.count, "failed creation must not notify")
		})
	}
}

func TestListarOrdenes(t *testing.T) {
	router, db, _ := setupOrdenRouter(t)
	seedClienteYTecnico(t, db)

	w := postOrden(router, map[string]interface{}{
		"cliente":       "Juan Pérez",
		"tecnico":       "María García",
		"tipo_servicio": "reparacion",
		"descripcion":   "reparar laptop",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	req, _ := http.NewRequest("GET", "/api/v1/ordenes", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))

	data := response["data"].([]interface{})
	require.Len(t, data, 1)
	orden := data[0].(map[string]interface{})
	assert.Equal(t, "Juan Pérez", orden["cliente"])
	assert.Equal(t, "María García", orden["tecnico"])
	assert.Equal(t, "reparacion", orden["servicio"])
	assert.Equal(t, "Pendiente", orden["estado"])
}
