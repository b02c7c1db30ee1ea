package services

import (
	"strings"

	"github.com/servitec/servitec-api/config"
	"github.com/servitec/servitec-api/models"
	"github.com/servitec/servitec-api/observer"
)

// Default construction values per service type, matching what the
// order-entry form has always sent.
const (
	costoBaseReparacion   = 100.0
	duracionReparacion    = 60
	tipoReparacionGeneral = "General"
	costoBaseSoporte      = 80.0
	duracionSoporte       = 45
	nivelSoporteInicial   = "Nivel 1"
)

// CrearOrdenParams are the raw order-entry fields: display names for
// client and technician, the service-type discriminator, the order
// description and an optional base-cost override.
type CrearOrdenParams struct {
	ClienteNombre string
	TecnicoNombre string
	TipoServicio  string
	Descripcion   string
	Costo         *float64
}

// OrdenService orchestrates work-order creation: name resolution,
// service construction, the persistence cascade and the notification
// fan-out. All collaborators are injected.
type OrdenService struct {
	db      *config.Database
	subject *observer.OrdenSubject
}

// NewOrdenService builds an OrdenService around the shared database and
// the order-event subject.
func NewOrdenService(db *config.Database, subject *observer.OrdenSubject) *OrdenService {
	return &OrdenService{db: db, subject: subject}
}

// CrearOrden resolves the client and technician by name, builds the
// service via the factory, constructs and saves the order, then
// announces it to every attached observer. A lookup miss surfaces as
// models.ErrClienteNoEncontrado / models.ErrTecnicoNoEncontrado before
// anything is constructed.
func (s *OrdenService) CrearOrden(params CrearOrdenParams) (*models.OrdenDeTrabajo, error) {
	cliente, err := models.BuscarClientePorNombre(s.db.DB(), params.ClienteNombre)
	if err != nil {
		return nil, err
	}
	tecnico, err := models.BuscarTecnicoPorNombre(s.db.DB(), params.TecnicoNombre)
	if err != nil {
		return nil, err
	}

	servicio, err := models.CrearServicio(normalizarTipo(params.TipoServicio), servicioParams(params))
	if err != nil {
		return nil, err
	}

	orden := models.NuevaOrdenDeTrabajo(cliente, servicio, tecnico, params.Descripcion)
	if _, err := orden.Guardar(s.db.DB()); err != nil {
		return nil, err
	}

	if err := s.subject.NuevaOrden(orden); err != nil {
		return nil, err
	}
	return orden, nil
}

// servicioParams maps the order-entry fields onto factory parameters,
// filling in the per-type defaults when no cost override is given
func servicioParams(params CrearOrdenParams) models.ServicioParams {
	p := models.ServicioParams{
		Descripcion: params.Descripcion,
		Costo:       params.Costo,
	}
	switch normalizarTipo(params.TipoServicio) {
	case models.TipoSoporteIT:
		p.DuracionEstimada = duracionSoporte
		p.NivelSoporte = nivelSoporteInicial
		if p.Costo == nil {
			costo := costoBaseSoporte
			p.Costo = &costo
		}
	default:
		p.DuracionEstimada = duracionReparacion
		p.TipoReparacion = tipoReparacionGeneral
		if p.Costo == nil {
			costo := costoBaseReparacion
			p.Costo = &costo
		}
	}
	return p
}

// normalizarTipo maps the human-facing service-type labels onto the
// factory discriminators. Unknown labels pass through unchanged so the
// factory can report them.
func normalizarTipo(tipo string) string {
	switch strings.ToLower(strings.TrimSpace(tipo)) {
	case "reparación", "reparacion":
		return models.TipoReparacion
	case "soporte it", "soporte_it":
		return models.TipoSoporteIT
	default:
		return strings.ToLower(strings.TrimSpace(tipo))
	}
}

// ListarClientes returns every client, full-table read
func (s *OrdenService) ListarClientes() ([]models.Cliente, error) {
	var clientes []models.Cliente
	if err := s.db.DB().Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

// ListarTecnicos returns every technician, full-table read
func (s *OrdenService) ListarTecnicos() ([]models.Tecnico, error) {
	var tecnicos []models.Tecnico
	if err := s.db.DB().Find(&tecnicos).Error; err != nil {
		return nil, err
	}
	return tecnicos, nil
}

// ListarOrdenes returns the joined order listing shown to the user:
// order id, client and technician names, service type, state, creation
// time and total cost.
func (s *OrdenService) ListarOrdenes() ([]map[string]interface{}, error) {
	return s.db.ExecuteQuery(`
		SELECT o.id, c.nombre AS cliente, t.nombre AS tecnico, s.tipo AS servicio,
		       o.estado, o.fecha_creacion, o.costo_total
		FROM ordenes_trabajo o
		JOIN clientes c ON o.cliente_id = c.id
		JOIN tecnicos t ON o.tecnico_id = t.id
		JOIN servicios s ON o.servicio_id = s.id`)
}
