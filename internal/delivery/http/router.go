package http

import (
	"net/http"

	"hospital-records-api/internal/delivery/http/handler"
	"hospital-records-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	patientHandler  *handler.PatientHandler
	doctorHandler   *handler.DoctorHandler
	mappingHandler  *handler.MappingHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	mappingHandler *handler.MappingHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		patientHandler:  patientHandler,
		doctorHandler:   doctorHandler,
		mappingHandler:  mappingHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

// Setup wires all routes. Trailing slashes are part of the paths. The
// patient/doctor detail endpoints intentionally carry no authentication,
// matching the contract this service replaces; see the design notes.
func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health/", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	api.HandleFunc("/auth/register/", r.authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login/", r.authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh/", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Protected routes
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/auth/logout/", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me/", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/patients/", r.patientHandler.ListPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/doctors/", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	protected.HandleFunc("/audit-logs/", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	protected.HandleFunc("/audit-logs/{id:[0-9]+}/", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Patient detail (no auth enforced)
	api.HandleFunc("/patients/{id:[0-9]+}/", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id:[0-9]+}/", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id:[0-9]+}/", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Doctors (list public, detail no auth enforced)
	api.HandleFunc("/doctors/", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id:[0-9]+}/", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Mappings (public)
	api.HandleFunc("/mappings/", r.mappingHandler.ListMappings).Methods(http.MethodGet)
	api.HandleFunc("/mappings/", r.mappingHandler.CreateMapping).Methods(http.MethodPost)
	api.HandleFunc("/mappings/{patient_id:[0-9]+}/", r.mappingHandler.GetPatientDoctors).Methods(http.MethodGet)
	api.HandleFunc("/mappings/{id:[0-9]+}/delete/", r.mappingHandler.DeleteMapping).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
