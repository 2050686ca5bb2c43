package routes

import (
	"github.com/gorilla/mux"

	"github.com/kelydev/apiParticipantes/controllers"
	"github.com/kelydev/apiParticipantes/middleware"
	"github.com/kelydev/apiParticipantes/repository"
)

// SetupRoutes configures the application routes.
func SetupRoutes(registro *repository.Registro) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	// Inscripciones
	r.HandleFunc("/participantes", controllers.InscribirParticipanteHandler(registro)).Methods("POST")

	// Llegada: listado, registro de tiempos y borrado en dos pasos
	r.HandleFunc("/participantes", controllers.GetParticipantesHandler(registro)).Methods("GET")
	r.HandleFunc("/participantes/confirmarBorrado", controllers.ConfirmarBorradoHandler(registro)).Methods("POST")
	r.HandleFunc("/participantes/cancelarBorrado", controllers.CancelarBorradoHandler(registro)).Methods("POST")
	r.HandleFunc("/participantes/{id}/tiempo", controllers.GuardarTiempoHandler(registro)).Methods("PUT")
	r.HandleFunc("/participantes/{id}/solicitudBorrado", controllers.SolicitarBorradoHandler(registro)).Methods("POST")

	// Consultas
	r.HandleFunc("/consultas", controllers.ConsultaPorCedulaHandler(registro)).Methods("GET")

	// Resultados
	r.HandleFunc("/resultados", controllers.GetResultadosHandler(registro)).Methods("GET")

	return r
}
