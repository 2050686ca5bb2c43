package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kelydev/apiParticipantes/models"
	"github.com/kelydev/apiParticipantes/repository"
	"github.com/kelydev/apiParticipantes/tiempo"
	"github.com/kelydev/apiParticipantes/utils"
)

// GetParticipantesHandler returns the paginated participant list with the
// clock times already formatted, como la muestra la pantalla de llegada.
func GetParticipantesHandler(registro *repository.Registro) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lista, err := registro.Listar(r.Context())
		if err != nil {
			log.Printf("Error al cargar la lista de participantes: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		page, limit := utils.GetPaginationParams(r)
		offset := (page - 1) * limit

		totalItems := len(lista)
		totalPages := 0
		if totalItems > 0 {
			totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
		}

		pagina := []models.ParticipanteConTiempos{}
		for i := offset; i < totalItems && i < offset+limit; i++ {
			p := lista[i]
			pagina = append(pagina, models.ParticipanteConTiempos{
				Participante:      p,
				LlegadaFormateada: tiempo.Formatear(p.Llegada),
				SalidaFormateada:  tiempo.Formatear(p.Salida),
			})
		}

		response := models.PaginatedResponse{
			Data: pagina,
			Pagination: models.PaginationMetadata{
				TotalItems:  totalItems,
				TotalPages:  totalPages,
				CurrentPage: page,
				Limit:       limit,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// TiempoRequest carries the picker values of the llegada modal. Los dos
// tiempos se guardan juntos, reemplazando lo que hubiera.
type TiempoRequest struct {
	HoraLlegada   int `json:"horaLlegada"`
	MinutoLlegada int `json:"minutoLlegada"`
	HoraSalida    int `json:"horaSalida"`
	MinutoSalida  int `json:"minutoSalida"`
}

// GuardarTiempoHandler records the arrival and departure times of a
// participant.
func GuardarTiempoHandler(registro *repository.Registro) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var req TiempoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		llegada, err := tiempo.Codificar(req.HoraLlegada, req.MinutoLlegada)
		if err != nil {
			http.Error(w, "Hora de llegada inválida: "+err.Error(), http.StatusBadRequest)
			return
		}
		salida, err := tiempo.Codificar(req.HoraSalida, req.MinutoSalida)
		if err != nil {
			http.Error(w, "Hora de salida inválida: "+err.Error(), http.StatusBadRequest)
			return
		}

		participante, err := registro.GuardarTiempos(r.Context(), id, llegada, salida)
		if errors.Is(err, repository.ErrNoEncontrado) {
			http.Error(w, "Participante no encontrado", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Error al guardar los tiempos: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ParticipanteConTiempos{
			Participante:      participante,
			LlegadaFormateada: tiempo.Formatear(participante.Llegada),
			SalidaFormateada:  tiempo.Formatear(participante.Salida),
		})
	}
}

// SolicitarBorradoHandler marks a participant for deletion. El almacén no
// cambia hasta que se confirme.
func SolicitarBorradoHandler(registro *repository.Registro) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		participante, err := registro.SolicitarBorrado(r.Context(), id)
		if errors.Is(err, repository.ErrNoEncontrado) {
			http.Error(w, "Participante no encontrado", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Error al solicitar el borrado: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"mensaje": "¿Seguro que quieres eliminar a " + participante.Nombre + "?",
			"id":      participante.ID,
		})
	}
}

// ConfirmarBorradoHandler removes the marked participant and persists the
// new list.
func ConfirmarBorradoHandler(registro *repository.Registro) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := registro.ConfirmarBorrado(r.Context())
		if errors.Is(err, repository.ErrSinBorradoPendiente) {
			http.Error(w, "No hay ningún borrado pendiente", http.StatusConflict)
			return
		}
		if err != nil {
			log.Printf("Error al intentar borrar el participante: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// CancelarBorradoHandler discards a pending deletion mark.
func CancelarBorradoHandler(registro *repository.Registro) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := registro.CancelarBorrado(); err != nil {
			http.Error(w, "No hay ningún borrado pendiente", http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
