package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/kelydev/apiParticipantes/models"
	"github.com/kelydev/apiParticipantes/repository"
	"github.com/kelydev/apiParticipantes/tiempo"
)

// ConsultaPorCedulaHandler looks a participant up by cedula and returns
// the detail card with the formatted elapsed interval. Una cédula mal
// formada y una cédula sin coincidencias son fallas distintas: 400 con el
// mensaje de validación y 404 respectivamente.
func ConsultaPorCedulaHandler(registro *repository.Registro) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cedula := r.URL.Query().Get("cedula")
		if !models.EsCedulaValida(cedula) {
			http.Error(w, models.MensajeCedulaInvalida, http.StatusBadRequest)
			return
		}

		lista, err := registro.Listar(r.Context())
		if err != nil {
			log.Printf("Error al cargar la lista de participantes: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		participante := repository.BuscarPorCedula(lista, cedula)
		if participante == nil {
			http.Error(w, "Participante no encontrado", http.StatusNotFound)
			return
		}

		detalle := models.ConsultaParticipante{
			Nombre: participante.Nombre,
			Cedula: participante.Cedula,
			Tiempo: tiempo.FormatearIntervalo(participante.Llegada, participante.Salida),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(detalle)
	}
}
