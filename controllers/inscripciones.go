package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/kelydev/apiParticipantes/models"
	"github.com/kelydev/apiParticipantes/repository"
)

// InscripcionRequest is the registration form as the user types it: edad
// llega como texto y se valida antes de convertir.
type InscripcionRequest struct {
	Nombre string `json:"nombre"`
	Edad   string `json:"edad"`
	Cedula string `json:"cedula"`
	Sexo   string `json:"sexo"`
}

// InscribirParticipanteHandler handles registering a new participant.
// Si algún campo no pasa la validación no se toca el almacén y se
// devuelve el detalle por campo.
func InscribirParticipanteHandler(registro *repository.Registro) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InscripcionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		validacion := models.ValidarRegistro(req.Nombre, req.Edad, req.Cedula, req.Sexo)
		if !validacion.Valida() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"mensaje": "Completa todos los campos.",
				"errores": validacion.Errores,
			})
			return
		}

		edad, err := strconv.Atoi(req.Edad)
		if err != nil {
			// ValidarRegistro ya exigió edad numérica.
			http.Error(w, "Edad inválida", http.StatusBadRequest)
			return
		}

		participante, err := registro.Crear(r.Context(), req.Nombre, edad, req.Cedula, req.Sexo)
		if err != nil {
			log.Printf("Error al inscribir al participante: %v", err)
			http.Error(w, "Error al inscribir al participante", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(participante)
	}
}
