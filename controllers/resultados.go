package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/kelydev/apiParticipantes/models"
	"github.com/kelydev/apiParticipantes/repository"
	"github.com/kelydev/apiParticipantes/tiempo"
)

// GetResultadosHandler builds the results view: participants with both
// times recorded, ordenados por llegada, opcionalmente filtrados por sexo,
// cada uno con su posición y el intervalo formateado.
func GetResultadosHandler(registro *repository.Registro) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtroSexo := r.URL.Query().Get("sexo")
		if filtroSexo != "" && !models.EsSexoValido(filtroSexo) {
			http.Error(w, "Sexo no reconocido", http.StatusBadRequest)
			return
		}

		lista, err := registro.Listar(r.Context())
		if err != nil {
			log.Printf("Error al cargar la lista de participantes para resultados: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		ordenados := repository.VistaResultados(lista, filtroSexo)

		resultados := []models.ResultadoParticipante{}
		for i, p := range ordenados {
			resultados = append(resultados, models.ResultadoParticipante{
				Posicion:          i + 1,
				Nombre:            p.Nombre,
				Sexo:              p.Sexo,
				IntervaloDeTiempo: tiempo.FormatearIntervalo(p.Llegada, p.Salida),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resultados)
	}
}
