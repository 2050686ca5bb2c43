package repository

import (
	"sort"

	"github.com/kelydev/apiParticipantes/models"
)

// Las funciones de consulta son puras: operan sobre la lista que reciben
// y nunca tocan el almacén.

// BuscarPorCedula returns the first participant whose cedula matches
// exactly, or nil when none does. Las cédulas duplicadas no son un error:
// gana la primera en el orden de inserción.
func BuscarPorCedula(lista []models.Participante, cedula string) *models.Participante {
	for i := range lista {
		if lista[i].Cedula == cedula {
			return &lista[i]
		}
	}
	return nil
}

// VistaResultados builds the results view: solo participantes con llegada
// y salida registradas, ordenados ascendentemente por el tiempo de llegada
// empacado. El orden numérico de los valores empacados es cronológico
// porque el minuto siempre es < 60 (invariante impuesta por tiempo.Codificar).
// Si filtroSexo no es vacío, se conservan solo los de ese sexo; el filtro
// preserva el orden, así que da igual aplicarlo antes o después de ordenar.
func VistaResultados(lista []models.Participante, filtroSexo string) []models.Participante {
	resultados := make([]models.Participante, 0, len(lista))
	for _, p := range lista {
		if p.Llegada != nil && p.Salida != nil {
			resultados = append(resultados, p)
		}
	}

	// Orden estable: empates de llegada conservan el orden de inserción.
	sort.SliceStable(resultados, func(i, j int) bool {
		return *resultados[i].Llegada < *resultados[j].Llegada
	})

	if filtroSexo == "" {
		return resultados
	}
	filtrados := resultados[:0]
	for _, p := range resultados {
		if p.Sexo == filtroSexo {
			filtrados = append(filtrados, p)
		}
	}
	return filtrados
}

// ParticionPorSexo splits the list by category, manteniendo el orden de
// entrada dentro de cada grupo.
func ParticionPorSexo(lista []models.Participante) map[string][]models.Participante {
	particion := make(map[string][]models.Participante)
	for _, p := range lista {
		particion[p.Sexo] = append(particion[p.Sexo], p)
	}
	return particion
}
