package models

// Valores permitidos para el campo sexo.
const (
	SexoMasculino = "Masculino"
	SexoFemenino  = "Femenino"
	SexoOtro      = "Otro"
)

// EsSexoValido reports whether s belongs to the closed set of categories.
func EsSexoValido(s string) bool {
	return s == SexoMasculino || s == SexoFemenino || s == SexoOtro
}

// Participante represents a registered participant as persisted in the store.
// Los tiempos se guardan empacados como hora*100+minuto (ej: 930 = 09:30);
// nil significa que el tiempo aún no fue registrado.
type Participante struct {
	ID      string `json:"id"`
	Nombre  string `json:"nombre"`
	Edad    int    `json:"edad"`
	Cedula  string `json:"cedula"`
	Sexo    string `json:"sexo"`
	Llegada *int   `json:"selectedArrivalTime"`
	Salida  *int   `json:"selectedDepartureTime"`
}

// ParticipanteConTiempos wraps a participant with its clock times already
// formatted as "HH:MM" for list views.
type ParticipanteConTiempos struct {
	Participante
	LlegadaFormateada string `json:"llegadaFormateada"`
	SalidaFormateada  string `json:"salidaFormateada"`
}

// ResultadoParticipante is one row of the results view.
type ResultadoParticipante struct {
	Posicion          int    `json:"posicion"`
	Nombre            string `json:"nombre"`
	Sexo              string `json:"sexo"`
	IntervaloDeTiempo string `json:"intervaloDeTiempo"`
}

// ConsultaParticipante is the detail card returned by the cedula lookup.
type ConsultaParticipante struct {
	Nombre string `json:"nombre"`
	Cedula string `json:"cedula"`
	Tiempo string `json:"tiempo"`
}
