// Package tiempo implementa el codec de tiempos empacados del registro:
// una hora del día se guarda como el entero hora*100+minuto (930 = 09:30).
// Como el minuto siempre es < 60, el orden numérico de los valores
// empacados coincide con el orden cronológico; esa invariante se impone
// aquí, en la codificación, y el resto del sistema depende de ella para
// ordenar resultados sin volver a interpretar el tiempo.
package tiempo

import "fmt"

// Codificar empaqueta una hora del día como hora*100+minuto.
// Rechaza valores fuera de rango para que nunca exista un valor empacado
// cuyo minuto sea >= 60.
func Codificar(hora, minuto int) (int, error) {
	if hora < 0 || hora > 23 {
		return 0, fmt.Errorf("hora fuera de rango: %d", hora)
	}
	if minuto < 0 || minuto > 59 {
		return 0, fmt.Errorf("minuto fuera de rango: %d", minuto)
	}
	return hora*100 + minuto, nil
}

// Decodificar separa un valor empacado en hora y minuto.
func Decodificar(empacado int) (hora, minuto int) {
	return empacado / 100, empacado % 100
}

// Formatear produce "HH:MM" con ceros a la izquierda, o "" si el tiempo
// está ausente.
func Formatear(empacado *int) string {
	if empacado == nil {
		return ""
	}
	hora, minuto := Decodificar(*empacado)
	return fmt.Sprintf("%02d:%02d", hora, minuto)
}

// FormatearIntervalo describe el tiempo transcurrido entre la llegada y la
// salida: "N hora(s) N minuto(s)", omitiendo los componentes en cero.
// La diferencia se calcula siempre como salida menos llegada y se muestra
// su magnitud, sin signo. Devuelve "" si falta cualquiera de los dos
// tiempos o si la diferencia es cero.
func FormatearIntervalo(llegada, salida *int) string {
	if llegada == nil || salida == nil {
		return ""
	}

	horaLlegada, minutoLlegada := Decodificar(*llegada)
	horaSalida, minutoSalida := Decodificar(*salida)

	minutos := (horaSalida*60 + minutoSalida) - (horaLlegada*60 + minutoLlegada)
	if minutos < 0 {
		minutos = -minutos
	}

	horas := minutos / 60
	restantes := minutos % 60

	resultado := ""
	if horas > 0 {
		if horas == 1 {
			resultado = "1 hora"
		} else {
			resultado = fmt.Sprintf("%d horas", horas)
		}
	}
	if restantes > 0 {
		if resultado != "" {
			resultado += " "
		}
		if restantes == 1 {
			resultado += "1 minuto"
		} else {
			resultado += fmt.Sprintf("%d minutos", restantes)
		}
	}
	return resultado
}
