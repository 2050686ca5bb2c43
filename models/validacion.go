package models

import "strconv"

// EsCedulaValida reports whether la cédula tiene exactamente 10 dígitos
// ASCII. No se normaliza nada: "0000000000" es válida.
func EsCedulaValida(cedula string) bool {
	if len(cedula) != 10 {
		return false
	}
	for i := 0; i < len(cedula); i++ {
		if cedula[i] < '0' || cedula[i] > '9' {
			return false
		}
	}
	return true
}

// MensajeCedulaInvalida es el mensaje que ven los usuarios cuando la cédula
// no pasa la validación (distinto del mensaje de "no encontrado").
const MensajeCedulaInvalida = "La cédula debe contener solo números y tener una longitud de 10 dígitos"

// ValidacionRegistro collects every field violation of a registration
// request in one place, en lugar de banderas booleanas sueltas por campo.
type ValidacionRegistro struct {
	Errores map[string]string `json:"errores"`
}

// Valida reports whether no field was rejected.
func (v ValidacionRegistro) Valida() bool {
	return len(v.Errores) == 0
}

func (v *ValidacionRegistro) agregar(campo, mensaje string) {
	if v.Errores == nil {
		v.Errores = map[string]string{}
	}
	v.Errores[campo] = mensaje
}

// ValidarRegistro validates the raw registration fields. Edad llega como
// texto porque así la escribe el usuario; se exige numérica, no negativa y
// de máximo 3 dígitos.
func ValidarRegistro(nombre, edad, cedula, sexo string) ValidacionRegistro {
	var v ValidacionRegistro

	if nombre == "" {
		v.agregar("nombre", "Nombre es obligatorio")
	}
	if edad == "" {
		v.agregar("edad", "Edad es obligatoria")
	} else if n, err := strconv.Atoi(edad); err != nil || n < 0 || len(edad) > 3 {
		v.agregar("edad", "Edad debe ser un número de hasta 3 dígitos")
	}
	if !EsCedulaValida(cedula) {
		v.agregar("cedula", "Cédula debe tener 10 dígitos")
	}
	if sexo == "" {
		v.agregar("sexo", "Género es obligatorio")
	} else if !EsSexoValido(sexo) {
		v.agregar("sexo", "Género no reconocido")
	}

	return v
}
