package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEsCedulaValida(t *testing.T) {
	casos := []struct {
		cedula   string
		esperado bool
	}{
		{"1234567890", true},
		{"0000000000", true},
		{"9999999999", true},
		{"123456789", false},
		{"12345678901", false},
		{"", false},
		{"12345678a0", false},
		{"1234 67890", false},
		{"12345678.0", false},
		{"-123456789", false},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, EsCedulaValida(c.cedula), "cedula %q", c.cedula)
	}
}

func TestValidarRegistro(t *testing.T) {
	t.Run("registro completo", func(t *testing.T) {
		v := ValidarRegistro("Ana", "25", "1234567890", SexoFemenino)
		assert.True(t, v.Valida())
		assert.Empty(t, v.Errores)
	})

	t.Run("edad faltante", func(t *testing.T) {
		v := ValidarRegistro("Ana", "", "1234567890", SexoFemenino)
		assert.False(t, v.Valida())
		assert.Contains(t, v.Errores, "edad")
	})

	t.Run("edad no numérica", func(t *testing.T) {
		v := ValidarRegistro("Ana", "abc", "1234567890", SexoFemenino)
		assert.False(t, v.Valida())
		assert.Contains(t, v.Errores, "edad")
	})

	t.Run("edad de más de tres dígitos", func(t *testing.T) {
		v := ValidarRegistro("Ana", "1234", "1234567890", SexoFemenino)
		assert.False(t, v.Valida())
		assert.Contains(t, v.Errores, "edad")
	})

	t.Run("todos los campos faltantes", func(t *testing.T) {
		v := ValidarRegistro("", "", "", "")
		assert.False(t, v.Valida())
		assert.Len(t, v.Errores, 4)
	})

	t.Run("sexo fuera del conjunto", func(t *testing.T) {
		v := ValidarRegistro("Ana", "25", "1234567890", "Desconocido")
		assert.False(t, v.Valida())
		assert.Contains(t, v.Errores, "sexo")
	})

	t.Run("cédula corta", func(t *testing.T) {
		v := ValidarRegistro("Ana", "25", "12345", SexoFemenino)
		assert.False(t, v.Valida())
		assert.Contains(t, v.Errores, "cedula")
	})
}

func TestEsSexoValido(t *testing.T) {
	assert.True(t, EsSexoValido(SexoMasculino))
	assert.True(t, EsSexoValido(SexoFemenino))
	assert.True(t, EsSexoValido(SexoOtro))
	assert.False(t, EsSexoValido(""))
	assert.False(t, EsSexoValido("masculino"))
}
