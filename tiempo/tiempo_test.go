package tiempo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func empacado(t *testing.T, hora, minuto int) *int {
	t.Helper()
	v, err := Codificar(hora, minuto)
	require.NoError(t, err)
	return &v
}

func TestCodificarDecodificarRoundTrip(t *testing.T) {
	for hora := 0; hora < 24; hora++ {
		for minuto := 0; minuto < 60; minuto++ {
			v, err := Codificar(hora, minuto)
			require.NoError(t, err)
			h, m := Decodificar(v)
			require.Equal(t, hora, h)
			require.Equal(t, minuto, m)
		}
	}
}

func TestCodificarMedianoche(t *testing.T) {
	v, err := Codificar(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	h, m := Decodificar(0)
	assert.Equal(t, 0, h)
	assert.Equal(t, 0, m)
}

func TestCodificarFueraDeRango(t *testing.T) {
	casos := []struct {
		hora, minuto int
	}{
		{-1, 0},
		{24, 0},
		{0, -1},
		{0, 60},
		{25, 99},
	}
	for _, c := range casos {
		_, err := Codificar(c.hora, c.minuto)
		assert.Error(t, err, "Codificar(%d, %d)", c.hora, c.minuto)
	}
}

func TestCodificarPreservaOrdenCronologico(t *testing.T) {
	// El orden numérico de los valores empacados debe coincidir con el
	// cronológico: 00:59 (59) antes que 01:00 (100).
	antes, err := Codificar(0, 59)
	require.NoError(t, err)
	despues, err := Codificar(1, 0)
	require.NoError(t, err)
	assert.Less(t, antes, despues)
}

func TestFormatear(t *testing.T) {
	assert.Equal(t, "", Formatear(nil))
	assert.Equal(t, "09:05", Formatear(empacado(t, 9, 5)))
	assert.Equal(t, "00:00", Formatear(empacado(t, 0, 0)))
	assert.Equal(t, "18:45", Formatear(empacado(t, 18, 45)))
}

func TestFormatearIntervalo(t *testing.T) {
	casos := []struct {
		nombre   string
		llegada  *int
		salida   *int
		esperado string
	}{
		{"ambos presentes", empacado(t, 9, 30), empacado(t, 18, 45), "9 horas 15 minutos"},
		{"singulares", empacado(t, 10, 0), empacado(t, 11, 1), "1 hora 1 minuto"},
		{"solo horas", empacado(t, 8, 0), empacado(t, 10, 0), "2 horas"},
		{"solo minutos", empacado(t, 8, 0), empacado(t, 8, 30), "30 minutos"},
		{"un minuto", empacado(t, 8, 0), empacado(t, 8, 1), "1 minuto"},
		{"sin diferencia", empacado(t, 8, 0), empacado(t, 8, 0), ""},
		{"orden invertido muestra magnitud", empacado(t, 18, 45), empacado(t, 9, 30), "9 horas 15 minutos"},
		{"llegada ausente", nil, empacado(t, 18, 45), ""},
		{"salida ausente", empacado(t, 9, 30), nil, ""},
		{"ambos ausentes", nil, nil, ""},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, FormatearIntervalo(c.llegada, c.salida))
		})
	}
}
