package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchivoGetSet(t *testing.T) {
	almacen, err := NewArchivo(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = almacen.Get(ctx, "participantes")
	assert.ErrorIs(t, err, ErrNoExiste)

	require.NoError(t, almacen.Set(ctx, "participantes", []byte(`[{"id":"1"}]`)))

	valor, err := almacen.Get(ctx, "participantes")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(valor))

	// Sobrescritura completa, sin fusiones parciales.
	require.NoError(t, almacen.Set(ctx, "participantes", []byte(`[]`)))
	valor, err = almacen.Get(ctx, "participantes")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(valor))
}

func TestArchivoSobreviveReapertura(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	almacen, err := NewArchivo(dir)
	require.NoError(t, err)
	require.NoError(t, almacen.Set(ctx, "participantes", []byte(`[1,2,3]`)))

	reabierto, err := NewArchivo(dir)
	require.NoError(t, err)
	valor, err := reabierto.Get(ctx, "participantes")
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(valor))
}

func TestMemoriaGetSet(t *testing.T) {
	almacen := NewMemoria()
	ctx := context.Background()

	_, err := almacen.Get(ctx, "participantes")
	assert.ErrorIs(t, err, ErrNoExiste)

	require.NoError(t, almacen.Set(ctx, "participantes", []byte("hola")))
	valor, err := almacen.Get(ctx, "participantes")
	require.NoError(t, err)
	assert.Equal(t, "hola", string(valor))

	// El valor devuelto es una copia: mutarlo no toca lo guardado.
	valor[0] = 'x'
	otra, err := almacen.Get(ctx, "participantes")
	require.NoError(t, err)
	assert.Equal(t, "hola", string(otra))
}
