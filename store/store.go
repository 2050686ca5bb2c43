// Package store define el contrato del almacén clave-valor donde se
// persiste la lista completa de participantes, junto con sus
// implementaciones. El núcleo nunca hace escrituras parciales: cada
// mutación lee el valor completo, calcula uno nuevo y lo escribe entero.
package store

import "context"

// Store is the opaque key-value collaborator: un valor serializado por
// clave, sin versionado ni transacciones.
type Store interface {
	// Get returns the stored value for clave, or ErrNoExiste when the
	// key has never been written.
	Get(ctx context.Context, clave string) ([]byte, error)
	// Set overwrites the value for clave.
	Set(ctx context.Context, clave string, valor []byte) error
}
