package store

import "errors"

// ErrNoExiste indica que la clave nunca fue escrita en el almacén.
var ErrNoExiste = errors.New("la clave no existe en el almacén")
