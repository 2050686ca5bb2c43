package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Archivo persists each key as a file inside a directory, el equivalente
// local "en el dispositivo" del almacén original. Es el backend por
// defecto.
type Archivo struct {
	mu  sync.Mutex
	dir string
}

// NewArchivo creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewArchivo(dir string) (*Archivo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creando el directorio del almacén: %w", err)
	}
	return &Archivo{dir: dir}, nil
}

func (a *Archivo) ruta(clave string) string {
	return filepath.Join(a.dir, clave+".json")
}

func (a *Archivo) Get(_ context.Context, clave string) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	valor, err := os.ReadFile(a.ruta(clave))
	if os.IsNotExist(err) {
		return nil, ErrNoExiste
	}
	if err != nil {
		return nil, fmt.Errorf("error leyendo la clave %q: %w", clave, err)
	}
	return valor, nil
}

func (a *Archivo) Set(_ context.Context, clave string, valor []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Escritura a un temporal y rename para no dejar el archivo a medias
	// si el proceso muere durante la escritura.
	tmp := a.ruta(clave) + ".tmp"
	if err := os.WriteFile(tmp, valor, 0o644); err != nil {
		return fmt.Errorf("error escribiendo la clave %q: %w", clave, err)
	}
	if err := os.Rename(tmp, a.ruta(clave)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error escribiendo la clave %q: %w", clave, err)
	}
	return nil
}
