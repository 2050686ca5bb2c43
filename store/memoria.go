package store

import (
	"context"
	"sync"
)

// Memoria is an in-memory Store, usada en pruebas y como respaldo cuando
// no se configura ningún otro backend.
type Memoria struct {
	mu      sync.RWMutex
	valores map[string][]byte
}

// NewMemoria creates an empty in-memory store.
func NewMemoria() *Memoria {
	return &Memoria{valores: make(map[string][]byte)}
}

func (m *Memoria) Get(_ context.Context, clave string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	valor, ok := m.valores[clave]
	if !ok {
		return nil, ErrNoExiste
	}
	copia := make([]byte, len(valor))
	copy(copia, valor)
	return copia, nil
}

func (m *Memoria) Set(_ context.Context, clave string, valor []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copia := make([]byte, len(valor))
	copy(copia, valor)
	m.valores[clave] = copia
	return nil
}
