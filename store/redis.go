package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a Redis-backed Store. El ciclo de vida del cliente lo maneja
// quien lo construye.
type Redis struct {
	cliente *redis.Client
	prefijo string
}

// NewRedis wraps an existing Redis client. Las claves se guardan con el
// prefijo "registro:".
func NewRedis(cliente *redis.Client) *Redis {
	return &Redis{cliente: cliente, prefijo: "registro:"}
}

func (r *Redis) Get(ctx context.Context, clave string) ([]byte, error) {
	valor, err := r.cliente.Get(ctx, r.prefijo+clave).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoExiste
	}
	if err != nil {
		return nil, fmt.Errorf("error leyendo la clave %q de redis: %w", clave, err)
	}
	return valor, nil
}

func (r *Redis) Set(ctx context.Context, clave string, valor []byte) error {
	if err := r.cliente.Set(ctx, r.prefijo+clave, valor, 0).Err(); err != nil {
		return fmt.Errorf("error escribiendo la clave %q en redis: %w", clave, err)
	}
	return nil
}
