package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Postgres keeps each key as a row of a two-column table. Sigue siendo un
// almacén clave-valor: el valor es el blob serializado completo.
type Postgres struct {
	db *sql.DB
}

// NewPostgres prepares the backing table and returns the store.
func NewPostgres(ctx context.Context, db *sql.DB) (*Postgres, error) {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS almacen (clave TEXT PRIMARY KEY, valor TEXT NOT NULL)`)
	if err != nil {
		return nil, fmt.Errorf("error creando la tabla almacen: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(ctx context.Context, clave string) ([]byte, error) {
	var valor string
	err := p.db.QueryRowContext(ctx, `SELECT valor FROM almacen WHERE clave = $1`, clave).Scan(&valor)
	if err == sql.ErrNoRows {
		return nil, ErrNoExiste
	}
	if err != nil {
		return nil, fmt.Errorf("error leyendo la clave %q: %w", clave, err)
	}
	return []byte(valor), nil
}

func (p *Postgres) Set(ctx context.Context, clave string, valor []byte) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO almacen (clave, valor) VALUES ($1, $2) ON CONFLICT (clave) DO UPDATE SET valor = EXCLUDED.valor`,
		clave, string(valor))
	if err != nil {
		return fmt.Errorf("error escribiendo la clave %q: %w", clave, err)
	}
	return nil
}
