package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/kelydev/apiParticipantes/models"
	"github.com/kelydev/apiParticipantes/store"
)

// ClaveParticipantes es la única clave del almacén bajo la que vive la
// lista completa de participantes.
const ClaveParticipantes = "participantes"

// ErrNoEncontrado indica que ningún participante tiene el id pedido.
var ErrNoEncontrado = errors.New("participante no encontrado")

// ErrSinBorradoPendiente se devuelve al confirmar o cancelar un borrado
// cuando nadie fue marcado antes.
var ErrSinBorradoPendiente = errors.New("no hay ningún borrado pendiente")

// ErrorDecodificacion indica que el almacén contiene datos que no se
// pueden interpretar. Se reporta en lugar de tratarlos como lista vacía,
// para no perder datos en silencio.
type ErrorDecodificacion struct {
	Causa error
}

func (e *ErrorDecodificacion) Error() string {
	return fmt.Sprintf("los datos guardados están corruptos: %v", e.Causa)
}

func (e *ErrorDecodificacion) Unwrap() error { return e.Causa }

// Registro owns the canonical in-memory participant list and is the only
// writer against the store. Todas las mutaciones se serializan con el
// mutex: leer la lista completa, calcular la nueva y hacer un único Set,
// de modo que nunca hay dos escrituras de este proceso en vuelo.
type Registro struct {
	mu               sync.Mutex
	almacen          store.Store
	participantes    []models.Participante
	cargado          bool
	borradoPendiente string
}

// NewRegistro creates a registry over the given store. La lista se carga
// del almacén en el primer acceso.
func NewRegistro(almacen store.Store) *Registro {
	return &Registro{almacen: almacen}
}

// cargar trae la lista del almacén si todavía no está en memoria.
// Clave ausente significa lista vacía; datos ilegibles son un
// ErrorDecodificacion explícito y la lista en memoria queda intacta.
func (r *Registro) cargar(ctx context.Context) error {
	if r.cargado {
		return nil
	}
	valor, err := r.almacen.Get(ctx, ClaveParticipantes)
	if errors.Is(err, store.ErrNoExiste) {
		r.participantes = []models.Participante{}
		r.cargado = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("error cargando la lista de participantes: %w", err)
	}
	var lista []models.Participante
	if err := json.Unmarshal(valor, &lista); err != nil {
		return &ErrorDecodificacion{Causa: err}
	}
	r.participantes = lista
	r.cargado = true
	return nil
}

// guardar escribe la lista completa bajo la clave única. Si la escritura
// falla, la lista en memoria previa sigue siendo la fuente de verdad.
func (r *Registro) guardar(ctx context.Context, lista []models.Participante) error {
	valor, err := json.Marshal(lista)
	if err != nil {
		return fmt.Errorf("error serializando la lista de participantes: %w", err)
	}
	if err := r.almacen.Set(ctx, ClaveParticipantes, valor); err != nil {
		return fmt.Errorf("error guardando la lista de participantes: %w", err)
	}
	r.participantes = lista
	return nil
}

// Listar returns a copy of the full participant list.
func (r *Registro) Listar(ctx context.Context) ([]models.Participante, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.cargar(ctx); err != nil {
		return nil, err
	}
	lista := make([]models.Participante, len(r.participantes))
	copy(lista, r.participantes)
	return lista, nil
}

// Crear registers a new participant, le asigna un id fresco y persiste la
// lista. El participante nuevo no tiene tiempos.
func (r *Registro) Crear(ctx context.Context, nombre string, edad int, cedula, sexo string) (models.Participante, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.cargar(ctx); err != nil {
		return models.Participante{}, err
	}

	p := models.Participante{
		ID:     uuid.NewString(),
		Nombre: nombre,
		Edad:   edad,
		Cedula: cedula,
		Sexo:   sexo,
	}

	lista := make([]models.Participante, len(r.participantes), len(r.participantes)+1)
	copy(lista, r.participantes)
	lista = append(lista, p)

	if err := r.guardar(ctx, lista); err != nil {
		return models.Participante{}, err
	}
	return p, nil
}

// GuardarTiempos replaces both time fields of the participant with the
// given packed values y persiste la lista. Los dos campos se reemplazan
// juntos, como hace la pantalla de llegada.
func (r *Registro) GuardarTiempos(ctx context.Context, id string, llegada, salida int) (models.Participante, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.cargar(ctx); err != nil {
		return models.Participante{}, err
	}

	lista := make([]models.Participante, len(r.participantes))
	copy(lista, r.participantes)

	indice := -1
	for i := range lista {
		if lista[i].ID == id {
			indice = i
			break
		}
	}
	if indice == -1 {
		return models.Participante{}, ErrNoEncontrado
	}

	l, s := llegada, salida
	lista[indice].Llegada = &l
	lista[indice].Salida = &s

	if err := r.guardar(ctx, lista); err != nil {
		return models.Participante{}, err
	}
	return lista[indice], nil
}

// SolicitarBorrado marks a participant for deletion. No toca el almacén:
// la lista persistida solo cambia cuando se confirma.
func (r *Registro) SolicitarBorrado(ctx context.Context, id string) (models.Participante, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.cargar(ctx); err != nil {
		return models.Participante{}, err
	}
	for _, p := range r.participantes {
		if p.ID == id {
			r.borradoPendiente = id
			return p, nil
		}
	}
	return models.Participante{}, ErrNoEncontrado
}

// ConfirmarBorrado removes the participant marked by SolicitarBorrado and
// persists the new list.
func (r *Registro) ConfirmarBorrado(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.borradoPendiente == "" {
		return ErrSinBorradoPendiente
	}
	if err := r.cargar(ctx); err != nil {
		return err
	}

	lista := make([]models.Participante, 0, len(r.participantes))
	for _, p := range r.participantes {
		if p.ID != r.borradoPendiente {
			lista = append(lista, p)
		}
	}

	if err := r.guardar(ctx, lista); err != nil {
		return err
	}
	r.borradoPendiente = ""
	return nil
}

// CancelarBorrado discards the pending deletion mark, if any.
func (r *Registro) CancelarBorrado() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.borradoPendiente == "" {
		return ErrSinBorradoPendiente
	}
	r.borradoPendiente = ""
	return nil
}
