package store

import (
	"errors"
	"fmt"

	"pet-health/internal/domain/records"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence failure")
)

// PersistenceError indica que el cambio en memoria se aplicó pero no se pudo guardar
// (o que no se pudo leer la colección al cargar).
type PersistenceError struct {
	Category records.Category
	Op       string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s (%s): %v", e.Category, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
