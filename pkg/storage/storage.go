package storage

import (
	"fmt"

	"github.com/go-pg/pg"
)

// PersistenceError is a failed database call.
// Callers should treat it as transient, webhook deliveries failed with it are retried by the sender.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceError(op string, err error) error {
	if err == pg.ErrNoRows {
		return err
	}

	return &PersistenceError{Op: op, Err: err}
}
