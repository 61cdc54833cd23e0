// Package repository provides the in-memory record store backing the
// directory: the user collection and the business collection, each an
// ordered slice scanned linearly.
package repository

import (
	"sync"

	"github.com/weconnect/weconnect/internal/model"
)

// Store is the authoritative record store for users and businesses.
// A single mutex guards both collections: every operation is a linear
// scan followed by an append or in-place replace, so each operation
// holds exclusive access for its whole duration and no caller can
// observe a partially applied mutation.
type Store struct {
	mu         sync.Mutex
	users      []model.User
	businesses []model.Business
}

// New creates an empty Store. One Store is created at service start
// and lives for the whole process; nothing is persisted across
// restarts.
func New() *Store {
	return &Store{}
}
