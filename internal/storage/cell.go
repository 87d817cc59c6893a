// Package storage provides a typed, durable key-value cell: one value of a
// declared type held under a fixed key, initialized from storage at first
// access and written through on every change.
package storage

import (
	"context"
	"encoding/json"
	"sync"

	"task-manager/internal/errors"
	"task-manager/internal/storage/sqlite"

	"go.uber.org/zap"
)

// Source indicates where a read obtained its value.
type Source int

const (
	// SourceStore means the value was deserialized from durable storage.
	SourceStore Source = iota
	// SourceDefault means the stored value was absent or unreadable and the
	// caller-supplied default was used instead.
	SourceDefault
)

// Cell is a durable slot holding one value of type T under a fixed key.
// Reads fall back to the default when the key is absent or the stored
// payload cannot be deserialized; such failures are logged, never surfaced.
// Writes serialize before touching the store, so a failed serialization
// leaves the previous durable value intact. The in-memory value always
// reflects the most recent write attempt (best-effort durability).
//
// A Cell assumes a single client; concurrent writers on the same key from
// other processes race with last-write-wins semantics.
type Cell[T any] struct {
	mu     sync.Mutex
	kv     *sqlite.KV
	key    string
	def    T
	log    *zap.Logger
	value  T
	loaded bool
}

// NewCell creates a cell for key with the given default value.
func NewCell[T any](kv *sqlite.KV, key string, defaultValue T, log *zap.Logger) *Cell[T] {
	return &Cell[T]{
		kv:  kv,
		key: key,
		def: defaultValue,
		log: log,
	}
}

// Read returns the cell's current value, loading it from storage on first
// access and falling back to the default when nothing usable is stored.
func (c *Cell[T]) Read(ctx context.Context) T {
	v, _ := c.ReadWithSource(ctx)
	return v
}

// ReadWithSource is Read with an explicit tag describing whether the value
// came from durable storage or from the default fallback.
func (c *Cell[T]) ReadWithSource(ctx context.Context) (T, Source) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.value, SourceStore
	}

	value, source := c.load(ctx)
	c.value = value
	c.loaded = true
	return value, source
}

// load fetches and deserializes the stored payload. Every failure path
// resolves to the default value with a diagnostic log entry.
func (c *Cell[T]) load(ctx context.Context) (T, Source) {
	raw, found, err := c.kv.Get(ctx, c.key)
	if err != nil {
		c.log.Warn("cell read failed, using default",
			zap.String("key", c.key),
			zap.Error(err))
		return c.def, SourceDefault
	}
	if !found {
		return c.def, SourceDefault
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		c.log.Warn("cell payload unreadable, using default",
			zap.String("key", c.key),
			zap.Error(errors.NewSerializationError(c.key, err)))
		return c.def, SourceDefault
	}
	return value, SourceStore
}

// Write replaces the cell's value and persists it. The in-memory value is
// updated even when persistence fails; the returned error reports what went
// wrong for callers that want to log it.
func (c *Cell[T]) Write(ctx context.Context, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(ctx, value)
}

// Update applies fn to the current in-memory value, persists the result and
// returns it. Persistence failures are logged and absorbed.
func (c *Cell[T]) Update(ctx context.Context, fn func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		c.value, _ = c.load(ctx)
		c.loaded = true
	}

	next := fn(c.value)
	if err := c.write(ctx, next); err != nil {
		c.log.Warn("cell update not persisted",
			zap.String("key", c.key),
			zap.Error(err))
	}
	return next
}

// write must be called with c.mu held.
func (c *Cell[T]) write(ctx context.Context, value T) error {
	// Serialize before mutating anything durable so a marshal failure
	// cannot clobber the previous payload.
	payload, err := json.Marshal(value)

	c.value = value
	c.loaded = true

	if err != nil {
		serr := errors.NewSerializationError(c.key, err)
		c.log.Warn("cell write skipped, value not serializable",
			zap.String("key", c.key),
			zap.Error(serr))
		return serr
	}

	if err := c.kv.Put(ctx, c.key, string(payload)); err != nil {
		c.log.Warn("cell write failed, previous value retained",
			zap.String("key", c.key),
			zap.Error(err))
		return err
	}
	return nil
}

// Key returns the storage key the cell is bound to.
func (c *Cell[T]) Key() string {
	return c.key
}
