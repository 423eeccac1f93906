package registry

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"github.com/sirkon/lfdlist/internal/dllist"
)

// Handle ручка объекта в реестре.
type Handle[T any] struct {
	node dllist.Node[*Handle[T]]
	reg  *Registry[T]
	refs atomic.Int64

	id    uuid.UUID
	value T
}

// ID идентификатор объекта.
func (h *Handle[T]) ID() uuid.UUID {
	return h.id
}

// Value объект.
func (h *Handle[T]) Value() T {
	return h.value
}

// Refs текущее количество ссылок.
func (h *Handle[T]) Refs() int {
	return int(h.refs.Load())
}

// Acquire захват дополнительной ссылки. Возвращает false, если
// объект уже удалён из реестра.
func (h *Handle[T]) Acquire() bool {
	for {
		c := h.refs.Load()
		if c <= 0 {
			return false
		}

		if h.refs.CompareAndSwap(c, c+1) {
			return true
		}
	}
}

// Release отпускание ссылки. Отпускание последней ссылки удаляет
// объект из реестра.
func (h *Handle[T]) Release() {
	c := h.refs.Add(-1)
	switch {
	case c > 0:
		return
	case c < 0:
		panic(
			errors.New("release of a handle without references").
				Stg("handle-id", h.id).
				Int("references", int(c)),
		)
	}

	h.reg.list.Remove(&h.node)
	h.reg.logger.HandleRemoved(h.id)
}
