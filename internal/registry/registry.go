package registry

import (
	"github.com/google/uuid"
	"github.com/sirkon/lfdlist/internal/dllist"
	"github.com/sirkon/lfdlist/internal/logging"
)

// Registry реестр живых объектов со счётчиком ссылок.
//
// Объект удаляется из реестра той горутиной, которая отпустила последнюю
// ссылку на него. Это и есть гарантия единственного удаляющего для узла
// списка: счётчик обнуляется ровно один раз.
type Registry[T any] struct {
	list   *dllist.Shared[*Handle[T]]
	logger logging.LoggerRegistry
}

// New конструктор пустого реестра.
func New[T any](logger logging.LoggerRegistry) *Registry[T] {
	return &Registry[T]{
		list:   dllist.NewShared[*Handle[T]](),
		logger: logger,
	}
}

// Add добавление объекта в реестр. Возвращённая ручка уже держит
// одну ссылку.
func (r *Registry[T]) Add(v T) *Handle[T] {
	h := &Handle[T]{
		reg:   r,
		id:    uuid.New(),
		value: v,
	}
	h.refs.Store(1)
	h.node.Init(h)

	r.list.Push(&h.node)
	r.logger.HandleAdded(h.id)

	return h
}

// Values значения живых объектов в порядке добавления.
func (r *Registry[T]) Values() []T {
	var res []T
	r.list.Each(func(n *dllist.Node[*Handle[T]]) bool {
		res = append(res, n.Value().value)
		return true
	})

	return res
}

// Len количество живых объектов.
func (r *Registry[T]) Len() int {
	return r.list.Len()
}

// Check проверка целостности списка объектов.
func (r *Registry[T]) Check() error {
	return r.list.Check()
}

// Stats счётчики удалений.
func (r *Registry[T]) Stats() dllist.StatsSnapshot {
	return r.list.Stats()
}
