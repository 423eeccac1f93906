package dllist

import "sync"

// Shared список с внешней синхронизацией для операций, которые сами по
// себе с удалением не совместимы.
//
// Вставка, обход и проверка берут блокировку на запись. Удаление берёт
// блокировку на чтение: сколько угодно удалений различных узлов идут
// параллельно друг с другом, но не со вставкой или обходом.
type Shared[T any] struct {
	lock sync.RWMutex
	list List[T]
}

// NewShared конструктор пустого разделяемого списка.
func NewShared[T any]() *Shared[T] {
	s := &Shared[T]{}
	s.list.lazyInit()
	return s
}

// Push добавление узла в конец списка.
func (s *Shared[T]) Push(n *Node[T]) *Node[T] {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.Push(n)
}

// PushFront добавление узла в начало списка.
func (s *Shared[T]) PushFront(n *Node[T]) *Node[T] {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.PushFront(n)
}

// InsertAfter вставка узла n после узла mark.
func (s *Shared[T]) InsertAfter(mark, n *Node[T]) *Node[T] {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.InsertAfter(mark, n)
}

// Remove удаление узла. См. List.Remove про условия вызова.
func (s *Shared[T]) Remove(n *Node[T]) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	s.list.Remove(n)
}

// Each обход узлов под блокировкой на запись. Функция f не должна
// обращаться к этому же списку.
func (s *Shared[T]) Each(f func(n *Node[T]) bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.list.Each(f)
}

// Values значения узлов в порядке следования.
func (s *Shared[T]) Values() []T {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.Values()
}

// Len количество узлов.
func (s *Shared[T]) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.Len()
}

// Check проверка целостности списка.
func (s *Shared[T]) Check() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.Check()
}

// Stats счётчики удалений.
func (s *Shared[T]) Stats() StatsSnapshot {
	return s.list.Stats()
}
