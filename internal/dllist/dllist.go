package dllist

import "github.com/sirkon/errors"

// New конструктор пустого двусвязного списка.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.lazyInit()
	return l
}

// List кольцевой двусвязный список с корневым узлом.
//
// Удаление различных узлов (Remove) безопасно вызывать из разных горутин
// одновременно без общей блокировки. Вставка и обход списка такой
// гарантии не дают: они не должны выполняться одновременно с чем-либо
// ещё на этом списке, см. Shared.
//
// Нулевое значение готово к использованию. Список нельзя копировать
// после первого использования.
type List[T any] struct {
	root  Node[T]
	stats Stats
}

// Push добавление узла в конец списка.
func (l *List[T]) Push(n *Node[T]) *Node[T] {
	l.lazyInit()
	return l.insert(n, l.root.prev.Load())
}

// PushFront добавление узла в начало списка.
func (l *List[T]) PushFront(n *Node[T]) *Node[T] {
	l.lazyInit()
	return l.insert(n, &l.root)
}

// InsertAfter вставка узла n сразу после узла mark.
func (l *List[T]) InsertAfter(mark, n *Node[T]) *Node[T] {
	l.lazyInit()
	return l.insert(n, mark)
}

// InsertBefore вставка узла n сразу перед узлом mark.
func (l *List[T]) InsertBefore(mark, n *Node[T]) *Node[T] {
	l.lazyInit()
	prev := mark.prev.Load()
	checkLink(mark, prev, "prev")
	return l.insert(n, prev)
}

// First получение первого элемента списка, nil для пустого.
func (l *List[T]) First() *Node[T] {
	l.lazyInit()
	return l.Next(&l.root)
}

// Last получение последнего элемента списка, nil для пустого.
func (l *List[T]) Last() *Node[T] {
	l.lazyInit()
	return l.Prev(&l.root)
}

// Next узел следующий за данным или nil, если данный узел последний.
func (l *List[T]) Next(n *Node[T]) *Node[T] {
	next := n.next.Load()
	checkLink(n, next, "next")
	if next == &l.root {
		return nil
	}

	return next
}

// Prev узел предшествующий данному или nil, если данный узел первый.
func (l *List[T]) Prev(n *Node[T]) *Node[T] {
	prev := n.prev.Load()
	checkLink(n, prev, "prev")
	if prev == &l.root {
		return nil
	}

	return prev
}

// Each обход узлов списка от первого к последнему пока f возвращает true.
func (l *List[T]) Each(f func(n *Node[T]) bool) {
	for n := l.First(); n != nil; n = l.Next(n) {
		if !f(n) {
			return
		}
	}
}

// Values значения узлов в порядке следования.
func (l *List[T]) Values() []T {
	var res []T
	l.Each(func(n *Node[T]) bool {
		res = append(res, n.value)
		return true
	})

	return res
}

// Len количество узлов в списке.
//
// NOTE: Это O(n) операция.
func (l *List[T]) Len() (count int) {
	l.Each(func(*Node[T]) bool {
		count++
		return true
	})

	return count
}

// Empty проверка списка на пустоту.
func (l *List[T]) Empty() bool {
	return l.First() == nil
}

// Stats счётчики удалений из списка.
func (l *List[T]) Stats() StatsSnapshot {
	return l.stats.snapshot()
}

func (l *List[T]) insert(n, at *Node[T]) *Node[T] {
	// Позиция проверяется до изменения состояния n: после паники n
	// остаётся отвязанным и годится для повторной вставки.
	if st := at.state.Load(); st != stateLinked && st != stateRoot {
		panic(errNodeState("insert next to a node that is not linked", st))
	}
	next := at.next.Load()
	checkLink(at, next, "next")

	if !n.state.CompareAndSwap(stateDetached, stateLinked) {
		panic(
			errors.New("insert node that is not detached").
				Str("node-state", lifecycleName(n.state.Load())),
		)
	}

	n.prev.Store(at)
	n.next.Store(next)
	at.next.Store(n)
	next.prev.Store(n)

	return n
}

func (l *List[T]) lazyInit() {
	if l.root.state.Load() == stateRoot {
		return
	}

	l.root.state.Store(stateRoot)
	l.root.next.Store(&l.root)
	l.root.prev.Store(&l.root)
}
