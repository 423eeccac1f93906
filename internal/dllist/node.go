package dllist

import (
	"sync/atomic"
	"unsafe"
)

// Node узел двусвязного списка. Может встраиваться в объект-владелец
// либо ссылаться на него через значение.
//
// Памятью узла пакет не управляет: жизненный цикл объекта-владельца
// определяется снаружи, например подсчётом ссылок.
type Node[T any] struct {
	next atomic.Pointer[Node[T]]
	prev atomic.Pointer[Node[T]]

	state atomic.Uint32
	value T
}

// NewNode конструктор отвязанного узла с данным значением.
func NewNode[T any](v T) *Node[T] {
	n := &Node[T]{}
	n.value = v
	return n
}

// Init задание значения для встроенного узла. Допустимо только
// до вставки узла в список.
func (n *Node[T]) Init(v T) *Node[T] {
	if st := n.state.Load(); st != stateDetached {
		panic(errNodeState("init node that is not detached", st))
	}

	n.value = v
	return n
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// State состояние узла с точки зрения протокола удаления.
// WARNING: Значение носит диагностический характер и может устареть
// сразу после возврата, если узел в этот момент удаляется.
func (n *Node[T]) State() State {
	switch n.state.Load() {
	case stateDetached:
		return StateDetached
	case stateRemoved:
		return StateRemoved
	case stateRoot:
		return StateRoot
	}

	if n.next.Load() == nil {
		return StateClaimedAsPredecessor
	}

	if n.state.Load() == stateClaimed {
		return StateClaimedAsSelf
	}

	return StateLinked
}

// Poisoned проверка, что ссылки узла отравлены после удаления.
func (n *Node[T]) Poisoned() bool {
	return isPoison(n.next.Load()) && isPoison(n.prev.Load())
}

// Внутренний жизненный цикл узла. Переходы строго вперёд:
// detached → linked → removing → claimed → removed.
const (
	stateDetached uint32 = iota
	stateLinked
	stateRemoving
	stateClaimed
	stateRemoved
	stateRoot
)

func lifecycleName(st uint32) string {
	switch st {
	case stateDetached:
		return "detached"
	case stateLinked:
		return "linked"
	case stateRemoving:
		return "removing"
	case stateClaimed:
		return "claimed"
	case stateRemoved:
		return "removed"
	case stateRoot:
		return "root"
	default:
		return "unknown"
	}
}

func nodeAddr[T any](n *Node[T]) uintptr {
	return uintptr(unsafe.Pointer(n))
}
