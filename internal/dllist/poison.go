package dllist

import (
	"unsafe"

	"github.com/sirkon/errors"
)

// poisonDelta смещение выводящее отравленные значения за пределы
// допустимых адресов: неканонический адрес на 64-битных платформах.
//
// WARNING: На 32-битных платформах 0xdead0000 остаётся обычным адресом,
// который может оказаться внутри кучи. Гарантия падения при
// разыменовании там не даётся.
const poisonDelta = uintptr(0xdead) << (unsafe.Sizeof(uintptr(0))*8 - 16)

// Значения, которыми затираются ссылки удалённого узла. Разыменование
// такого указателя гарантированно падает, а не портит соседние узлы.
//
// Значения хранятся как типизированные указатели и поэтому обязаны быть
// выровнены на границу Node: смещения кратны 0x100.
const (
	PoisonNext = poisonDelta + 0x100
	PoisonPrev = poisonDelta + 0x200
)

// poison значение v как указатель на узел. Значение переносится через
// память, а не преобразованием uintptr в unsafe.Pointer.
func poison[T any](v uintptr) *Node[T] {
	return *(**Node[T])(unsafe.Pointer(&v))
}

func isPoison[T any](n *Node[T]) bool {
	v := nodeAddr(n)
	return v == PoisonNext || v == PoisonPrev
}

func errNodeState(msg string, st uint32) error {
	return errors.New(msg).Str("node-state", lifecycleName(st))
}

// checkLink проверка ссылки полученной при обходе. Обход не должен
// пересекаться с удалениями, так что маркер захвата или отравленное
// значение означают ошибку вызывающей стороны.
func checkLink[T any](from, link *Node[T], name string) {
	switch {
	case link == nil:
		panic(
			errors.New("claim marker observed during traversal").
				Str("link", name).
				Str("node-state", lifecycleName(from.state.Load())),
		)
	case isPoison(link):
		panic(
			errors.New("traversal through a removed node").
				Str("link", name).
				Any("value", unsafe.Pointer(link)),
		)
	}
}
