package dllist

import (
	"testing"
	"unsafe"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
	"github.com/sirkon/lfdlist/internal/tlog"
)

func newIntList(count int) (*List[int], []*Node[int]) {
	l := New[int]()
	nodes := make([]*Node[int], count)
	for i := range nodes {
		nodes[i] = l.Push(NewNode(i))
	}

	return l, nodes
}

func TestListInsertion(t *testing.T) {
	l := New[int]()
	two := l.Push(NewNode(2))
	l.PushFront(NewNode(0))
	l.InsertBefore(two, NewNode(1))
	l.InsertAfter(two, NewNode(4))
	l.InsertBefore(l.Last(), NewNode(3))

	deepequal.SideBySide(t, "values", []int{0, 1, 2, 3, 4}, l.Values())
	if l.Len() != 5 {
		t.Errorf("unexpected length %d, want 5", l.Len())
	}
	if err := l.Check(); err != nil {
		tlog.Error(t, errors.Wrap(err, "check list"))
	}

	var backward []int
	for n := l.Last(); n != nil; n = l.Prev(n) {
		backward = append(backward, n.Value())
	}
	deepequal.SideBySide(t, "backward", []int{4, 3, 2, 1, 0}, backward)
}

func TestZeroList(t *testing.T) {
	var l List[string]
	if !l.Empty() {
		t.Error("zero list must be empty")
	}

	n := l.Push(NewNode("a"))
	if l.First() != n || l.Last() != n {
		t.Error("single node must be both first and last")
	}

	l.Remove(n)
	if !l.Empty() {
		t.Error("list must be empty after removal of the only node")
	}
	if tlog.Check(t, l.Check()) {
		return
	}
}

func TestRemoveSequentialEquivalence(t *testing.T) {
	const count = 7

	for victim := 0; victim < count; victim++ {
		l, nodes := newIntList(count)
		l.Remove(nodes[victim])

		var expected []int
		for i := 0; i < count; i++ {
			if i != victim {
				expected = append(expected, i)
			}
		}

		deepequal.SideBySide(t, "values", expected, l.Values())
		if err := l.Check(); err != nil {
			tlog.Error(t, errors.Wrap(err, "check list").Int("victim", victim))
		}
		if !nodes[victim].Poisoned() {
			t.Errorf("removed node %d is not poisoned", victim)
		}
	}
}

func TestRemoveEverySecond(t *testing.T) {
	l, nodes := newIntList(10)
	for i := 0; i < len(nodes); i += 2 {
		l.Remove(nodes[i])
	}

	deepequal.SideBySide(t, "values", []int{1, 3, 5, 7, 9}, l.Values())
	tlog.Check(t, l.Check())

	stats := l.Stats()
	if stats.Removals != 5 {
		t.Errorf("unexpected removals counter %d, want 5", stats.Removals)
	}
	if stats.Contended() != 0 {
		t.Errorf("sequential removal must not contend, got %+v", stats)
	}
}

func TestRemoveSoleNode(t *testing.T) {
	l, nodes := newIntList(1)
	l.Remove(nodes[0])

	if l.root.next.Load() != &l.root || l.root.prev.Load() != &l.root {
		t.Error("root must be linked to itself in an empty list")
	}
	if !l.Empty() || l.Len() != 0 {
		t.Error("list must be empty")
	}
	tlog.Check(t, l.Check())
}

func TestRemovePoisoning(t *testing.T) {
	l, nodes := newIntList(3)
	l.Remove(nodes[1])

	if v := nodeAddr(nodes[1].next.Load()); v != PoisonNext {
		t.Errorf("unexpected next link %#x, want %#x", v, PoisonNext)
	}
	if v := nodeAddr(nodes[1].prev.Load()); v != PoisonPrev {
		t.Errorf("unexpected prev link %#x, want %#x", v, PoisonPrev)
	}
	if s := nodes[1].State(); s != StateRemoved {
		t.Errorf("unexpected state %s of a removed node", s)
	}

	t.Run("next", func(t *testing.T) {
		expectPanic(t, func() { l.Next(nodes[1]) })
	})
	t.Run("prev", func(t *testing.T) {
		expectPanic(t, func() { l.Prev(nodes[1]) })
	})
}

func TestPreconditionViolations(t *testing.T) {
	t.Run("double-removal", func(t *testing.T) {
		l, nodes := newIntList(3)
		l.Remove(nodes[1])
		expectPanic(t, func() { l.Remove(nodes[1]) })
		tlog.Check(t, l.Check())
	})

	t.Run("remove-detached", func(t *testing.T) {
		l := New[int]()
		expectPanic(t, func() { l.Remove(NewNode(1)) })
	})

	t.Run("remove-root", func(t *testing.T) {
		l, _ := newIntList(2)
		expectPanic(t, func() { l.Remove(&l.root) })
	})

	t.Run("reinsert-removed", func(t *testing.T) {
		l, nodes := newIntList(2)
		l.Remove(nodes[0])
		expectPanic(t, func() { l.Push(nodes[0]) })
	})

	t.Run("insert-twice", func(t *testing.T) {
		l, nodes := newIntList(2)
		expectPanic(t, func() { l.Push(nodes[0]) })
	})

	t.Run("init-linked", func(t *testing.T) {
		_, nodes := newIntList(1)
		expectPanic(t, func() { nodes[0].Init(5) })
	})

	t.Run("insert-after-removed", func(t *testing.T) {
		l, nodes := newIntList(3)
		l.Remove(nodes[1])

		n := NewNode(10)
		expectPanic(t, func() { l.InsertAfter(nodes[1], n) })
		if s := n.State(); s != StateDetached {
			t.Errorf("node must stay detached after a failed insert, got %s", s)
		}

		l.Push(n)
		deepequal.SideBySide(t, "values", []int{0, 2, 10}, l.Values())
		tlog.Check(t, l.Check())
	})

	t.Run("insert-after-detached", func(t *testing.T) {
		l, _ := newIntList(1)
		n := NewNode(10)
		expectPanic(t, func() { l.InsertAfter(NewNode(5), n) })
		if s := n.State(); s != StateDetached {
			t.Errorf("node must stay detached after a failed insert, got %s", s)
		}
	})
}

func TestPoisonAlignment(t *testing.T) {
	check := func(name string, align uintptr) {
		t.Helper()
		for _, v := range []uintptr{PoisonNext, PoisonPrev} {
			if v%align != 0 {
				t.Errorf("%s: poison value %#x is not aligned to %d", name, v, align)
			}
		}
	}

	check("int", unsafe.Alignof(Node[int]{}))
	check("byte", unsafe.Alignof(Node[byte]{}))
	check("string", unsafe.Alignof(Node[string]{}))
	check("complex128", unsafe.Alignof(Node[complex128]{}))
	check("array", unsafe.Alignof(Node[[3]uint64]{}))
}

func TestRemoveStatsGoToReceiver(t *testing.T) {
	// Принадлежность не проверяется: узел отвязывается по ссылкам соседей,
	// счётчики достаются получателю.
	l, nodes := newIntList(3)
	other := New[int]()
	other.Remove(nodes[1])

	deepequal.SideBySide(t, "values", []int{0, 2}, l.Values())
	tlog.Check(t, l.Check())
	tlog.Check(t, other.Check())

	if v := l.Stats().Removals; v != 0 {
		t.Errorf("unexpected removals %d on the owning list", v)
	}
	if v := other.Stats().Removals; v != 1 {
		t.Errorf("unexpected removals %d on the receiver", v)
	}
}

func TestNodeState(t *testing.T) {
	type owner struct {
		Node[*owner]
		name string
	}

	o := &owner{name: "embedded"}
	o.Init(o)
	if s := o.State(); s != StateDetached {
		t.Errorf("unexpected state %s, want %s", s, StateDetached)
	}

	l := New[*owner]()
	l.Push(&o.Node)
	if s := o.State(); s != StateLinked {
		t.Errorf("unexpected state %s, want %s", s, StateLinked)
	}
	if l.First().Value().name != "embedded" {
		t.Error("owner is not reachable through the node value")
	}
	if s := l.root.State(); s != StateRoot {
		t.Errorf("unexpected root state %s", s)
	}

	// Имитация захвата узла удалением следующего за ним.
	next := o.next.Load()
	o.next.Store(nil)
	if s := o.State(); s != StateClaimedAsPredecessor {
		t.Errorf("unexpected state %s, want %s", s, StateClaimedAsPredecessor)
	}
	if err := l.Check(); err == nil {
		t.Error("check must detect a claim marker")
	} else {
		tlog.Log(t, errors.Wrap(err, "expected check error"))
	}
	o.next.Store(next)

	l.Remove(&o.Node)
	if s := o.State(); s != StateRemoved {
		t.Errorf("unexpected state %s, want %s", s, StateRemoved)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(nodes []*Node[int])
	}{
		{
			name: "broken-back-link",
			corrupt: func(nodes []*Node[int]) {
				nodes[2].prev.Store(nodes[0])
			},
		},
		{
			name: "forward-cycle",
			corrupt: func(nodes []*Node[int]) {
				nodes[4].next.Store(nodes[1])
			},
		},
		{
			name: "poisoned-link",
			corrupt: func(nodes []*Node[int]) {
				nodes[1].next.Store(poison[int](PoisonNext))
			},
		},
		{
			name: "stale-state",
			corrupt: func(nodes []*Node[int]) {
				nodes[3].state.Store(stateRemoving)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, nodes := newIntList(5)
			tt.corrupt(nodes)

			err := l.Check()
			if err == nil {
				t.Error("corruption was not detected")
				return
			}
			tlog.Log(t, errors.Wrap(err, "expected check error"))
		})
	}
}

func expectPanic(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		t.Helper()
		err := tlog.Recovered(recover())
		if err == nil {
			t.Error("panic was expected")
			return
		}
		tlog.Log(t, errors.Wrap(err, "expected panic"))
	}()

	f()
}
