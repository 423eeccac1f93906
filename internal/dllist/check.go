package dllist

import "github.com/sirkon/errors"

// Check проверка структурной целостности списка: для каждого узла
// n.prev.next == n и n.next.prev == n, обход вперёд и назад даёт одни
// и те же узлы в обратном порядке, маркеров захвата и отравленных
// ссылок нет.
//
// Не должен выполняться одновременно с удалениями.
func (l *List[T]) Check() error {
	l.lazyInit()

	var forward []*Node[T]
	prev := &l.root
	for {
		n := prev.next.Load()
		pos := len(forward)
		if err := checkCheckedLink(n, "next", pos); err != nil {
			return err
		}

		if back := n.prev.Load(); back != prev {
			return errors.New("next node does not link back").
				Int("position", pos).
				Bool("back-link-poisoned", isPoison(back))
		}

		if n == &l.root {
			break
		}

		if st := n.state.Load(); st != stateLinked {
			return errNodeStateAt("unexpected state of a linked node", st, pos)
		}

		forward = append(forward, n)
		prev = n
	}

	next := &l.root
	pos := len(forward)
	for {
		n := next.prev.Load()
		if err := checkCheckedLink(n, "prev", pos); err != nil {
			return err
		}

		if fwd := n.next.Load(); fwd != next {
			return errors.New("previous node does not link forward").
				Int("position", pos).
				Bool("forward-link-poisoned", isPoison(fwd))
		}

		if n == &l.root {
			break
		}

		pos--
		if pos < 0 || forward[pos] != n {
			return errors.New("backward traversal disagrees with forward traversal").
				Int("position", pos).
				Int("forward-length", len(forward))
		}

		next = n
	}

	if pos != 0 {
		return errors.New("backward traversal is shorter than forward traversal").
			Int("missing", pos).
			Int("forward-length", len(forward))
	}

	return nil
}

func checkCheckedLink[T any](n *Node[T], name string, pos int) error {
	switch {
	case n == nil:
		return errors.New("claim marker left in a link").
			Str("link", name).
			Int("position", pos)
	case isPoison(n):
		return errors.New("poisoned link").
			Str("link", name).
			Int("position", pos)
	}

	return nil
}

func errNodeStateAt(msg string, st uint32, pos int) error {
	return errors.New(msg).
		Str("node-state", lifecycleName(st)).
		Int("position", pos)
}
