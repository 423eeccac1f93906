package dllist

import (
	"runtime"

	"github.com/sirkon/errors"
)

// Remove удаление узла из списка.
//
// Различные узлы одного списка можно удалять одновременно из разных
// горутин без общей блокировки, в том числе соседние. Роль блокировок
// играют сами ссылки узлов:
//
//   - удаляемый узел E захватывается записью в E.next его предшественника D;
//   - предшественник D захватывается записью nil в D.next;
//   - запись D.next = F одновременно завершает удаление и снимает захват D.
//
// Вызывающая сторона гарантирует, что узел находится именно в этом списке
// и что никто больше не удаляет этот же узел. Удаление уже удалённого
// узла, отвязанного узла или корня приводит к панике. Принадлежность узла
// списку не проверяется: протокол работает только со ссылками соседей,
// а получатель l нужен лишь для счётчиков Stats.
//
// После возврата ссылки узла отравлены значениями PoisonNext и PoisonPrev.
// Повторно в список узел не вставляется.
func (l *List[T]) Remove(e *Node[T]) {
	if !e.state.CompareAndSwap(stateLinked, stateRemoving) {
		panic(
			errors.New("remove node that is not linked").
				Str("node-state", lifecycleName(e.state.Load())),
		)
	}

	var st removeStats
	f, d := claimSelf(e, &st)
	d = claimPredecessor(e, d, &st)
	commit(e, f, d, &st)

	l.stats.add(&st)
}

// claimSelf захват самого узла: e.next начинает ссылаться на
// предшественника. Это закрывает удаление следующего узла f (его CAS
// на e.next ждёт f) и сообщает удаляющему d, что на него есть ссылка.
func claimSelf[T any](e *Node[T], st *removeStats) (f, d *Node[T]) {
	for {
		f = e.next.Load()
		if f == nil {
			// e сейчас захвачен как предшественник узла удаляемого следом.
			st.selfClaimRetries++
			runtime.Gosched()
			continue
		}

		d = e.prev.Load()
		if e.next.CompareAndSwap(f, d) {
			break
		}
		st.selfClaimRetries++
	}
	e.state.Store(stateClaimed)

	return f, d
}

// claimPredecessor захват предшественника. Значение d уже опубликовано
// в e.next. Неудача CAS значит, что d сам удаляется: ждём, пока его
// удаление не перепишет e.prev, и пробуем снова.
func claimPredecessor[T any](e, d *Node[T], st *removeStats) *Node[T] {
	// Предшественник мог быть удалён и заменён своим предшественником.
	d = settle(e, d, st)

	for !d.next.CompareAndSwap(e, nil) {
		st.predClaimRetries++
		runtime.Gosched()

		if p := e.prev.Load(); p != d {
			e.next.Store(p)
			d = settle(e, p, st)
		}
	}

	return d
}

// commit сшивка d и f при захваченных e и d.
func commit[T any](e, f, d *Node[T], st *removeStats) {
	// f не может быть удалён независимо: для этого нужен захват e.
	f.prev.Store(d)

	// Если f удаляется и всё ещё видит e своим предшественником, ждём
	// пока он перечитает f.prev. После этого e ему не нужен.
	for f.next.Load() == e {
		st.successorWaits++
		runtime.Gosched()
	}

	d.next.Store(f)

	e.next.Store(poison[T](PoisonNext))
	e.prev.Store(poison[T](PoisonPrev))
	e.state.Store(stateRemoved)
}

// settle публикует предшественника в e.next до тех пор, пока два
// последовательных чтения e.prev не совпадут. Значение d уже
// опубликовано в e.next к моменту вызова.
func settle[T any](e, d *Node[T], st *removeStats) *Node[T] {
	for {
		p := e.prev.Load()
		if p == d {
			return d
		}

		st.restabilizations++
		e.next.Store(p)
		d = p
	}
}
