package dllist

// State явное представление состояния узла, закодированного в его ссылках.
type State uint8

const (
	// StateDetached узел ещё не вставлялся в список.
	StateDetached State = iota
	// StateLinked узел в списке, никем не захвачен.
	StateLinked
	// StateClaimedAsSelf удаляющий поток захватил узел: next указывает
	// на предшественника, а не на следующий узел.
	StateClaimedAsSelf
	// StateClaimedAsPredecessor узел захвачен удалением следующего за ним
	// узла: next равен nil до завершения того удаления.
	StateClaimedAsPredecessor
	// StateRemoved узел удалён, ссылки отравлены.
	StateRemoved
	// StateRoot служебный корневой узел списка.
	StateRoot
)

func (s State) String() string {
	switch s {
	case StateDetached:
		return "detached"
	case StateLinked:
		return "linked"
	case StateClaimedAsSelf:
		return "claimed-as-self"
	case StateClaimedAsPredecessor:
		return "claimed-as-predecessor"
	case StateRemoved:
		return "removed"
	case StateRoot:
		return "root"
	default:
		return "unknown"
	}
}
