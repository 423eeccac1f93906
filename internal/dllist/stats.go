package dllist

import "sync/atomic"

// Stats счётчики конкуренции при удалении узлов.
type Stats struct {
	removals         atomic.Uint64
	selfClaimRetries atomic.Uint64
	predClaimRetries atomic.Uint64
	restabilizations atomic.Uint64
	successorWaits   atomic.Uint64
}

// StatsSnapshot значения счётчиков на момент снятия.
type StatsSnapshot struct {
	Removals         uint64
	SelfClaimRetries uint64
	PredClaimRetries uint64
	Restabilizations uint64
	SuccessorWaits   uint64
}

// Contended сумма всех повторов и ожиданий.
func (s StatsSnapshot) Contended() uint64 {
	return s.SelfClaimRetries + s.PredClaimRetries + s.Restabilizations + s.SuccessorWaits
}

// Add сложение снимков.
func (s StatsSnapshot) Add(o StatsSnapshot) StatsSnapshot {
	return StatsSnapshot{
		Removals:         s.Removals + o.Removals,
		SelfClaimRetries: s.SelfClaimRetries + o.SelfClaimRetries,
		PredClaimRetries: s.PredClaimRetries + o.PredClaimRetries,
		Restabilizations: s.Restabilizations + o.Restabilizations,
		SuccessorWaits:   s.SuccessorWaits + o.SuccessorWaits,
	}
}

// removeStats локальные для одного удаления счётчики, чтобы не трогать
// общие атомарные значения внутри циклов.
type removeStats struct {
	selfClaimRetries uint64
	predClaimRetries uint64
	restabilizations uint64
	successorWaits   uint64
}

func (s *Stats) add(st *removeStats) {
	s.removals.Add(1)
	if st.selfClaimRetries > 0 {
		s.selfClaimRetries.Add(st.selfClaimRetries)
	}
	if st.predClaimRetries > 0 {
		s.predClaimRetries.Add(st.predClaimRetries)
	}
	if st.restabilizations > 0 {
		s.restabilizations.Add(st.restabilizations)
	}
	if st.successorWaits > 0 {
		s.successorWaits.Add(st.successorWaits)
	}
}

func (s *Stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Removals:         s.removals.Load(),
		SelfClaimRetries: s.selfClaimRetries.Load(),
		PredClaimRetries: s.predClaimRetries.Load(),
		Restabilizations: s.restabilizations.Load(),
		SuccessorWaits:   s.successorWaits.Load(),
	}
}
