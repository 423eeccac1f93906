package main

import (
	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"github.com/sirkon/lfdlist/internal/dllist"
	"github.com/sirkon/lfdlist/internal/logging"
	"github.com/sirkon/message"
)

var _ logging.LoggerStress = &logger{}

type logger struct {
	verbose bool
}

func (l *logger) StressRoundPassed(run uuid.UUID, round int, left int, stats dllist.StatsSnapshot) {
	if !l.verbose {
		return
	}

	message.Infof("run %s round %d: %d nodes left, %d contended steps", run, round, left, stats.Contended())
}

func (l *logger) StressRoundFailed(run uuid.UUID, round int, err error) {
	message.Error(errors.Wrap(err, "round failed").Stg("run-id", run).Int("round", round))
}
