package logging

import (
	"github.com/google/uuid"
	"github.com/sirkon/lfdlist/internal/dllist"
)

//go:generate mockgen -destination ../mocks/logger_registry.go -package mocks -mock_names LoggerRegistry=LoggerRegistryMock . LoggerRegistry
//go:generate mockgen -destination ../mocks/logger_stress.go -package mocks -mock_names LoggerStress=LoggerStressMock . LoggerStress

// LoggerRegistry логирование событий реестра объектов.
// Реализация логирования должна делаться пользователями библиотеки.
type LoggerRegistry interface {
	// HandleAdded в реестр добавлен новый объект.
	HandleAdded(id uuid.UUID)
	// HandleRemoved последняя ссылка на объект отпущена, объект удалён из реестра.
	HandleRemoved(id uuid.UUID)
}

// LoggerStress логирование хода нагрузочной проверки.
type LoggerStress interface {
	// StressRoundPassed раунд нагрузочной проверки завершился без нарушений.
	StressRoundPassed(run uuid.UUID, round int, left int, stats dllist.StatsSnapshot)
	// StressRoundFailed раунд нагрузочной проверки обнаружил нарушение.
	StressRoundFailed(run uuid.UUID, round int, err error)
}
