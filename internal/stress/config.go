package stress

import "github.com/sirkon/errors"

// Config параметры нагрузочной проверки удаления.
type Config struct {
	// Nodes количество узлов в списке на каждом раунде.
	Nodes int
	// Threads количество горутин, между которыми делятся удаления.
	Threads int
	// Remove сколько различных узлов удаляется за раунд.
	Remove int
	// Rounds количество раундов.
	Rounds int
	// YieldPercent вероятность в процентах отдать процессор перед
	// очередным удалением.
	YieldPercent int
	// Seed начальное значение генератора случайных чисел.
	Seed int64
}

// DefaultConfig сценарий «8 горутин удаляют 8 из 10 узлов».
func DefaultConfig() Config {
	return Config{
		Nodes:        10,
		Threads:      8,
		Remove:       8,
		Rounds:       1000,
		YieldPercent: 50,
		Seed:         1,
	}
}

// Validate проверка корректности параметров.
func (c Config) Validate() error {
	switch {
	case c.Nodes < 1:
		return errors.New("nodes count must be positive").Int("nodes", c.Nodes)
	case c.Threads < 1:
		return errors.New("threads count must be positive").Int("threads", c.Threads)
	case c.Remove < 0 || c.Remove > c.Nodes:
		return errors.New("removal count must be within the list size").
			Int("remove", c.Remove).
			Int("nodes", c.Nodes)
	case c.Rounds < 1:
		return errors.New("rounds count must be positive").Int("rounds", c.Rounds)
	case c.YieldPercent < 0 || c.YieldPercent > 100:
		return errors.New("yield probability must be a percentage").Int("yield-percent", c.YieldPercent)
	}

	return nil
}
