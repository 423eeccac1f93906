package stress

import (
	"context"
	"math/rand"
	"runtime"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"github.com/sirkon/lfdlist/internal/dllist"
	"github.com/sirkon/lfdlist/internal/logging"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Report итоги нагрузочной проверки.
type Report struct {
	RunID   uuid.UUID
	Rounds  int
	Removed int
	Left    int
	Stats   dllist.StatsSnapshot
}

// Run прогон раундов одновременного удаления различных узлов с
// проверкой результата после каждого раунда. Прерывается на первом
// нарушении или по отмене контекста между раундами.
//
// Паника удаления перехватывается и завершает раунд с ошибкой только
// если она случилась до захвата ссылок, как при нарушении жизненного
// цикла узла. Паника посреди протокола оставляет соседей захваченными,
// и их удаление будет крутиться бесконечно.
func Run(ctx context.Context, cfg Config, logger logging.LoggerStress) (Report, error) {
	return run(ctx, cfg, logger, buildList)
}

// builder построение списка из данного количества узлов для раунда.
type builder func(nodes int) (*dllist.List[int], []*dllist.Node[int])

func buildList(count int) (*dllist.List[int], []*dllist.Node[int]) {
	l := dllist.New[int]()
	nodes := make([]*dllist.Node[int], count)
	for i := range nodes {
		nodes[i] = l.Push(dllist.NewNode(i))
	}

	return l, nodes
}

func run(ctx context.Context, cfg Config, logger logging.LoggerStress, build builder) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, errors.Wrap(err, "validate config")
	}

	rep := Report{
		RunID: uuid.New(),
	}
	rnd := rand.New(rand.NewSource(cfg.Seed))
	for round := 0; round < cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return rep, errors.Wrap(err, "run interrupted").Int("round", round)
		}

		left, stats, err := runRound(ctx, cfg, rnd, build)
		if err != nil {
			logger.StressRoundFailed(rep.RunID, round, err)
			return rep, errors.Wrap(err, "run round").Int("round", round)
		}

		logger.StressRoundPassed(rep.RunID, round, left, stats)
		rep.Rounds++
		rep.Removed += cfg.Remove
		rep.Left = left
		rep.Stats = rep.Stats.Add(stats)
	}

	return rep, nil
}

func runRound(
	ctx context.Context,
	cfg Config,
	rnd *rand.Rand,
	build builder,
) (int, dllist.StatsSnapshot, error) {
	l, nodes := build(cfg.Nodes)

	victims := rnd.Perm(cfg.Nodes)[:cfg.Remove]
	groups := make([][]*dllist.Node[int], cfg.Threads)
	for _, v := range victims {
		g := rnd.Intn(cfg.Threads)
		groups[g] = append(groups[g], nodes[v])
	}

	start := make(chan struct{})
	g, _ := errgroup.WithContext(ctx)
	for _, group := range groups {
		group := group
		yields := rand.New(rand.NewSource(rnd.Int63()))
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.New("removal panicked").Any("panic", r)
				}
			}()

			<-start
			for _, n := range group {
				if yields.Intn(100) < cfg.YieldPercent {
					runtime.Gosched()
				}
				l.Remove(n)
			}

			return nil
		})
	}
	close(start)

	if err := g.Wait(); err != nil {
		return 0, dllist.StatsSnapshot{}, err
	}

	if err := verify(l, nodes, victims); err != nil {
		return 0, dllist.StatsSnapshot{}, err
	}

	return cfg.Nodes - cfg.Remove, l.Stats(), nil
}

// verify проверка, что в списке остались ровно исходные узлы за вычетом
// удалённых, в исходном порядке, а удалённые узлы отравлены.
func verify(l *dllist.List[int], nodes []*dllist.Node[int], victims []int) error {
	if err := l.Check(); err != nil {
		return errors.Wrap(err, "check list structure")
	}

	removed := slices.Clone(victims)
	slices.Sort(removed)

	var expected []int
	for i := range nodes {
		if !slices.Contains(removed, i) {
			expected = append(expected, i)
		}
	}

	actual := l.Values()
	if !slices.Equal(expected, actual) {
		return errors.New("survivors differ from the expected set").
			Any("expected", expected).
			Any("actual", actual)
	}

	for _, v := range removed {
		if !nodes[v].Poisoned() {
			return errors.New("removed node is not poisoned").
				Int("node", v).
				Str("node-state", nodes[v].State().String())
		}
	}

	return nil
}
