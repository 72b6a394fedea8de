package ts

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"gomets/internal/flowshop"
	"gomets/internal/opt"
	"gomets/mets"
)

// Solver - структура реализации табу-поиска, построенная поверх субстрата mets.
type Solver struct {
	Cfg Config
	Rng *rand.Rand

	// Listeners получают уведомления после каждой итерации (необязательно).
	Listeners []mets.SearchListener
}

// New возвращает новый TS-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
// Используется в фабриках.
func New(cfg Config, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

// newNeighborhood выбирает move manager в соответствии с конфигурацией.
func newNeighborhood(kind Neighborhood, rng *rand.Rand, m int) mets.MoveManager {
	switch kind {
	case NeighborhoodSwap:
		return mets.NewSwapNeighborhood(rng, m)
	case NeighborhoodInsert:
		return mets.NewInvertNeighborhood(rng, m)
	default:
		return mets.NewInvertNeighborhood(rng, m)
	}
}

// Solve — основной цикл табу-поиска поверх mets.Search / mets.TabuList / mets.ManaMove.
func (s *Solver) Solve(ctx context.Context, inst *flowshop.Instance) (opt.Result, error) {
	start := time.Now()

	if err := inst.Validate(); err != nil {
		return opt.Result{}, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if s.Rng == nil {
		return opt.Result{}, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}

	eval, err := flowshop.NewEvaluator(inst)
	if err != nil {
		return opt.Result{}, err
	}

	n := inst.Jobs

	maxIter := s.Cfg.Iterations
	if maxIter <= 0 {
		maxIter = s.Cfg.IterationsPerJob * n
	}

	// Рабочее решение - мутируется на каждой итерации.
	working := flowshop.NewSolution(eval)
	mets.RandomShuffle(working.Permutation, s.Rng)

	// Лучшее когда-либо решение, отслеживается рекордером.
	best := flowshop.NewSolution(eval)
	recorder := mets.NewBestEverRecorder(best)
	evals := 1
	recorder.Accept(working) // первый accept всегда снимает снимок

	manager := newNeighborhood(s.Cfg.Neighborhood, s.Rng, max(1, s.Cfg.NeighborsPerIter))

	search := mets.NewSearch(working, recorder, manager)
	for _, l := range s.Listeners {
		search.Attach(l)
	}

	tabu := mets.NewTabuList(max(32, (s.Cfg.TabuTenure+s.Cfg.TabuTenureRand)*4))

	for iter := 0; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return opt.Result{
				Permutation: append([]int(nil), best.Pi...),
				Makespan:    int(best.Cost()),
				Evaluations: evals,
				Iterations:  iter,
				Duration:    time.Since(start),
				Meta:        map[string]any{"stopped": "context"},
			}, err
		}

		if err := manager.Refresh(working); err != nil {
			return opt.Result{}, err
		}
		if manager.Size() == 0 {
			return opt.Result{}, fmt.Errorf("табу-поиск: %w", mets.ErrNoMoves)
		}

		var (
			bestMove     mets.ManaMove
			bestMoveCost = maxInt
		)
		var (
			fallbackMove mets.ManaMove
			fallbackCost = maxInt
		)

		for _, mv := range manager.Moves() {
			mm := mv.(mets.ManaMove)
			cost, err := mm.Evaluate(working)
			evals++
			if err != nil {
				return opt.Result{}, err
			}
			icost := int(cost)

			if icost < fallbackCost {
				fallbackCost = icost
				fallbackMove = mm
			}

			isTabu := tabu.IsTabu(mm.Hash(), iter)
			aspiration := icost < int(best.Cost())
			if isTabu && !aspiration {
				continue
			}
			if icost < bestMoveCost {
				bestMoveCost = icost
				bestMove = mm
			}
		}

		chosen := bestMove
		if chosen == nil {
			chosen = fallbackMove
		}
		if chosen == nil {
			return opt.Result{}, fmt.Errorf("табу-поиск: %w", mets.ErrNoMoves)
		}

		if err := chosen.Apply(working); err != nil {
			return opt.Result{}, err
		}

		tenure := s.Cfg.TabuTenure
		if s.Cfg.TabuTenureRand > 0 {
			tenure += s.Rng.Intn(s.Cfg.TabuTenureRand + 1)
		}
		reverse := chosen.OppositeOf()
		tabu.Add(reverse.Hash(), iter+tenure)

		search.CurrentMove = chosen
		if recorder.Accept(working) {
			search.Step = mets.StepImprovementMade
		} else {
			search.Step = mets.StepMoveMade
		}
		search.Notify(search)
	}

	return opt.Result{
		Permutation: append([]int(nil), best.Pi...),
		Makespan:    int(best.Cost()),
		Evaluations: evals,
		Iterations:  maxIter,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"tabu_tenure":        s.Cfg.TabuTenure,
			"tabu_tenure_rand":   s.Cfg.TabuTenureRand,
			"neighbors_per_iter": s.Cfg.NeighborsPerIter,
			"neighborhood":       string(s.Cfg.Neighborhood),
		},
	}, nil
}

// maxInt используется как бесконечность для стоимостей.
const maxInt = int(^uint(0) >> 1)

// max возвращает максимум из двух целых чисел.
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
