package sa

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"gomets/internal/flowshop"
	"gomets/internal/opt"
	"gomets/mets"
)

// Solver - структура реализации алгоритма имитации отжига, построенная поверх
// субстрата mets: working-решение - это flowshop.Solution, кандидатные ходы
// поставляет mets.MoveManager, а лучшее когда-либо решение отслеживает
// mets.BestEverRecorder. Критерий Метрополиса и охлаждение остаются
// собственной политикой принятия этого солвера - mets.Search не навязывает
// стратегию принятия.
type Solver struct {
	Cfg Config
	Rng *rand.Rand

	Listeners []mets.SearchListener
}

// New возвращает новый SA-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
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

func newNeighborhood(kind Neighborhood, rng *rand.Rand) mets.MoveManager {
	switch kind {
	case NeighborhoodInsert:
		return mets.NewInvertNeighborhood(rng, 1)
	case NeighborhoodSwap:
		return mets.NewSwapNeighborhood(rng, 1)
	default:
		return mets.NewSwapNeighborhood(rng, 1)
	}
}

// Solve — реализация эвристики имитации отжига поверх mets.Search.
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

	working := flowshop.NewSolution(eval)
	mets.RandomShuffle(working.Permutation, s.Rng)

	best := flowshop.NewSolution(eval)
	recorder := mets.NewBestEverRecorder(best)
	evals := 1
	recorder.Accept(working)

	manager := newNeighborhood(s.Cfg.Neighborhood, s.Rng)

	search := mets.NewSearch(working, recorder, manager)
	for _, l := range s.Listeners {
		search.Attach(l)
	}

	T := s.Cfg.InitialTemp
	iter := 0
	for ; iter < maxIter && T > s.Cfg.FinalTemp; iter++ {
		if err := ctx.Err(); err != nil {
			return opt.Result{
				Permutation: append([]int(nil), best.Pi...),
				Makespan:    int(best.Cost()),
				Evaluations: evals,
				Iterations:  iter,
				Duration:    time.Since(start),
				Meta: map[string]any{
					"stopped": "context",
					"T":       T,
				},
			}, err
		}

		if err := manager.Refresh(working); err != nil {
			return opt.Result{}, err
		}
		if manager.Size() == 0 {
			return opt.Result{}, fmt.Errorf("имитация отжига: %w", mets.ErrNoMoves)
		}

		move := manager.Moves()[0]
		candCost, err := move.Evaluate(working)
		if err != nil {
			return opt.Result{}, err
		}
		evals++

		currCost := working.Cost()
		delta := float64(candCost - currCost)

		accept := false
		if delta <= 0 {
			accept = true
		} else {
			p := math.Exp(-delta / T)
			if s.Rng.Float64() < p {
				accept = true
			}
		}

		if accept {
			if err := move.Apply(working); err != nil {
				return opt.Result{}, err
			}
			search.CurrentMove = move
			if recorder.Accept(working) {
				search.Step = mets.StepImprovementMade
			} else {
				search.Step = mets.StepMoveMade
			}
			search.Notify(search)
		}

		T *= s.Cfg.Alpha
	}

	return opt.Result{
		Permutation: append([]int(nil), best.Pi...),
		Makespan:    int(best.Cost()),
		Evaluations: evals,
		Iterations:  iter,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"initial_temp": s.Cfg.InitialTemp,
			"final_temp":   s.Cfg.FinalTemp,
			"alpha":        s.Cfg.Alpha,
			"neighborhood": string(s.Cfg.Neighborhood),
		},
	}, nil
}
