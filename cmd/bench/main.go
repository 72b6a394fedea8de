package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gomets/internal/aco"
	"gomets/internal/bench"
	"gomets/internal/flowshop"
	"gomets/internal/ga"
	"gomets/internal/opt"
	"gomets/internal/pso"
	"gomets/internal/sa"
	"gomets/internal/ts"
)

type gaAdapter struct{ s *ga.Solver }

func (a gaAdapter) Solve(ctx context.Context, inst *flowshop.Instance) (opt.Result, error) {
	return a.s.Solve(ctx, inst)
}

// Фабрики

func newGAFactory(cfg ga.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, _ := ga.New(cfg, rand.New(rand.NewSource(seed)))
		return gaAdapter{s: solver}
	}
}

func newSAFactory(cfg sa.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, _ := sa.New(cfg, rand.New(rand.NewSource(seed)))
		return solver
	}
}

func newTSFactory(cfg ts.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, _ := ts.New(cfg, rand.New(rand.NewSource(seed)))
		return solver
	}
}

func newACOFactory(cfg aco.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, _ := aco.New(cfg, rand.New(rand.NewSource(seed)))
		return solver
	}
}

func newPSOFactory(cfg pso.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, _ := pso.New(cfg, rand.New(rand.NewSource(seed)))
		return solver
	}
}

// flags holds every CLI flag, mirrored 1:1 onto cobra.Command's flag set so
// names and defaults stay exactly what the teacher's flag.* wiring exposed.
type flags struct {
	out          string
	pairs        string
	algos        string
	runs         int
	baseSeed     int64
	instanceSeed int64
	perRunTO     time.Duration

	gaPop   int
	gaGen   int
	gaElite int
	gaTour  int
	gaCx    float64
	gaMut   float64

	saIterPerJob int
	saIter       int
	saT0         float64
	saTmin       float64
	saAlpha      float64
	saNeigh      string

	tsIterPerJob int
	tsIter       int
	tsTenure     int
	tsTenureRand int
	tsNeighbors  int
	tsNeigh      string

	acoIterPerJob int
	acoIter       int
	acoAnts       int
	acoA          float64
	acoB          float64
	acoRho        float64
	acoQ          float64
	acoTau0       float64
	acoCandK      int

	psoIterPerJob int
	psoIter       int
	psoParticles  int
	psoW          float64
	psoC1         float64
	psoC2         float64
	psoVMax       float64
	psoPosMin     float64
	psoPosMax     float64
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "запускает сравнительный бенчмарк эвристик для flow-shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.out, "out", "artifacts/results.csv", "путь к выходному CSV-файлу")
	fs.StringVar(&f.pairs, "pairs", "20x5,50x10,100x20", "конфигурации: количество работ Х количество станков (через запятую)")
	fs.StringVar(&f.algos, "algos", "GA,SA,TS,ACO,PSO", "список алгоритмов: GA, SA, TS, ACO, PSO (через запятую)")
	fs.IntVar(&f.runs, "runs", 30, "количество запусков каждого алгоритма (с разными сидами)")
	fs.Int64Var(&f.baseSeed, "seed", 1000, "базовый сид для запусков алгоритмов")
	fs.Int64Var(&f.instanceSeed, "instance_seed", 777, "базовый сид для генерации экземпляров задачи (фиксирован для конфигурации)")
	fs.DurationVar(&f.perRunTO, "per_run_timeout", 0, "таймаут одного запуска; 0 — без ограничения")

	fs.IntVar(&f.gaPop, "ga_pop", 150, "размер популяции")
	fs.IntVar(&f.gaGen, "ga_gen", 400, "количество поколений")
	fs.IntVar(&f.gaElite, "ga_elite", 4, "размер элиты (количество лучших особей)")
	fs.IntVar(&f.gaTour, "ga_tour", 5, "размер турнирной выборки")
	fs.Float64Var(&f.gaCx, "ga_cx", 0.90, "вероятность применения кроссовера")
	fs.Float64Var(&f.gaMut, "ga_mut", 0.15, "вероятность мутации")

	fs.IntVar(&f.saIterPerJob, "sa_iter_per_job", 2500, "количество итераций на одну работу (используется, если sa_iter == 0)")
	fs.IntVar(&f.saIter, "sa_iter", 0, "общее количество итераций (0 => sa_iter_per_job × nJobs)")
	fs.Float64Var(&f.saT0, "sa_t0", 2000.0, "начальная температура")
	fs.Float64Var(&f.saTmin, "sa_tmin", 0.5, "конечная температура")
	fs.Float64Var(&f.saAlpha, "sa_alpha", 0.995, "коэффициент охлаждения (alpha)")
	fs.StringVar(&f.saNeigh, "sa_neigh", "swap", "тип окрестности: swap | insert")

	fs.IntVar(&f.tsIterPerJob, "ts_iter_per_job", 250, "количество итераций на одну работу (используется, если ts_iter == 0)")
	fs.IntVar(&f.tsIter, "ts_iter", 0, "общее количество итераций (0 => ts_iter_per_job × nJobs)")
	fs.IntVar(&f.tsTenure, "ts_tenure", 7, "длина табу-списка (в итерациях)")
	fs.IntVar(&f.tsTenureRand, "ts_tenure_rand", 3, "случайное добавление к сроку табу [0..rand]")
	fs.IntVar(&f.tsNeighbors, "ts_neighbors", 90, "количество рассматриваемых соседей на итерацию")
	fs.StringVar(&f.tsNeigh, "ts_neigh", "insert", "тип окрестности: insert | swap")

	fs.IntVar(&f.acoIterPerJob, "aco_iter_per_job", 120, "количество итераций на одну работу (используется, если aco_iter == 0)")
	fs.IntVar(&f.acoIter, "aco_iter", 0, "общее количество итераций (0 => aco_iter_per_job × nJobs)")
	fs.IntVar(&f.acoAnts, "aco_ants", 35, "количество муравьёв")
	fs.Float64Var(&f.acoA, "aco_alpha", 1.0, "коэффициент alpha (влияние феромонов)")
	fs.Float64Var(&f.acoB, "aco_beta", 2.0, "коэффициент beta (влияние эвристики)")
	fs.Float64Var(&f.acoRho, "aco_rho", 0.20, "коэффициент rho (испарения феромонов)")
	fs.Float64Var(&f.acoQ, "aco_q", 1000.0, "константа отложения феромонов")
	fs.Float64Var(&f.acoTau0, "aco_tau0", 1.0, "начальный уровень феромонов")
	fs.IntVar(&f.acoCandK, "aco_k", 0, "размер списка кандидатов (0 — все оставшиеся)")

	fs.IntVar(&f.psoIterPerJob, "pso_iter_per_job", 180, "количество итераций на одну работу (используется, если pso_iter == 0)")
	fs.IntVar(&f.psoIter, "pso_iter", 0, "общее количество итераций (0 => pso_iter_per_job × nJobs)")
	fs.IntVar(&f.psoParticles, "pso_particles", 60, "количество частиц")
	fs.Float64Var(&f.psoW, "pso_w", 0.729, "коэффициент W (инерция)")
	fs.Float64Var(&f.psoC1, "pso_c1", 1.49445, "коэффициент C1 (когнитивный)")
	fs.Float64Var(&f.psoC2, "pso_c2", 1.49445, "коэффициент C2 (социальный)")
	fs.Float64Var(&f.psoVMax, "pso_vmax", 0.25, "ограничение скорости частицы (<=0 — без ограничения)")
	fs.Float64Var(&f.psoPosMin, "pso_pos_min", 0.0, "минимальное значение позиции частицы")
	fs.Float64Var(&f.psoPosMax, "pso_pos_max", 1.0, "максимальное значение позиции частицы")

	return cmd
}

func run(ctx context.Context, f flags) error {
	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}
	defer log.Sync()

	cases, err := parsePairs(f.pairs, f.instanceSeed)
	if err != nil {
		return fmt.Errorf("конфликт: %w", err)
	}

	gaCfg := ga.Config{
		Population:     f.gaPop,
		Generations:    f.gaGen,
		Elite:          f.gaElite,
		TournamentSize: f.gaTour,
		CrossoverRate:  f.gaCx,
		MutationRate:   f.gaMut,
	}
	if err := gaCfg.Validate(); err != nil {
		return fmt.Errorf("конфликт в конфигурации генетического алгоритма: %w", err)
	}

	saCfg := sa.Config{
		Iterations:       f.saIter,
		IterationsPerJob: f.saIterPerJob,
		InitialTemp:      f.saT0,
		FinalTemp:        f.saTmin,
		Alpha:            f.saAlpha,
		Neighborhood:     sa.Neighborhood(f.saNeigh),
	}
	if err := saCfg.Validate(); err != nil {
		return fmt.Errorf("конфликт в конфигурации алгоритма имитации отжига: %w", err)
	}

	tsCfg := ts.Config{
		Iterations:       f.tsIter,
		IterationsPerJob: f.tsIterPerJob,
		TabuTenure:       f.tsTenure,
		TabuTenureRand:   f.tsTenureRand,
		NeighborsPerIter: f.tsNeighbors,
		Neighborhood:     ts.Neighborhood(f.tsNeigh),
	}
	if err := tsCfg.Validate(); err != nil {
		return fmt.Errorf("конфликт в конфигурации табу-поиска: %w", err)
	}

	acoCfg := aco.Config{
		Iterations:       f.acoIter,
		IterationsPerJob: f.acoIterPerJob,
		Ants:             f.acoAnts,
		Alpha:            f.acoA,
		Beta:             f.acoB,
		Rho:              f.acoRho,
		Q:                f.acoQ,
		Tau0:             f.acoTau0,
		CandidateK:       f.acoCandK,
	}
	if err := acoCfg.Validate(); err != nil {
		return fmt.Errorf("конфликт в конфигурации муравьиного алгоритма: %w", err)
	}

	psoCfg := pso.Config{
		Iterations:       f.psoIter,
		IterationsPerJob: f.psoIterPerJob,
		Particles:        f.psoParticles,
		W:                f.psoW,
		C1:               f.psoC1,
		C2:               f.psoC2,
		VMax:             f.psoVMax,
		PosMin:           f.psoPosMin,
		PosMax:           f.psoPosMax,
	}
	if err := psoCfg.Validate(); err != nil {
		return fmt.Errorf("конфликт в конфигурации роя частиц: %w", err)
	}

	available := map[string]bench.Algorithm{
		"GA":  {Name: "GA", Factory: newGAFactory(gaCfg)},
		"SA":  {Name: "SA", Factory: newSAFactory(saCfg)},
		"TS":  {Name: "TS", Factory: newTSFactory(tsCfg)},
		"ACO": {Name: "ACO", Factory: newACOFactory(acoCfg)},
		"PSO": {Name: "PSO", Factory: newPSOFactory(psoCfg)},
	}

	var selected []bench.Algorithm
	for _, a := range splitCSV(f.algos) {
		al, ok := available[a]
		if !ok {
			return fmt.Errorf("алгоритм не предоставлен в программе %q; доступные: %v", a, keys(available))
		}
		selected = append(selected, al)
	}

	runner := bench.Runner{
		Runs:          f.runs,
		BaseSeed:      f.baseSeed,
		PerRunTimeout: f.perRunTO,
	}

	var records []bench.Record
	for _, c := range cases {
		for _, a := range selected {
			log.Info("запуск алгоритма",
				zap.String("algo", a.Name),
				zap.Int("jobs", c.Jobs),
				zap.Int("machines", c.Machines),
				zap.Int("runs", runner.Runs),
			)

			rec, err := runner.RunCase(ctx, c, a)
			if err != nil {
				return fmt.Errorf("ошибка: %w", err)
			}
			records = append(records, rec)

			log.Info("результат алгоритма",
				zap.String("algo", a.Name),
				zap.Int("makespan_best", rec.MakespanBest),
				zap.Float64("makespan_mean", rec.MakespanMean),
				zap.Float64("makespan_std", rec.MakespanStd),
				zap.Float64("time_mean_ms", rec.TimeMeanMs),
				zap.Float64("time_std_ms", rec.TimeStdMs),
			)
		}
	}

	if err := bench.WriteCSV(f.out, records); err != nil {
		return fmt.Errorf("ошибка при записи в CSV: %w", err)
	}
	log.Info("сохранено", zap.String("path", f.out))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// helpers

func parsePairs(s string, baseInstanceSeed int64) ([]bench.Case, error) {
	parts := splitCSV(s)
	cases := make([]bench.Case, 0, len(parts))

	for i, p := range parts {
		jm := strings.Split(p, "x")
		if len(jm) != 2 {
			return nil, fmt.Errorf("пара %q невалидной схемы, пример: 50x10", p)
		}
		jobs, err := atoiStrict(jm[0])
		if err != nil {
			return nil, fmt.Errorf("пара %q: ошибка парсинга количества работ: %w", p, err)
		}
		machines, err := atoiStrict(jm[1])
		if err != nil {
			return nil, fmt.Errorf("пара %q: ошибка парсинга количества машин: %w", p, err)
		}
		if jobs <= 0 || machines <= 0 {
			return nil, fmt.Errorf("пара %q: количество работ и машин должно быть > 0", p)
		}

		seed := baseInstanceSeed + int64(i)*10_000 + int64(jobs)*100 + int64(machines)

		cases = append(cases, bench.Case{
			Jobs:         jobs,
			Machines:     machines,
			InstanceSeed: seed,
		})
	}

	return cases, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiStrict(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func keys(m map[string]bench.Algorithm) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
