package runner_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/swarmopt/internal/metrics"
	"github.com/san-kum/swarmopt/internal/objective"
	"github.com/san-kum/swarmopt/internal/runner"
	"github.com/san-kum/swarmopt/internal/swarm"
)

var _ = Describe("Runner", func() {
	var cfg runner.Config

	BeforeEach(func() {
		cfg = runner.Config{
			Particles:   30,
			Generations: 200,
			C1:          1.49445,
			C2:          1.49445,
			Schedule:    swarm.ScheduleLinear,
			Direction:   swarm.Minimum,
			Seed:        42,
		}
	})

	It("converges on the sphere benchmark", func() {
		res, err := runner.New(cfg).Run(context.Background(), objective.Sphere(2))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.BestFitness).To(BeNumerically("<", 0.1))
		Expect(res.Generations).To(Equal(200))
		Expect(res.Trace).To(HaveLen(200))
	})

	It("keeps the best position inside the search bounds", func() {
		bench := objective.Rastrigin(3)
		res, err := runner.New(cfg).Run(context.Background(), bench)
		Expect(err).NotTo(HaveOccurred())
		for i, v := range res.BestPosition {
			Expect(v).To(BeNumerically(">=", bench.Lower[i]))
			Expect(v).To(BeNumerically("<=", bench.Upper[i]))
		}
	})

	It("produces a monotonically non-increasing trace when minimizing", func() {
		res, err := runner.New(cfg).Run(context.Background(), objective.Rastrigin(4))
		Expect(err).NotTo(HaveOccurred())
		for i := 1; i < len(res.Trace); i++ {
			Expect(res.Trace[i]).To(BeNumerically("<=", res.Trace[i-1]))
		}
	})

	It("is reproducible for a fixed seed", func() {
		a, err := runner.New(cfg).Run(context.Background(), objective.Ackley(2))
		Expect(err).NotTo(HaveOccurred())
		b, err := runner.New(cfg).Run(context.Background(), objective.Ackley(2))
		Expect(err).NotTo(HaveOccurred())

		Expect(a.BestFitness).To(Equal(b.BestFitness))
		Expect(a.BestPosition).To(Equal(b.BestPosition))
		Expect(a.Trace).To(Equal(b.Trace))
	})

	It("maximizes when asked to", func() {
		sphere := objective.Sphere(2)
		hill := objective.Benchmark{
			Name:  "hill",
			Dim:   2,
			Lower: sphere.Lower,
			Upper: sphere.Upper,
			Fn:    func(x swarm.Vector) float64 { return -sphere.Fn(x) },
		}

		cfg.Direction = swarm.Maximum
		res, err := runner.New(cfg).Run(context.Background(), hill)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.BestFitness).To(BeNumerically(">", -0.1))
	})

	It("stops on context cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := runner.New(cfg).Run(ctx, objective.Sphere(2))
		Expect(err).To(MatchError(context.Canceled))
	})

	It("reports attached metrics", func() {
		r := runner.New(cfg)
		r.AddMetric(metrics.NewDiversity())
		r.AddMetric(metrics.NewEvaluations())

		res, err := r.Run(context.Background(), objective.Sphere(2))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Metrics).To(HaveKey("diversity"))
		Expect(res.Metrics["evaluations"]).To(Equal(float64(30 * 200)))
	})

	It("notifies observers every generation", func() {
		obs := &countingObserver{}
		r := runner.New(cfg)
		r.AddObserver(obs)

		_, err := r.Run(context.Background(), objective.Sphere(2))
		Expect(err).NotTo(HaveOccurred())
		Expect(obs.calls).To(Equal(200))
	})

	DescribeTable("rejects invalid configuration",
		func(mutate func(*runner.Config)) {
			mutate(&cfg)
			_, err := runner.New(cfg).Run(context.Background(), objective.Sphere(2))
			Expect(err).To(HaveOccurred())
		},
		Entry("no particles", func(c *runner.Config) { c.Particles = 0 }),
		Entry("no generations", func(c *runner.Config) { c.Generations = 0 }),
		Entry("non-positive c1", func(c *runner.Config) { c.C1 = 0 }),
		Entry("non-positive c2", func(c *runner.Config) { c.C2 = -1 }),
		Entry("unknown direction", func(c *runner.Config) { c.Direction = "sideways" }),
		Entry("unknown schedule", func(c *runner.Config) { c.Schedule = "costant" }),
	)
})

type countingObserver struct {
	calls int
}

func (c *countingObserver) OnGeneration(gen int, best float64) {
	c.calls++
}
