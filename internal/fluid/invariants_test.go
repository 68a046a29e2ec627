package fluid_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/slosh/internal/fluid"
)

var _ = Describe("Grid invariants under stepping", func() {
	var g *fluid.Grid

	checkInvariants := func() {
		for r := 0; r < g.Height(); r++ {
			for c := 0; c < g.Width(); c++ {
				if g.IsBorder(r, c) {
					Expect(g.Obstacle(r, c)).To(BeTrue(), "border (%d,%d) must be a wall", r, c)
				}
				if g.Obstacle(r, c) {
					Expect(g.Level(r, c)).To(BeZero(), "wall height at (%d,%d)", r, c)
					Expect(g.Velocity(r, c)).To(BeZero(), "wall velocity at (%d,%d)", r, c)
					continue
				}
				Expect(g.Level(r, c)).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)),
					"height at (%d,%d)", r, c)
			}
		}
	}

	DescribeTable("keeps walls dry and heights in range",
		func(w, h int, level, tilt float64, k fluid.Coefficients) {
			var err error
			g, err = fluid.NewGrid(w, h)
			Expect(err).NotTo(HaveOccurred())
			fluid.Initialize(g, level, tilt)
			checkInvariants()

			for i := 0; i < 300; i++ {
				fluid.Step(g, k)
				if i%25 == 0 {
					checkInvariants()
				}
			}
			checkInvariants()
		},
		Entry("defaults", 40, 15, 0.5, 0.1, fluid.Coefficients{Dt: 0.2, WaveSpeedSq: 0.5, Damping: 0.01}),
		Entry("flat with disturbance", 21, 11, 0.5, 0.0, fluid.Coefficients{Dt: 0.2, WaveSpeedSq: 0.5, Damping: 0.01}),
		Entry("unstable parameters", 30, 10, 0.5, 0.5, fluid.Coefficients{Dt: 1.5, WaveSpeedSq: 2.0, Damping: 0}),
		Entry("full tank", 12, 6, 1.0, 1.0, fluid.Coefficients{Dt: 0.3, WaveSpeedSq: 1.0, Damping: 0.1}),
		Entry("overflowing parameters", 20, 10, 0.5, 0.1, fluid.Coefficients{Dt: 1e200, WaveSpeedSq: 1e300}),
		Entry("infinite time step", 20, 10, 0.5, 0.1, fluid.Coefficients{Dt: math.Inf(1), WaveSpeedSq: 0.5}),
		Entry("empty tank", 12, 6, 0.0, 0.0, fluid.Coefficients{Dt: 0.3, WaveSpeedSq: 1.0, Damping: 0.1}),
	)

	Context("with an interior wall", func() {
		BeforeEach(func() {
			var err error
			g, err = fluid.NewGrid(20, 8)
			Expect(err).NotTo(HaveOccurred())
			fluid.Initialize(g, 0.6, 0.4)
			for r := 1; r < 5; r++ {
				g.SetObstacle(r, 10, true)
			}
		})

		It("never lets water into the wall", func() {
			for i := 0; i < 200; i++ {
				fluid.Step(g, fluid.Coefficients{Dt: 0.2, WaveSpeedSq: 0.5, Damping: 0.01})
			}
			checkInvariants()
			for r := 1; r < 5; r++ {
				Expect(g.Level(r, 10)).To(BeZero())
			}
		})
	})
})

var _ = Describe("Stability classification", func() {
	It("treats the limit itself as stable", func() {
		s := fluid.CheckStability(0.5, 1.0)
		Expect(s.Metric).To(BeNumerically("==", 0.5))
		Expect(s.Unstable).To(BeFalse())
	})

	It("flags values above the limit", func() {
		s := fluid.CheckStability(1.0, 1.0)
		Expect(s.Unstable).To(BeTrue())
		Expect(s.Advice()).To(ContainSubstring("reducing dt"))
	})
})
