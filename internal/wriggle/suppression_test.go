package wriggle_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/palamander/internal/wriggle"
)

var _ = Describe("Suppress", func() {
	const (
		interval = 50.0
		angle    = 90.0
		free     = 1000.0 // delta large enough to never clip
	)

	DescribeTable("is a no-op without dampen or tuck",
		func(speed float64) {
			out := wriggle.Suppress(wriggle.Suppression{Delta: free}, angle, 0, speed, interval)
			Expect(out.Suppressed).To(BeNumerically("~", 0, 1e-9))
			Expect(out.Magnitude).To(BeNumerically("~", angle, 1e-9))
		},
		Entry("at rest", 0.0),
		Entry("at half speed", 50.0),
		Entry("at full speed", 100.0),
	)

	It("is a no-op when delta is zero", func() {
		s := wriggle.Suppression{Dampen: 1, Tuck: -angle}
		out := wriggle.Suppress(s, angle, 0, 100, interval)
		Expect(out.Suppressed).To(BeNumerically("~", 0, 1e-9))
		Expect(out.Magnitude).To(BeNumerically("~", angle, 1e-9))
	})

	Context("tucking", func() {
		s := wriggle.Suppression{Tuck: -angle, Delta: free}

		It("suppresses half the angle at half speed", func() {
			out := wriggle.Suppress(s, angle, 0, 50, interval)
			Expect(out.Suppressed).To(BeNumerically("~", angle/2, 1e-9))
		})

		It("suppresses the whole angle at full speed", func() {
			out := wriggle.Suppress(s, angle, 0, 100, interval)
			Expect(out.Suppressed).To(BeNumerically("~", angle, 1e-9))
			Expect(out.Magnitude).To(BeNumerically("~", 0, 1e-9))
		})
	})

	DescribeTable("dampening at full speed",
		func(dampen, magnitude float64) {
			s := wriggle.Suppression{Dampen: dampen, Delta: free}
			out := wriggle.Suppress(s, angle, 0, 100, interval)
			Expect(out.Magnitude).To(BeNumerically("~", magnitude, 1e-9))
			Expect(out.Suppressed).To(BeNumerically("~", angle-magnitude, 1e-9))
		},
		Entry("halves with 0.5", 0.5, angle/2),
		Entry("zeroes with 1", 1.0, 0.0),
		Entry("doubles and flips suppression with -1", -1.0, 2*angle),
	)

	It("dampens before tucking", func() {
		s := wriggle.Suppression{Dampen: 1, Tuck: -45, Delta: free}
		out := wriggle.Suppress(s, angle, 0, 100, interval)
		Expect(out.Magnitude).To(BeNumerically("~", -45, 1e-9))
		Expect(out.Suppressed).To(BeNumerically("~", 135, 1e-9))
	})

	Context("rate limiting", func() {
		delta := 30 / interval

		It("clips an inward tuck", func() {
			s := wriggle.Suppression{Tuck: -90, Delta: delta}
			out := wriggle.Suppress(s, angle, 0, 100, interval)
			Expect(out.Suppressed).To(BeNumerically("~", 30, 1e-9))
			Expect(out.Magnitude).To(BeNumerically("~", 60, 1e-9))
		})

		It("clips an outward tuck", func() {
			s := wriggle.Suppression{Tuck: 90, Delta: delta}
			out := wriggle.Suppress(s, angle, 0, 100, interval)
			Expect(out.Suppressed).To(BeNumerically("~", -30, 1e-9))
			Expect(out.Magnitude).To(BeNumerically("~", 120, 1e-9))
		})

		It("continues from the carried suppression", func() {
			s := wriggle.Suppression{Tuck: -90, Delta: delta}
			out := wriggle.Suppress(s, angle, 30, 100, interval)
			Expect(out.Suppressed).To(BeNumerically("~", 60, 1e-9))
			Expect(out.Magnitude).To(BeNumerically("~", 30, 1e-9))
		})
	})
})

var _ = Describe("Component suppression over time", func() {
	It("relaxes back to the raw wave once speed drops", func() {
		wave := wriggle.WaveSpec{
			Range:        20,
			Period:       1,
			Acceleration: wriggle.Accel(0),
			Suppression:  &wriggle.Suppression{Dampen: 1, Delta: 1},
		}
		c := wriggle.NewComponent(wriggle.RotationSpec(wave))
		for i := 0; i < 40; i++ {
			c = c.Sync(50, 100)
		}
		Expect(c.Magnitude).To(BeNumerically("~", 0, 1e-6))

		for i := 0; i < 40; i++ {
			c = c.Sync(50, 0)
		}
		Expect(c.Suppressed).To(BeNumerically("~", 0, 1e-6))
	})
})
