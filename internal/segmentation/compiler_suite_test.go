package segmentation_test

import (
	"bytes"
	"log"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/palamander/internal/geom"
	"github.com/san-kum/palamander/internal/section"
	"github.com/san-kum/palamander/internal/segment"
	"github.com/san-kum/palamander/internal/segmentation"
)

func TestCompilerSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Segmentation Compiler Suite")
}

var _ = Describe("Compiler", func() {
	var (
		logs     *bytes.Buffer
		compiler *segmentation.Compiler
	)

	BeforeEach(func() {
		logs = &bytes.Buffer{}
		logger := log.New(logs, "", 0)
		reg, err := segmentation.NewRegistry(logger)
		Expect(err).NotTo(HaveOccurred())
		compiler = segmentation.NewCompiler(reg, logger)
	})

	for _, name := range segmentation.Creatures() {
		Context("compiling a "+name, func() {
			var body []*segment.Segment

			BeforeEach(func() {
				body = compiler.Compile(section.Section{Type: name, Count: 10, Size: 100})
			})

			It("produces a primary body headed by the first segment", func() {
				Expect(body).NotTo(BeEmpty())
				for _, s := range body {
					Expect(s.Primary).To(BeTrue())
				}
				Expect(segment.BodySegments(body[0])).To(HaveLen(len(body)))
			})

			It("resolves every section without warnings", func() {
				Expect(logs.String()).To(BeEmpty())
			})

			It("places every segment at a finite position", func() {
				head := body[0]
				segment.Hydrate(head, geom.EngineCircle(head.Circle, geom.Origin()), 0, 500)
				for c := range segment.Circles(head) {
					Expect(c.Radius).To(BeNumerically(">", 0))
					Expect(c.Center.X()).To(BeNumerically("<", 1e6))
					Expect(c.Center.Y()).To(BeNumerically("<", 1e6))
				}
			})
		})
	}

	DescribeTable("produces the expected main body length",
		func(name string, want int) {
			body := compiler.Compile(section.Section{Type: name, Count: 10, Size: 100})
			Expect(body).To(HaveLen(want))
		},
		Entry("tadpole: head and eel body", "tadpole", 11),
		Entry("newt: head and newt body", "newt", 19),
		Entry("axolotl: head and newt body", "axolotl", 16),
		Entry("caterpillar: head and inchworm", "caterpillar", 11),
		Entry("crawdad: head, spacer and carapace", "crawdad", 5),
		Entry("frog: head and four body segments", "frog", 5),
		Entry("snake: snout and head", "snake", 2),
		Entry("octopus: head only", "octopus", 1),
		Entry("sea lion: head, neck and fish tail", "sea-lion", 8),
	)

	It("accepts the legacy horseshoe crab spelling", func() {
		legacy := compiler.Compile(section.Section{Type: "horshoe-crab", Size: 100})
		current := compiler.Compile(section.Section{Type: "horseshoe-crab", Size: 100})
		Expect(legacy).To(HaveLen(len(current)))
		Expect(segment.Count(legacy[0])).To(Equal(segment.Count(current[0])))
	})

	It("grows three newt bodies off the newt king's head", func() {
		body := compiler.Compile(section.Section{Type: "newt-king", Size: 100})
		Expect(body).To(HaveLen(1))
		Expect(body[0].Circle.Radius).To(Equal(75.0))
		Expect(body[0].Children).To(HaveLen(3))
	})
})
