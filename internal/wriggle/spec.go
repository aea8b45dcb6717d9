package wriggle

// DefaultAcceleration gives 1.5x frequency at full speed.
const DefaultAcceleration = 0.5

// WaveSpec holds the fields shared by every waveform kind.
type WaveSpec struct {
	Range  float64 // peak degrees either side of rest
	Period float64 // seconds per full cycle
	Offset float64 // radians

	// Acceleration scales frequency with speed. Nil means DefaultAcceleration.
	Acceleration *float64
	// Suppression dampens or tucks the wave at speed. Nil means none.
	Suppression *Suppression
}

// Accel is a convenience for setting WaveSpec.Acceleration inline.
func Accel(v float64) *float64 {
	return &v
}

type Kind int

const (
	Curl Kind = iota
	Squiggle
	Rotation
)

func (k Kind) String() string {
	switch k {
	case Curl:
		return "curl"
	case Squiggle:
		return "squiggle"
	case Rotation:
		return "rotation"
	default:
		return "unknown"
	}
}

// Spec is a WaveSpec bound to a segment index and propagation pattern.
type Spec struct {
	WaveSpec
	Kind         Kind
	Index        int
	SquiggleRate float64 // fraction of a full cycle each index shifts the phase
	Synchronize  bool    // range compounds by index
}

// CurlSpec makes a chain curl together, like an octopus arm. When
// range*count reaches 360 the chain closes into a circle at full curl.
func CurlSpec(w WaveSpec, i int) Spec {
	return Spec{WaveSpec: w, Kind: Curl, Index: i, Synchronize: true}
}

// SquiggleSpec makes a chain squiggle like a snake. A length equal to the
// chain length gives a standing wave; half of it or less looks more like
// swimming.
func SquiggleSpec(w WaveSpec, i int, length float64) Spec {
	rate := 0.0
	if length > 0 {
		rate = 1 / length
	}
	return Spec{WaveSpec: w, Kind: Squiggle, Index: i, SquiggleRate: rate}
}

// RotationSpec keeps a chain in a straight line that rotates back and forth.
func RotationSpec(w WaveSpec) Spec {
	return Spec{WaveSpec: w, Kind: Rotation}
}
