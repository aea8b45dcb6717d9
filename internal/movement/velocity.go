package movement

// Limit caps an axis. Velocity is the distance covered per second at a
// sampled velocity of 100; Accel and Decel bound the change in sampled
// velocity per second.
type Limit struct {
	Velocity float64 `yaml:"velocity" json:"velocity"`
	Accel    float64 `yaml:"accel" json:"accel"`
	Decel    float64 `yaml:"decel" json:"decel"`
}

// VelocitySpec is a behavior for one axis.
type VelocitySpec struct {
	Limit    Limit      `yaml:"limit" json:"limit"`
	Velocity SampleSpec `yaml:"velocity" json:"velocity"`
	Interval SampleSpec `yaml:"interval" json:"interval"`
}

// Integral is one axis' output for a tick.
type Integral struct {
	Velocity float64 `json:"velocity"`
	Distance float64 `json:"distance"`
}

// Override pins the velocity or distance of an axis. Nil fields are simulated.
type Override struct {
	Velocity *float64 `yaml:"velocity,omitempty" json:"velocity,omitempty"`
	Distance *float64 `yaml:"distance,omitempty" json:"distance,omitempty"`
}

// Axis is the state of one axis between ticks.
type Axis struct {
	Sample   Sample  `json:"sample"`
	Velocity float64 `json:"velocity"`
}

// ClipVelocity limits the change from prev to curr over interval ms.
func ClipVelocity(curr, prev, interval float64, l Limit) float64 {
	maxDecel := l.Decel * interval / 1000
	maxAccel := l.Accel * interval / 1000
	if prev-curr > maxDecel {
		return prev - maxDecel
	}
	if curr-prev > maxAccel {
		return prev + maxAccel
	}
	return curr
}

// StepAxis advances one axis by interval ms. factor scales the distance
// covered. An overridden velocity skips the sampler entirely.
func StepAxis(spec VelocitySpec, axis Axis, interval, factor float64, o Override, r Rand) (Axis, Integral) {
	var velocity float64
	if o.Velocity != nil {
		velocity = *o.Velocity
	} else {
		var target float64
		axis.Sample, target = axis.Sample.Next(interval, spec.Velocity, spec.Interval, r)
		velocity = ClipVelocity(target, axis.Velocity, interval, spec.Limit)
	}
	axis.Velocity = velocity

	distance := interval / 1000 * velocity / 100 * spec.Limit.Velocity * factor
	if o.Distance != nil {
		distance = *o.Distance
	}
	return axis, Integral{Velocity: velocity, Distance: distance}
}
