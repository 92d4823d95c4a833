package utils

const (
	StepperMin = 1
	StepperMax = 99
)

// QuantityStepper bounds the +/- control on cart lines. Stepping past either
// bound leaves the value where it is.
type QuantityStepper struct {
	Min int
	Max int
}

func DefaultStepper() QuantityStepper {
	return QuantityStepper{Min: StepperMin, Max: StepperMax}
}

func (s QuantityStepper) Clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

func (s QuantityStepper) Increment(v int) int {
	if v >= s.Max {
		return s.Clamp(v)
	}
	return v + 1
}

func (s QuantityStepper) Decrement(v int) int {
	if v <= s.Min {
		return s.Clamp(v)
	}
	return v - 1
}
