package configurator

// Step is a stage of the configurator flow.
type Step string

const (
	StepChoose    Step = "choose"
	StepCustomize Step = "customize"
	StepReview    Step = "review"
)

var steps = []Step{StepChoose, StepCustomize, StepReview}

// Steps lists every step in flow order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Index is the zero-based position of the step in the flow, or -1.
func (s Step) Index() int {
	for i, v := range steps {
		if v == s {
			return i
		}
	}
	return -1
}

// Label is the text shown in the step indicator.
func (s Step) Label() string {
	switch s {
	case StepChoose:
		return "Choose animal"
	case StepCustomize:
		return "Customize"
	case StepReview:
		return "Review"
	default:
		return string(s)
	}
}

// next and back are the transition tables. Guards live on Session.
func (s Step) next() Step {
	switch s {
	case StepChoose:
		return StepCustomize
	case StepCustomize:
		return StepReview
	default:
		return s
	}
}

func (s Step) back() Step {
	switch s {
	case StepCustomize:
		return StepChoose
	case StepReview:
		return StepCustomize
	default:
		return s
	}
}
