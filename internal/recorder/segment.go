package recorder

// Step is one logical action: the non-boundary events accumulated since the
// previous boundary, closed by a boundary event. Events after the final
// boundary form a trailing step with no boundary.
type Step struct {
	Events []Event
}

// Segment splits events into steps at each boundary event.
func Segment(events []Event) []Step {
	var steps []Step
	var current []Event
	for _, ev := range events {
		current = append(current, ev)
		if ev.Kind.Boundary() {
			steps = append(steps, Step{Events: current})
			current = nil
		}
	}
	if len(current) > 0 {
		steps = append(steps, Step{Events: current})
	}
	return steps
}

// Primary returns the event that names the step: its boundary event, or for
// a trailing step its last event unless that is a focus, in which case the
// first.
func (s Step) Primary() Event {
	last := s.Events[len(s.Events)-1]
	if last.Kind != KindFocus {
		return last
	}
	return s.Events[0]
}

// Input is text typed into one widget during a step.
type Input struct {
	Widget WidgetSnapshot
	Text   string
}

// Inputs collects key presses per target in order of first key press.
func (s Step) Inputs() []Input {
	var inputs []Input
	index := map[string]int{}
	for _, ev := range s.Events {
		if ev.Kind != KindKeyPress || ev.Widget == nil {
			continue
		}
		key := ev.Widget.Class + "\x00" + ev.Widget.ObjectName
		i, ok := index[key]
		if !ok {
			i = len(inputs)
			index[key] = i
			inputs = append(inputs, Input{Widget: *ev.Widget})
		}
		switch ev.Key {
		case "\r", "\n", "\t", "":
		case "\b":
			if t := inputs[i].Text; t != "" {
				r := []rune(t)
				inputs[i].Text = string(r[:len(r)-1])
			}
		default:
			inputs[i].Text += ev.Key
		}
	}
	return inputs
}
