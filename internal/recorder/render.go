package recorder

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Document is a finished recording.
type Document struct {
	Name        string
	Description string
	StartedAt   time.Time
	Duration    time.Duration
	Events      []Event
	Steps       []Step
}

const notesSection = `---

## Notes

- Review and edit this workflow before using
- Add wait times where needed (widget.wait_for)
- Add verification steps for critical dialogs
- Replace hardcoded values with <user_provided> variables
- Add troubleshooting section for common issues

---

## Raw Events

For detailed event inspection, see the accompanying .json file.
`

// replay is a command invocation that reproduces a step.
type replay struct {
	Command string         `json:"command"`
	Params  map[string]any `json:"params"`
}

func (r replay) String() string {
	data, _ := json.Marshal(r)
	return string(data)
}

// Markdown renders the procedure document.
func (d Document) Markdown() string {
	var b strings.Builder
	purpose := d.Description
	if purpose == "" {
		purpose = "No description provided"
	}
	fmt.Fprintf(&b, "# Workflow: %s\n\n", d.Name)
	fmt.Fprintf(&b, "**Purpose:** %s\n", purpose)
	fmt.Fprintf(&b, "**Recorded:** %s\n", d.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Duration:** %.1f seconds\n", d.Duration.Seconds())
	fmt.Fprintf(&b, "**Steps:** %d\n\n", len(d.Steps))
	b.WriteString("---\n\n## Steps\n\n")

	for i, step := range d.Steps {
		renderStep(&b, i+1, step)
		b.WriteString("\n")
	}
	b.WriteString(notesSection)
	return b.String()
}

func renderStep(b *strings.Builder, num int, step Step) {
	primary := step.Primary()
	w := primary.Widget
	if w == nil {
		w = &WidgetSnapshot{}
	}
	var replays []replay
	for _, in := range step.Inputs() {
		if primary.Kind == KindKeyPress && in.Widget.ObjectName == w.ObjectName && in.Widget.Class == w.Class {
			continue
		}
		replays = append(replays, replay{Command: "widget.set_text", Params: withTarget(&in.Widget, map[string]any{"text": in.Text})})
	}

	fmt.Fprintf(b, "### %d. ", num)
	switch primary.Kind {
	case KindNote:
		fmt.Fprintf(b, "Note: %s\n", primary.Note)
		fmt.Fprintf(b, "- **Time:** %gs\n", primary.Elapsed)
		replays = append(replays, replay{Command: "workflow.add_note", Params: map[string]any{"note": primary.Note}})

	case KindClick:
		fmt.Fprintf(b, "Click %s", w.Class)
		if t := str(w.Text); t != "" {
			fmt.Fprintf(b, " '%s'", t)
		}
		b.WriteString("\n")
		fmt.Fprintf(b, "- **Time:** %gs\n", primary.Elapsed)
		b.WriteString("- **Command:** widget.click\n")
		fmt.Fprintf(b, "- **Target:** %s\n", describeTarget(w))
		if t := str(w.Text); t != "" {
			fmt.Fprintf(b, "- **Text:** %q\n", t)
		}
		params := map[string]any{}
		if primary.Button != "" && primary.Button != "left" {
			params["button"] = primary.Button
		}
		replays = append(replays, replay{Command: "widget.click", Params: withTarget(w, params)})

	case KindShow, KindHide:
		verb, state := "Opened", "visible"
		if primary.Kind == KindHide {
			verb, state = "Closed", "hidden"
		}
		fmt.Fprintf(b, "Dialog/Window %s", verb)
		if t := str(w.WindowTitle); t != "" {
			fmt.Fprintf(b, ": %s", t)
		}
		b.WriteString("\n")
		fmt.Fprintf(b, "- **Time:** %gs\n", primary.Elapsed)
		if w.ObjectName != "" {
			fmt.Fprintf(b, "- **ObjectName:** %s\n", w.ObjectName)
		}
		if t := str(w.WindowTitle); t != "" {
			fmt.Fprintf(b, "- **Title:** %s\n", t)
		}
		replays = append(replays, replay{Command: "widget.wait_for", Params: withTarget(w, map[string]any{"state": state})})

	case KindKeyPress:
		fmt.Fprintf(b, "Enter text in %s\n", w.Class)
		fmt.Fprintf(b, "- **Time:** %gs\n", primary.Elapsed)
		b.WriteString("- **Command:** widget.set_text\n")
		fmt.Fprintf(b, "- **Target:** %s\n", describeTarget(w))
		text := "<user_provided>"
		for _, in := range step.Inputs() {
			if in.Widget.ObjectName == w.ObjectName && in.Widget.Class == w.Class && in.Text != "" {
				text = in.Text
			}
		}
		fmt.Fprintf(b, "- **Value:** %s\n", text)
		replays = append(replays, replay{Command: "widget.set_text", Params: withTarget(w, map[string]any{"text": text})})

	case KindFocus:
		fmt.Fprintf(b, "Focus %s\n", w.Class)
		fmt.Fprintf(b, "- **Time:** %gs\n", primary.Elapsed)
		fmt.Fprintf(b, "- **Target:** %s\n", describeTarget(w))
		replays = append(replays, replay{Command: "widget.click", Params: withTarget(w, map[string]any{})})
	}

	switch len(replays) {
	case 0:
	case 1:
		fmt.Fprintf(b, "- **Replay:** `%s`\n", replays[0])
	default:
		b.WriteString("- **Replay:**\n")
		for i, r := range replays {
			fmt.Fprintf(b, "  %d. `%s`\n", i+1, r)
		}
	}
}

// withTarget adds the most stable address for w to params: objectName,
// else exact text, else title, else class.
func withTarget(w *WidgetSnapshot, params map[string]any) map[string]any {
	switch {
	case w.ObjectName != "":
		params["objectName"] = w.ObjectName
	case str(w.Text) != "":
		params["type"], params["value"], params["exact"] = "text", str(w.Text), true
	case str(w.WindowTitle) != "":
		params["type"], params["value"], params["exact"] = "title", str(w.WindowTitle), true
	default:
		params["type"], params["value"], params["exact"] = "class", w.Class, true
	}
	return params
}

func describeTarget(w *WidgetSnapshot) string {
	switch {
	case w.ObjectName != "":
		return fmt.Sprintf("objectName=%q", w.ObjectName)
	case str(w.Text) != "":
		return fmt.Sprintf("text=%q", str(w.Text))
	case str(w.WindowTitle) != "":
		return fmt.Sprintf("title=%q", str(w.WindowTitle))
	default:
		return fmt.Sprintf("class=%q", w.Class)
	}
}

// rawLog is the structured event log written next to the document.
type rawLog struct {
	WorkflowName string  `json:"workflow_name"`
	Description  string  `json:"description"`
	StartTime    string  `json:"start_time"`
	Duration     float64 `json:"duration"`
	Events       []Event `json:"events"`
}

// JSON renders the raw event log.
func (d Document) JSON() ([]byte, error) {
	events := d.Events
	if events == nil {
		events = []Event{}
	}
	return json.MarshalIndent(rawLog{
		WorkflowName: d.Name,
		Description:  d.Description,
		StartTime:    d.StartedAt.Format(time.RFC3339Nano),
		Duration:     d.Duration.Seconds(),
		Events:       events,
	}, "", "  ")
}
