package checklist_test

import (
	"reflect"
	"testing"

	"smart-task-manager/internal/checklist"
)

const description = `Quarterly numbers for the board.

- [x] Collect revenue data
- [ ] Draft summary
  - [X] Nested review item
` + "```" + `
- [ ] not a real checkbox
` + "```" + `
- [ ] Send to board`

func TestParse(t *testing.T) {
	svc := checklist.New()

	got := svc.Parse(description)
	want := []checklist.Item{
		{Line: 2, Indent: "", Checked: true, Text: "Collect revenue data"},
		{Line: 3, Indent: "", Checked: false, Text: "Draft summary"},
		{Line: 4, Indent: "  ", Checked: true, Text: "Nested review item"},
		{Line: 8, Indent: "", Checked: false, Text: "Send to board"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() =\n%+v\nwant\n%+v", got, want)
	}

	if items := svc.Parse("no checklist here"); items == nil || len(items) != 0 {
		t.Errorf("Parse(plain) = %v, want empty", items)
	}
}

func TestStats(t *testing.T) {
	svc := checklist.New()

	got := svc.Stats(description)
	want := checklist.Stats{Total: 4, Completed: 2, Pending: 2, Progress: 50}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	if got := svc.Stats(""); got != (checklist.Stats{}) {
		t.Errorf("Stats(empty) = %+v", got)
	}
}

func TestRender(t *testing.T) {
	svc := checklist.New()

	got := svc.Render([]string{"Draft copy", "  ", " Pick images "})
	if want := "- [ ] Draft copy\n- [ ] Pick images"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if got := svc.Render(nil); got != "" {
		t.Errorf("Render(nil) = %q", got)
	}
}

func TestSetItem(t *testing.T) {
	svc := checklist.New()

	tests := []struct {
		name      string
		text      string
		checked   bool
		wantCount int
		wantStats checklist.Stats
	}{
		{name: "Check by partial match", text: "summary", checked: true, wantCount: 1, wantStats: checklist.Stats{Total: 4, Completed: 3, Pending: 1, Progress: 75}},
		{name: "Uncheck case-insensitive", text: "COLLECT", checked: false, wantCount: 1, wantStats: checklist.Stats{Total: 4, Completed: 1, Pending: 3, Progress: 25}},
		{name: "No match", text: "deploy", checked: true, wantCount: 0, wantStats: checklist.Stats{Total: 4, Completed: 2, Pending: 2, Progress: 50}},
		{name: "Blank search", text: " ", checked: true, wantCount: 0, wantStats: checklist.Stats{Total: 4, Completed: 2, Pending: 2, Progress: 50}},
		{name: "Code fence untouched", text: "not a real", checked: true, wantCount: 0, wantStats: checklist.Stats{Total: 4, Completed: 2, Pending: 2, Progress: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, n := svc.SetItem(description, tt.text, tt.checked)
			if n != tt.wantCount {
				t.Errorf("count = %d, want %d", n, tt.wantCount)
			}
			if got := svc.Stats(out); got != tt.wantStats {
				t.Errorf("Stats after SetItem = %+v, want %+v", got, tt.wantStats)
			}
			if n == 0 && out != description {
				t.Errorf("content changed without a match")
			}
		})
	}
}

func TestSetAllAndIsComplete(t *testing.T) {
	svc := checklist.New()

	if svc.IsComplete(description) {
		t.Errorf("IsComplete(partial) = true")
	}

	done := svc.SetAll(description, true)
	if !svc.IsComplete(done) {
		t.Errorf("IsComplete after SetAll(true) = false:\n%s", done)
	}

	reopened := svc.SetAll(done, false)
	if got := svc.Stats(reopened); got.Completed != 0 || got.Total != 4 {
		t.Errorf("Stats after SetAll(false) = %+v", got)
	}

	if svc.IsComplete("no checkboxes") {
		t.Errorf("IsComplete(no checkboxes) = true")
	}
}
