package ai

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/pkg/datemath"
	"smart-task-manager/pkg/llmprovider"
	"smart-task-manager/pkg/log"
)

type stubGenerator struct {
	text    string
	err     error
	lastReq *llmprovider.Request
}

func (s *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "model", Parts: []llmprovider.Part{{Text: s.text}}},
		Usage:   &llmprovider.Usage{},
	}, nil
}

var now = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)

func newBackend(t *testing.T, gen Generator) *Backend {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return New(gen, dates, log.NewNop())
}

func TestBackend_ParseTask(t *testing.T) {
	tests := []struct {
		name     string
		response string
		input    string
		want     model.ParsedTask
		wantDue  time.Time
	}{
		{
			name:     "Full object",
			response: `{"name":"Finish landing page","assignee":"Aman","priority":"p1","due_date":"2024-06-20T23:00:00Z","description":"hero section"}`,
			input:    "Finish landing page Aman by 11pm 20th June P1",
			want: model.ParsedTask{
				Name:        "Finish landing page",
				Assignee:    "Aman",
				Priority:    model.PriorityP1,
				Description: "hero section",
			},
			wantDue: time.Date(2024, time.June, 20, 23, 0, 0, 0, time.UTC),
		},
		{
			name:     "Fenced JSON with defaults",
			response: "Here you go:\n```json\n{\"name\":\"\",\"priority\":\"urgent\"}\n```",
			input:    "  something vague  ",
			want: model.ParsedTask{
				Name:     "something vague",
				Assignee: model.DefaultAssignee,
				Priority: model.DefaultPriority,
			},
		},
		{
			name:     "Past due date moves forward by years",
			response: `{"name":"Renew domain","due_date":"2022-03-01T10:00:00Z"}`,
			input:    "Renew domain March 1st",
			want: model.ParsedTask{
				Name:     "Renew domain",
				Assignee: model.DefaultAssignee,
				Priority: model.DefaultPriority,
			},
			wantDue: time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "Date-only due means end of day",
			response: `{"name":"Send invoice","due_date":"2024-06-12"}`,
			input:    "Send invoice Wednesday",
			want: model.ParsedTask{
				Name:     "Send invoice",
				Assignee: model.DefaultAssignee,
				Priority: model.DefaultPriority,
			},
			wantDue: time.Date(2024, time.June, 12, 23, 59, 59, 0, time.UTC),
		},
		{
			name:     "Unparseable due date is dropped",
			response: `{"name":"Plan offsite","due_date":"sometime soon"}`,
			input:    "Plan offsite",
			want: model.ParsedTask{
				Name:     "Plan offsite",
				Assignee: model.DefaultAssignee,
				Priority: model.DefaultPriority,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBackend(t, &stubGenerator{text: tt.response})

			got, err := b.ParseTask(context.Background(), tt.input, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			due := got.DueAt
			got.DueAt = nil
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTask() = %+v, want %+v", got, tt.want)
			}

			if tt.wantDue.IsZero() {
				if due != nil {
					t.Errorf("DueAt = %v, want nil", *due)
				}
				return
			}
			if due == nil || !due.Equal(tt.wantDue) {
				t.Errorf("DueAt = %v, want %v", due, tt.wantDue)
			}
		})
	}
}

func TestBackend_ParseTask_Errors(t *testing.T) {
	cause := errors.New("network down")

	tests := []struct {
		name string
		gen  *stubGenerator
		want error
	}{
		{name: "Transport error", gen: &stubGenerator{err: cause}, want: cause},
		{name: "Empty response", gen: &stubGenerator{text: "   "}, want: ErrEmptyResponse},
		{name: "Not JSON", gen: &stubGenerator{text: "I cannot help with that"}, want: ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBackend(t, tt.gen)
			if _, err := b.ParseTask(context.Background(), "Call client", now); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBackend_ParseTask_Prompt(t *testing.T) {
	gen := &stubGenerator{text: `{"name":"x"}`}
	b := newBackend(t, gen)

	if _, err := b.ParseTask(context.Background(), "Call client tomorrow", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !gen.lastReq.JSONOutput {
		t.Error("expected JSON output to be requested")
	}
	user := gen.lastReq.Messages[0].Parts[0].Text
	if !strings.Contains(user, "2024-06-10T09:00:00Z") || !strings.Contains(user, "Monday") {
		t.Errorf("user prompt missing current date-time: %q", user)
	}
	if !strings.Contains(user, "Call client tomorrow") {
		t.Errorf("user prompt missing input: %q", user)
	}
}

func TestBackend_ExtractTasks(t *testing.T) {
	gen := &stubGenerator{text: `[
		{"name":"take the landing page","assignee":"Aman","due_date":"2024-06-11T22:00:00Z"},
		{"name":"client follow-up","assignee":"Rajeev","priority":"P2"}
	]`}
	b := newBackend(t, gen)

	got, err := b.ExtractTasks(context.Background(), "Aman you take the landing page by 10pm tomorrow.", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].Assignee != "Aman" || got[0].DueAt == nil || got[0].Priority != model.PriorityP3 {
		t.Errorf("unexpected first task %+v", got[0])
	}
	if got[1].Assignee != "Rajeev" || got[1].DueAt != nil || got[1].Priority != model.PriorityP2 {
		t.Errorf("unexpected second task %+v", got[1])
	}
}

func TestBackend_ExtractTasks_InvalidJSON(t *testing.T) {
	b := newBackend(t, &stubGenerator{text: `{"name":"not an array"}`})
	if _, err := b.ExtractTasks(context.Background(), "anything", now); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("error = %v, want ErrInvalidJSON", err)
	}
}

func TestBackend_Suggest(t *testing.T) {
	b := newBackend(t, &stubGenerator{text: "```json\n[\"Draft outline\", \" \", \"Collect data\", \"Book room\", \"Send invite\", \"Prepare slides\", \"Rehearse\"]\n```"})

	got, err := b.Suggest(context.Background(), "Quarterly review presentation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Draft outline", "Collect data", "Book room", "Send invite", "Prepare slides"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest() = %q, want %q", got, want)
	}
}

// flakyProvider answers with prose first and JSON afterwards.
type flakyProvider struct {
	name    string
	answers []string
	reqs    []*llmprovider.Request
}

func (p *flakyProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.reqs = append(p.reqs, req)
	text := p.answers[min(len(p.reqs)-1, len(p.answers)-1)]
	return &llmprovider.Response{Content: llmprovider.Message{Parts: []llmprovider.Part{{Text: text}}}}, nil
}

func (p *flakyProvider) Name() string  { return p.name }
func (p *flakyProvider) Model() string { return p.name + "-model" }

func TestBackend_ThroughManager(t *testing.T) {
	primary := &flakyProvider{name: "gemini", answers: []string{"I think the task is about a landing page."}}
	secondary := &flakyProvider{name: "qwen", answers: []string{
		"```json\n" + `[{"name":"take the landing page","assignee":"Aman","due_date":"2024-06-11T22:00:00Z"}]` + "\n```",
	}}
	manager := llmprovider.NewManager([]llmprovider.Provider{primary, secondary}, &llmprovider.Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
	}, log.NewNop())
	b := newBackend(t, manager)

	got, err := b.ExtractTasks(context.Background(), "Aman you take the landing page by 10pm tomorrow.", now)
	if err != nil {
		t.Fatalf("ExtractTasks: %v", err)
	}
	if len(got) != 1 || got[0].Assignee != "Aman" || got[0].DueAt == nil {
		t.Fatalf("tasks = %+v", got)
	}
	if len(primary.reqs) != 2 || len(secondary.reqs) != 1 {
		t.Errorf("requests = %d/%d, want 2/1", len(primary.reqs), len(secondary.reqs))
	}

	req := secondary.reqs[0]
	if !req.JSONOutput || req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != extractSystemPrompt {
		t.Errorf("unexpected request %+v", req)
	}
	if user := req.Messages[0].Parts[0].Text; !strings.Contains(user, "Aman you take the landing page") {
		t.Errorf("user prompt = %q", user)
	}
}

func TestBackend_ManagerExhausted(t *testing.T) {
	prose := &flakyProvider{name: "gemini", answers: []string{"No tasks, sorry."}}
	manager := llmprovider.NewManager([]llmprovider.Provider{prose}, &llmprovider.Config{RetryAttempts: 1}, log.NewNop())
	b := newBackend(t, manager)

	_, err := b.ParseTask(context.Background(), "Call client", now)
	if !errors.Is(err, llmprovider.ErrAllProvidersFailed) || !errors.Is(err, llmprovider.ErrMalformedJSON) {
		t.Errorf("err = %v", err)
	}
}

func TestNotBefore(t *testing.T) {
	due := time.Date(2020, time.February, 29, 12, 0, 0, 500, time.UTC)
	got := notBefore(due, now)
	if got.Before(now) {
		t.Fatalf("notBefore returned %v, before %v", got, now)
	}
	if got.Nanosecond() != 0 {
		t.Errorf("expected second precision, got %v", got)
	}
}
