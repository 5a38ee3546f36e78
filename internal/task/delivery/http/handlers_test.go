package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-manager/config"
	"smart-task-manager/internal/middleware"
	"smart-task-manager/internal/model"
	"smart-task-manager/internal/parser"
	"smart-task-manager/internal/task"
	"smart-task-manager/internal/task/repository/memory"
	"smart-task-manager/internal/task/usecase"
	"smart-task-manager/pkg/datemath"
	pkgErrors "smart-task-manager/pkg/errors"
	"smart-task-manager/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors response.Resp with a typed payload.
type envelope[T any] struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
}

func newRouter(t *testing.T, uc task.UseCase) *gin.Engine {
	t.Helper()
	r := gin.New()
	mw := middleware.New(log.NewNop(), config.RateLimitConfig{Enabled: false})
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), mw)
	return r
}

func newUseCase(t *testing.T) task.UseCase {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	l := log.NewNop()
	return usecase.New(memory.New(l), parser.NewRuleBackend(parser.New(dates)), nil, nil, "", l)
}

func call[T any](t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope[T]) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope[T]
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v (%s)", method, path, err, w.Body.String())
		}
	}
	return w.Code, env
}

func TestParse(t *testing.T) {
	r := newRouter(t, newUseCase(t))

	code, env := call[parseResp](t, r, http.MethodPost, "/api/v1/tasks/parse", gin.H{
		"text": "Finish landing page Aman by 11pm 20th June",
		"now":  "2024-06-10T09:00:00Z",
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	got := env.Data.Task
	want := time.Date(2024, time.June, 20, 23, 0, 0, 0, time.UTC)
	if got.Name != "Finish landing page" || got.Assignee != "Aman" || got.Priority != "P3" ||
		got.DueAt == nil || !got.DueAt.Equal(want) {
		t.Errorf("unexpected task %+v", got)
	}
	if env.Data.Backend != parser.BackendRule || got.PriorityLabel == "" {
		t.Errorf("unexpected response %+v", env.Data)
	}

	code, _ = call[any](t, r, http.MethodPost, "/api/v1/tasks/parse", gin.H{"text": ""})
	if code != http.StatusBadRequest {
		t.Errorf("empty text status = %d, want 400", code)
	}
	code, _ = call[any](t, r, http.MethodPost, "/api/v1/tasks/parse", gin.H{"text": "   "})
	if code != http.StatusBadRequest {
		t.Errorf("blank text status = %d, want 400", code)
	}
}

func TestExtract(t *testing.T) {
	r := newRouter(t, newUseCase(t))

	code, env := call[extractResp](t, r, http.MethodPost, "/api/v1/tasks/extract", gin.H{
		"transcript": "Aman you take the landing page by 10pm tomorrow. It was a good meeting overall. " +
			"Rajeev you take care of client follow-up by Wednesday.",
		"now": "2024-06-10T09:00:00Z",
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if env.Data.Count != 2 || env.Data.Tasks[0].Assignee != "Aman" || env.Data.Tasks[1].Assignee != "Rajeev" {
		t.Errorf("unexpected response %+v", env.Data)
	}
}

func TestSuggest_NoLLM(t *testing.T) {
	r := newRouter(t, newUseCase(t))

	code, env := call[suggestResp](t, r, http.MethodPost, "/api/v1/tasks/suggestions", gin.H{"text": "Plan offsite"})
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if env.Data.Suggestions == nil || len(env.Data.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, want empty list", env.Data.Suggestions)
	}
}

func TestTaskLifecycle(t *testing.T) {
	r := newRouter(t, newUseCase(t))

	code, created := call[createResp](t, r, http.MethodPost, "/api/v1/tasks", gin.H{
		"name":     "Write report",
		"assignee": "Rajeev",
		"due_at":   "2030-01-05T17:00:00Z",
		"priority": "P2",
	})
	if code != http.StatusOK || created.Data.Task.ID == "" {
		t.Fatalf("create status = %d, body %+v", code, created)
	}
	id := created.Data.Task.ID

	code, quick := call[quickResp](t, r, http.MethodPost, "/api/v1/tasks/quick", gin.H{"text": "Call client tomorrow 9am P1"})
	if code != http.StatusOK || quick.Data.TaskCount != 1 {
		t.Fatalf("quick status = %d, body %+v", code, quick)
	}

	code, _ = call[any](t, r, http.MethodPost, "/api/v1/tasks/quick", gin.H{"text": "No owners here at all.", "transcript": true})
	if code != http.StatusUnprocessableEntity {
		t.Errorf("quick without tasks status = %d, want 422", code)
	}

	code, list := call[listResp](t, r, http.MethodGet, "/api/v1/tasks?sort_by=priority", nil)
	if code != http.StatusOK || list.Data.Total != 2 || list.Data.Tasks[0].Priority != "P1" {
		t.Errorf("list status = %d, body %+v", code, list.Data)
	}

	code, _ = call[any](t, r, http.MethodGet, "/api/v1/tasks?sort_by=name", nil)
	if code != http.StatusBadRequest {
		t.Errorf("invalid sort status = %d, want 400", code)
	}

	code, assignees := call[assigneesResp](t, r, http.MethodGet, "/api/v1/tasks/assignees", nil)
	if code != http.StatusOK || len(assignees.Data.Assignees) != 2 || assignees.Data.Assignees[0] != "Rajeev" {
		t.Errorf("assignees status = %d, body %+v", code, assignees.Data)
	}

	code, updated := call[updateResp](t, r, http.MethodPut, "/api/v1/tasks/"+id, gin.H{"name": "Write final report", "clear_due_at": true})
	if code != http.StatusOK || updated.Data.Task.Name != "Write final report" || updated.Data.Task.DueAt != nil {
		t.Errorf("update status = %d, body %+v", code, updated.Data)
	}

	code, _ = call[any](t, r, http.MethodPut, "/api/v1/tasks/"+id, gin.H{})
	if code != http.StatusBadRequest {
		t.Errorf("empty update status = %d, want 400", code)
	}

	code, toggled := call[updateResp](t, r, http.MethodPatch, "/api/v1/tasks/"+id+"/complete", nil)
	if code != http.StatusOK || !toggled.Data.Task.Completed {
		t.Errorf("toggle status = %d, body %+v", code, toggled.Data)
	}

	code, detail := call[detailResp](t, r, http.MethodGet, "/api/v1/tasks/"+id, nil)
	if code != http.StatusOK || !detail.Data.Task.Completed {
		t.Errorf("detail status = %d, body %+v", code, detail.Data)
	}

	code, _ = call[any](t, r, http.MethodDelete, "/api/v1/tasks/"+id, nil)
	if code != http.StatusOK {
		t.Errorf("delete status = %d", code)
	}

	code, notFound := call[any](t, r, http.MethodGet, "/api/v1/tasks/"+id, nil)
	if code != http.StatusNotFound || notFound.ErrorCode != http.StatusNotFound {
		t.Errorf("detail after delete = %d, %+v", code, notFound)
	}
}

func TestSubtasks(t *testing.T) {
	r := newRouter(t, newUseCase(t))

	code, created := call[createResp](t, r, http.MethodPost, "/api/v1/tasks", gin.H{
		"name":     "Launch page",
		"subtasks": []string{"Draft copy", "Pick images"},
	})
	if code != http.StatusOK {
		t.Fatalf("create status = %d", code)
	}
	cl := created.Data.Task.Checklist
	if cl == nil || cl.Total != 2 || cl.Completed != 0 {
		t.Fatalf("checklist = %+v", cl)
	}
	path := "/api/v1/tasks/" + created.Data.Task.ID + "/subtasks"

	code, updated := call[updateResp](t, r, http.MethodPatch, path, gin.H{"text": "copy", "checked": true})
	if code != http.StatusOK || updated.Data.Task.Checklist == nil || updated.Data.Task.Checklist.Progress != 50 || updated.Data.Task.Completed {
		t.Errorf("check status = %d, body %+v", code, updated.Data.Task)
	}

	code, updated = call[updateResp](t, r, http.MethodPatch, path, gin.H{"text": "images", "checked": true})
	if code != http.StatusOK || !updated.Data.Task.Completed {
		t.Errorf("check last status = %d, body %+v", code, updated.Data.Task)
	}

	code, _ = call[any](t, r, http.MethodPatch, path, gin.H{"text": "deploy", "checked": true})
	if code != http.StatusNotFound {
		t.Errorf("unknown subtask status = %d, want 404", code)
	}

	code, _ = call[any](t, r, http.MethodPatch, path, gin.H{"checked": true})
	if code != http.StatusBadRequest {
		t.Errorf("missing text status = %d, want 400", code)
	}
}

// failingUseCase fails List with an error the handler does not know about.
type failingUseCase struct {
	task.UseCase
}

func (f failingUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	return task.ListOutput{}, errors.New("storage offline")
}

func TestUnknownErrorIsInternal(t *testing.T) {
	r := newRouter(t, failingUseCase{})

	code, env := call[any](t, r, http.MethodGet, "/api/v1/tasks", nil)
	if code != http.StatusInternalServerError || env.ErrorCode != http.StatusInternalServerError {
		t.Errorf("status = %d, body %+v", code, env)
	}
}

func TestMapError(t *testing.T) {
	h := New(log.NewNop(), nil)

	tests := []struct {
		err  error
		want int
	}{
		{task.ErrTaskNotFound, http.StatusNotFound},
		{task.ErrEmptyInput, http.StatusBadRequest},
		{task.ErrEmptyName, http.StatusBadRequest},
		{task.ErrInvalidPriority, http.StatusBadRequest},
		{task.ErrInvalidSortField, http.StatusBadRequest},
		{task.ErrNoTasksParsed, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		var httpErr *pkgErrors.HTTPError
		if !errors.As(h.mapError(tt.err), &httpErr) {
			t.Errorf("mapError(%v) is not an HTTPError", tt.err)
			continue
		}
		if httpErr.Code != tt.want {
			t.Errorf("mapError(%v) status = %d, want %d", tt.err, httpErr.Code, tt.want)
		}
	}

	if h.mapError(errors.New("boom")) != nil {
		t.Errorf("unknown errors must map to nil")
	}
}
