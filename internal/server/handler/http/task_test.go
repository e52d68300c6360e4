package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ekaragodin/taskboard/internal/models"
	"github.com/ekaragodin/taskboard/internal/service"
)

// fakeTaskService implements TaskService for testing.
type fakeTaskService struct {
	createErr  error
	list       []models.Task
	listErr    error
	get        *models.Task
	getErr     error
	replaceErr error
	deleteErr  error
}

func (f *fakeTaskService) Create(ctx context.Context, t models.Task) error {
	return f.createErr
}
func (f *fakeTaskService) List(ctx context.Context) ([]models.Task, error) {
	return f.list, f.listErr
}
func (f *fakeTaskService) Get(ctx context.Context, name string) (*models.Task, error) {
	return f.get, f.getErr
}
func (f *fakeTaskService) Replace(ctx context.Context, name string, t models.Task) error {
	return f.replaceErr
}
func (f *fakeTaskService) Delete(ctx context.Context, name string) error {
	return f.deleteErr
}

func taskRouter(h *TaskHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/task", h.Create)
	r.Get("/tasks", h.List)
	r.Get("/task/{name}", h.Get)
	r.Put("/task/{name}", h.Update)
	r.Delete("/task/{name}", h.Delete)
	return r
}

func TestTaskHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		service        *fakeTaskService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "create success",
			method:         "POST",
			target:         "/task",
			body:           `{"project_id":1,"name":"T1","description":"d"}`,
			service:        &fakeTaskService{},
			expectedCode:   http.StatusOK,
			expectedSubstr: "task created",
		},
		{
			name:           "create invalid project id",
			method:         "POST",
			target:         "/task",
			body:           `{"project_id":9999,"name":"T1"}`,
			service:        &fakeTaskService{createErr: service.ErrInvalidProject},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedSubstr: "invalid project id",
		},
		{
			name:           "get missing",
			method:         "GET",
			target:         "/task/nope",
			service:        &fakeTaskService{getErr: service.ErrNotFound},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Incorrect task name",
		},
		{
			name:           "get success",
			method:         "GET",
			target:         "/task/T1",
			service:        &fakeTaskService{get: &models.Task{ID: 3, ProjectID: 1, Name: "T1"}},
			expectedCode:   http.StatusOK,
			expectedSubstr: `"project_id":1`,
		},
		{
			name:           "list empty",
			method:         "GET",
			target:         "/tasks",
			service:        &fakeTaskService{listErr: service.ErrNotFound},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "not found tasks",
		},
		{
			name:           "update invalid project id",
			method:         "PUT",
			target:         "/task/T1",
			body:           `{"project_id":9999,"name":"T1"}`,
			service:        &fakeTaskService{replaceErr: service.ErrInvalidProject},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedSubstr: "invalid project id",
		},
		{
			name:           "delete missing is success",
			method:         "DELETE",
			target:         "/task/nope",
			service:        &fakeTaskService{},
			expectedCode:   http.StatusOK,
			expectedSubstr: "task delete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.target, bytes.NewBufferString(tt.body))
			taskRouter(&TaskHandler{TaskService: tt.service}).ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if !bytes.Contains(rec.Body.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}
