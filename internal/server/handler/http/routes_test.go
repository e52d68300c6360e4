package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/ekaragodin/taskboard/internal/models"
)

// fakeValidator accepts a single known token.
type fakeValidator struct {
	token   string
	subject string
}

func (f *fakeValidator) ValidateToken(ctx context.Context, token string) (string, error) {
	if token == f.token {
		return f.subject, nil
	}
	return "", errors.New("invalid token")
}

func testRouter(validator *fakeValidator) http.Handler {
	return NewRouter(
		&AuthHandler{AuthService: &fakeAuthService{users: []models.User{{ID: 1, Email: "a@x.com", Name: "A"}}}},
		&ProjectHandler{ProjectService: &fakeProjectService{}},
		&TaskHandler{TaskService: &fakeTaskService{}},
		&CommentHandler{CommentService: &fakeCommentService{}},
		&CategoryHandler{CategoryService: &fakeCategoryService{}},
		&NoteHandler{NoteService: &fakeNoteService{}},
		&FileHandler{FileService: newFakeFileService()},
		validator,
		zap.NewNop(),
	)
}

func TestRouter_AllowListedPathsSkipAuth(t *testing.T) {
	router := testRouter(&fakeValidator{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/docs", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /docs without token: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/register", bytes.NewBufferString(`{"email":"a@x.com","name":"A","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("POST /register without token: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestRouter_GatedPathsRequireToken(t *testing.T) {
	router := testRouter(&fakeValidator{token: "good", subject: "a@x.com"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/users", nil))
	if rec.Code != http.StatusForbidden {
		t.Errorf("GET /users without token: expected 403, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Authorization", "Bearer bad")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("GET /users with unknown token: expected 403, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Authorization", "Bearer good")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /users with token: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("a@x.com")) {
		t.Errorf("expected user list in body, got %s", rec.Body.String())
	}
}

func TestRouter_Protected(t *testing.T) {
	router := testRouter(&fakeValidator{token: "good", subject: "a@x.com"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("This is a protected route")) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_JSONContentTypeEnforced(t *testing.T) {
	router := testRouter(&fakeValidator{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/register", bytes.NewBufferString(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "text/plain")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", rec.Code)
	}
}
