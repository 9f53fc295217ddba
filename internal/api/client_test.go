package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskdo/internal/model"
)

func TestClientList_DecodesTasks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/tasks" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get(RequestIDHeader) == "" {
			t.Errorf("expected %s header", RequestIDHeader)
		}
		_, _ = io.WriteString(w, `[{"id":1,"title":"A","description":null,"due_date":"2024-01-02","completed":false},{"id":2,"title":"B","completed":true}]`)
	}))
	defer srv.Close()

	tasks, err := New(srv.URL).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].DueDate == nil || *tasks[0].DueDate != "2024-01-02" {
		t.Fatalf("unexpected due date: %#v", tasks[0].DueDate)
	}
	if !tasks[1].Completed || tasks[1].Description != nil {
		t.Fatalf("unexpected second task: %#v", tasks[1])
	}
}

func TestClientUpdate_SendsPartialBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/tasks/7" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if len(body) != 1 || body["completed"] != true {
			t.Errorf("expected only completed=true, got %v", body)
		}
		_, _ = io.WriteString(w, `{"id":7,"title":"T","completed":true}`)
	}))
	defer srv.Close()

	got, err := New(srv.URL).Update(context.Background(), 7, model.CompletedPatch(true))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != 7 || !got.Completed {
		t.Fatalf("unexpected task: %#v", got)
	}
}

func TestClient_ErrorMessages(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"detail string", http.StatusNotFound, `{"detail":"Task with id 9 not found"}`, "Task with id 9 not found"},
		{"validation list", http.StatusUnprocessableEntity, `{"detail":[{"msg":"title too short"},{"msg":"bad date"}]}`, "title too short; bad date"},
		{"no body", http.StatusInternalServerError, ``, "HTTP error, status: 500"},
		{"non json body", http.StatusBadGateway, `<html>oops</html>`, "HTTP error, status: 502"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			_, err := New(srv.URL).Get(context.Background(), 9)
			var ae *Error
			if !errors.As(err, &ae) {
				t.Fatalf("expected *api.Error, got %T %v", err, err)
			}
			if ae.Status != tc.status || ae.Message != tc.want {
				t.Fatalf("got status=%d msg=%q; want status=%d msg=%q", ae.Status, ae.Message, tc.status, tc.want)
			}
		})
	}
}

func TestClientDelete_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := New(srv.URL).Delete(context.Background(), 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestClient_TransportFailureUsesSameShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url).List(context.Background())
	var ae *Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *api.Error, got %T %v", err, err)
	}
	if !ae.Transport() || ae.Message == "" {
		t.Fatalf("expected transport error with message, got %#v", ae)
	}
	if Message(err) == "" {
		t.Fatalf("expected Message() to surface transport text")
	}
}

func TestNew_DefaultsBaseURL(t *testing.T) {
	if got := New("").BaseURL(); got != DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", got)
	}
	if got := New(" http://example.test:9000/ ").BaseURL(); got != "http://example.test:9000" {
		t.Fatalf("expected trimmed base url, got %q", got)
	}
}
