// Package server implements the task REST API served by `taskdo serve`.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"taskdo/internal/api"
	"taskdo/internal/model"

	"github.com/CAFxX/httpcompression"
	"github.com/google/uuid"
)

const maxBody = 1 << 20

type Config struct {
	Addr   string
	DBPath string
	Logger *slog.Logger
}

type Server struct {
	db  *DB
	log *slog.Logger
}

func New(db *DB, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{db: db, log: log}
}

// Handler returns the API mux wrapped in request logging and response
// compression.
func (s *Server) Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tasks", s.handleList)
	mux.HandleFunc("POST /tasks", s.handleCreate)
	mux.HandleFunc("GET /tasks/{id}", s.handleGet)
	mux.HandleFunc("PATCH /tasks/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /tasks/{id}", s.handleDelete)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	compress, err := httpcompression.DefaultAdapter(httpcompression.MinSize(1024))
	if err != nil {
		return nil, err
	}
	return s.withRequestLog(compress(mux)), nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := strings.TrimSpace(r.Header.Get(api.RequestIDHeader))
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(api.RequestIDHeader, reqID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"request_id", reqID,
			"dur", time.Since(start),
		)
	})
}

// Run opens cfg.DBPath and serves the API on cfg.Addr until ctx is done.
func Run(ctx context.Context, cfg Config, ready func(addr string)) error {
	db, err := OpenDB(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.DBPath, err)
	}
	defer db.Close()

	s := New(db, cfg.Logger)
	h, err := s.Handler()
	if err != nil {
		return err
	}
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second}
	if ready != nil {
		ready(ln.Addr().String())
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.db.List(r.Context())
	if err != nil {
		s.dbError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	t, err := s.db.Get(r.Context(), id)
	if err != nil {
		s.taskError(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "title must not be empty")
		return
	}
	if msg := checkDate(req.DueDate); msg != "" {
		writeDetail(w, http.StatusUnprocessableEntity, msg)
		return
	}
	t, err := s.db.Create(r.Context(), req)
	if err != nil {
		s.dbError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var p model.Patch
	if err := decodeBody(r, &p); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if p.IsEmpty() {
		writeDetail(w, http.StatusBadRequest, "No fields provided for update")
		return
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "title must not be empty")
		return
	}
	if p.DueDate.Set {
		if msg := checkDate(p.DueDate.Value); msg != "" {
			writeDetail(w, http.StatusUnprocessableEntity, msg)
			return
		}
	}
	t, err := s.db.Update(r.Context(), id, p)
	if err != nil {
		s.taskError(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.db.Delete(r.Context(), id); err != nil {
		s.taskError(w, id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) taskError(w http.ResponseWriter, id int64, err error) {
	if errors.Is(err, ErrNotFound) {
		writeDetail(w, http.StatusNotFound, fmt.Sprintf("Task with id %d not found", id))
		return
	}
	s.dbError(w, err)
}

func (s *Server) dbError(w http.ResponseWriter, err error) {
	s.log.Error("database error", "error", err)
	writeDetail(w, http.StatusInternalServerError, "Database error occurred")
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "task id must be an integer")
		return 0, false
	}
	return id, true
}

func checkDate(s *string) string {
	if s == nil {
		return ""
	}
	if _, err := time.Parse(model.DateLayout, *s); err != nil {
		return "due_date must be YYYY-MM-DD"
	}
	return ""
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
