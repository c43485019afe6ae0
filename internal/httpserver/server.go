// internal/httpserver/server.go
//
// HTTP assist facade for solver sessions.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON,
//     request logging).
//   - Public endpoints: "/", "/health".
//   - Session endpoints (bearer auth when configured): create, snapshot,
//     apply feedback, candidate list, reset, delete.
//   - Token minting: POST /api/auth/token (only registered with auth on).
//
// Notes:
//   - The facade never hosts a game and never knows a target word; it drives
//     the same elimination sessions as the interactive prompt, behind a
//     second presentation layer.
//   - Each session carries its own mutex, so one request at a time drives a
//     controller and the solver core stays lock-free.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/vmizener/nyt/internal/session"
	"github.com/vmizener/nyt/internal/solver"
	"github.com/vmizener/nyt/internal/store"
	"github.com/vmizener/nyt/internal/words"
)

// SourceFunc builds the word store serving sessions of one word length.
type SourceFunc func(length int) *words.Store

// candidateDump bounds how many candidates an apply response inlines.
const candidateDump = 25

// Server bundles router, session registry, and word source.
type Server struct {
	r      *chi.Mux
	reg    store.Store
	source SourceFunc
	auth   authConfig
	http   *http.Server
}

// New constructs a Server, installs middleware, and registers routes.
// Auth settings are read from the environment (see auth.go).
func New(reg store.Store, source SourceFunc) *Server {
	s := &Server{r: chi.NewRouter(), reg: reg, source: source, auth: authFromEnv()}
	s.http = &http.Server{Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(requestLogger)                   // one structured line per request

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "nyt-assist",
			"endpoints": []string{
				"/health",
				"POST /api/session",
				"GET /api/session/{id}",
				"POST /api/session/{id}/apply",
				"GET /api/session/{id}/candidates",
				"POST /api/session/{id}/reset",
				"DELETE /api/session/{id}",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/api", func(r chi.Router) {
		if s.auth.enabled() {
			r.Post("/auth/token", s.handleToken)
		}
		r.Group(func(r chi.Router) {
			if s.auth.enabled() {
				r.Use(s.requireAuth)
			}
			r.Post("/session", s.handleCreateSession)
			r.Route("/session/{id}", func(r chi.Router) {
				r.Get("/", s.handleSession)
				r.Post("/apply", s.handleApply)
				r.Get("/candidates", s.handleCandidates)
				r.Post("/reset", s.handleReset)
				r.Delete("/", s.handleDelete)
			})
		})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusNotFound, "not found")
	})

	if !s.auth.enabled() {
		log.Warn().Msg("NYT_API_SECRET unset; assist API is open")
	}
	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe begins serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.http.Addr = addr
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// ------------------------------ sessions -----------------------------------

// createReq is the payload for POST /api/session. Both fields are optional.
type createReq struct {
	Length     int `json:"length"`
	MaxGuesses int `json:"maxGuesses"`
}

// applyReq is the payload for POST /api/session/{id}/apply.
type applyReq struct {
	Guess   string `json:"guess"`
	Verdict string `json:"verdict"`
}

// sessionRes is the session snapshot returned by most endpoints.
type sessionRes struct {
	ID         string   `json:"id"`
	Length     int      `json:"length"`
	MaxGuesses int      `json:"maxGuesses"`
	Guesses    int      `json:"guesses"`
	Remaining  int      `json:"remaining"`
	State      string   `json:"state"`
	Candidates []string `json:"candidates,omitempty"`
}

// candidatesRes is returned by GET /api/session/{id}/candidates.
type candidatesRes struct {
	Remaining  int      `json:"remaining"`
	Candidates []string `json:"candidates"`
}

// snapshot renders the session state. With candidates enabled the current
// list is inlined once it is small enough to be useful (same threshold as
// the interactive prompt's auto-dump). Callers must hold the session lock.
func snapshot(sess *store.Session, withCandidates bool) sessionRes {
	ctrl := sess.Controller
	res := sessionRes{
		ID:         sess.ID,
		Length:     ctrl.Config().WordLen,
		MaxGuesses: ctrl.Config().MaxGuesses,
		Guesses:    ctrl.Guesses(),
		Remaining:  ctrl.Remaining(),
		State:      string(ctrl.State()),
	}
	if withCandidates && res.Remaining <= candidateDump {
		res.Candidates = ctrl.Candidates()
	}
	return res
}

// handleCreateSession starts a fresh solver session. An empty body uses the
// default dimensions (5 letters, 6 advisory guesses).
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	length := req.Length
	if length <= 0 {
		length = session.DefaultWordLen
	}
	ctrl, err := session.New(r.Context(), s.source(length), session.Config{
		WordLen:    length,
		MaxGuesses: req.MaxGuesses,
	})
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	sess := store.NewSession(ctrl)
	res := snapshot(sess, false)
	if err := s.reg.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeErr(w, http.StatusInternalServerError, "save failed")
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// lookup fetches the session named by the route, writing a 404 on a miss.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) *store.Session {
	id := chi.URLParam(r, "id")
	sess, err := s.reg.Get(r.Context(), id)
	if err != nil {
		writeErr(w, http.StatusNotFound, "unknown session")
		return nil
	}
	return sess
}

// handleSession returns the current snapshot.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	res := snapshot(sess, false)
	sess.Unlock()
	writeJSON(w, http.StatusOK, res)
}

// handleApply runs one guess/verdict pair through the session's filter.
// Validation failures leave the session untouched.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req applyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}

	sess.Lock()
	defer sess.Unlock()
	if err := sess.Controller.Apply(req.Guess, req.Verdict); err != nil {
		writeErr(w, applyStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snapshot(sess, true))
}

// applyStatus maps controller errors to response codes: terminated or
// out-of-order operations conflict, everything else is input validation.
func applyStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrTerminated), errors.Is(err, session.ErrState):
		return http.StatusConflict
	case errors.Is(err, solver.ErrLength), errors.Is(err, solver.ErrChar):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

// handleCandidates returns the full sorted candidate list.
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	res := candidatesRes{
		Remaining:  sess.Controller.Remaining(),
		Candidates: sess.Controller.Candidates(),
	}
	sess.Unlock()
	writeJSON(w, http.StatusOK, res)
}

// handleReset reloads the session's word source and starts it over.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()
	if err := sess.Controller.Reset(r.Context()); err != nil {
		if errors.Is(err, session.ErrTerminated) {
			writeErr(w, http.StatusConflict, err.Error())
			return
		}
		log.Error().Err(err).Str("id", sess.ID).Msg("reset session")
		writeErr(w, http.StatusInternalServerError, "reset failed")
		return
	}
	writeJSON(w, http.StatusOK, snapshot(sess, false))
}

// handleDelete terminates the session and drops it from the registry.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	sess.Controller.Terminate()
	sess.Unlock()
	if err := s.reg.Delete(r.Context(), sess.ID); err != nil {
		log.Error().Err(err).Str("id", sess.ID).Msg("delete session")
		writeErr(w, http.StatusInternalServerError, "delete failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ------------------------------ responses ----------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

// writeErr writes the error envelope.
func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
