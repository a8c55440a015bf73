package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/faizmokh/pulse/internal/portal"
	"github.com/faizmokh/pulse/internal/wellbeing"
)

// Handler serves the dashboard view contract as JSON for other rendering layers.
type Handler struct {
	fetcher portal.Fetcher
	now     func() time.Time
}

// NewHandler wires a Handler around a portal fetcher.
func NewHandler(fetcher portal.Fetcher) *Handler {
	return &Handler{fetcher: fetcher, now: time.Now}
}

// Router builds the mux router exposing the handler's routes.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/dashboard", h.dashboard).Methods(http.MethodGet)
	return r
}

// SourceStatus is the fetch outcome of one dashboard source.
type SourceStatus struct {
	State     wellbeing.State `json:"state"`
	Error     string          `json:"error,omitempty"`
	Retryable bool            `json:"retryable,omitempty"`
}

// Report is the JSON view contract: the composed view plus the state of each
// source, so failures travel as data.
type Report struct {
	wellbeing.View
	Month string       `json:"month"`
	User  SourceStatus `json:"user_status"`
	Test  SourceStatus `json:"test_status"`
	Diary SourceStatus `json:"diary_status"`
}

// NewReport captures board as a Report.
func NewReport(board *wellbeing.Board) Report {
	return Report{
		View:  board.View(),
		Month: board.Month().String(),
		User:  status(board.User().State, board.User().Err),
		Test:  status(board.Test().State, board.Test().Err),
		Diary: status(board.Diary().State, board.Diary().Err),
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	session, err := bearerSession(r.Header.Get("Authorization"))
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, "Authorization: Bearer <token> header is required")
		return
	}

	month := wellbeing.MonthOf(h.now())
	if value := r.URL.Query().Get("month"); value != "" {
		month, err = wellbeing.ParseMonth(value)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	snap := portal.LoadDashboard(r.Context(), h.fetcher, session, month)
	if errors.Is(snap.UserErr, portal.ErrSessionExpired) {
		writeJSONError(w, http.StatusUnauthorized, "session expired")
		return
	}
	writeJSON(w, http.StatusOK, NewReport(snap.Board()))
}

// bearerSession accepts only the Bearer scheme; other credentials are never
// forwarded to the portal.
func bearerSession(header string) (portal.Session, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return portal.Session{}, portal.ErrNoSession
	}
	return portal.NewSession(token)
}

func status(state wellbeing.State, err error) SourceStatus {
	s := SourceStatus{State: state}
	if err != nil {
		s.Error = err.Error()
		s.Retryable = wellbeing.Retryable(err)
	}
	return s
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encode response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
