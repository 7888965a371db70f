package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"isolation/game"
	"isolation/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// MoveRequest asks a served agent for its move on board with the given
// time left in the turn.
type MoveRequest struct {
	Board           game.Snapshot `json:"board"`
	RemainingMillis float64       `json:"remaining_ms"`
}

// MoveResponse carries the move and the counters of the search behind it.
// Values are left out since JSON cannot encode infinities.
type MoveResponse struct {
	Move    searcher.Move `json:"move"`
	Depth   int           `json:"depth"`
	Nodes   int64         `json:"nodes"`
	Cutoffs int64         `json:"cutoffs"`
}

// NewHandler serves a over HTTP. Agents keep per-search state, so requests
// are answered one at a time.
func NewHandler(a Agent) http.Handler {
	var mu sync.Mutex

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Post("/move", func(w http.ResponseWriter, r *http.Request) {
		var req MoveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		board, err := game.FromSnapshot(req.Board)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		mu.Lock()
		defer mu.Unlock()

		clock := searcher.NewClock(time.Duration(req.RemainingMillis * float64(time.Millisecond)))
		move := a.GetMove(board, clock)
		metric := a.Metrics()
		log.Debug().Str("request_id", middleware.GetReqID(r.Context())).Stringer("move", move).
			Int("depth", metric.Depth).Int64("nodes", metric.Nodes).Dur("elapsed", clock.Elapsed()).Msg("served move")

		writeJSON(w, http.StatusOK, MoveResponse{
			Move:    move,
			Depth:   metric.Depth,
			Nodes:   metric.Nodes,
			Cutoffs: metric.Cutoffs,
		})
	})

	return r
}

// StartAgentServer serves a on addr until ctx is cancelled.
func StartAgentServer(ctx context.Context, addr string, a Agent) error {
	srv := &http.Server{Addr: addr, Handler: NewHandler(a)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shut down agent server")
		}
	}()

	log.Info().Str("addr", addr).Msg("starting agent server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
