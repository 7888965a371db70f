package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"

	"github.com/rs/zerolog/log"
)

// maxRemaining caps the time sent for unlimited deadlines, which JSON
// cannot encode.
const maxRemaining = float64(time.Hour / time.Millisecond)

// RemoteAgent asks an agent served over HTTP for its moves. Any failure to
// get an answer in time forfeits the turn with searcher.NoMove.
type RemoteAgent struct {
	url    string
	client *http.Client
	last   searcher.SearchMetric
}

func NewRemoteAgent(url string) *RemoteAgent {
	return &RemoteAgent{url: strings.TrimSuffix(url, "/"), client: &http.Client{}}
}

func (a *RemoteAgent) GetMove(state searcher.State, deadline searcher.Deadline) searcher.Move {
	a.last = searcher.SearchMetric{StartTime: time.Now()}
	defer func() { a.last.Duration = time.Since(a.last.StartTime) }()

	board, ok := state.(*game.Board)
	if !ok {
		panic("unexpected state type")
	}
	remaining := math.Min(deadline.RemainingMillis(), maxRemaining)
	if remaining <= 0 {
		return searcher.NoMove
	}
	resp, err := a.requestMove(board, remaining)
	if err != nil {
		log.Debug().Str("url", a.url).Err(err).Msg("remote agent did not answer")
		return searcher.NoMove
	}

	a.last.Depth = resp.Depth
	a.last.Nodes = resp.Nodes
	a.last.Cutoffs = resp.Cutoffs
	return resp.Move
}

func (a *RemoteAgent) Metrics() searcher.SearchMetric {
	return a.last
}

// requestMove posts the board to /move, giving up when the turn's time
// runs out.
func (a *RemoteAgent) requestMove(board *game.Board, remaining float64) (agent.MoveResponse, error) {
	var out agent.MoveResponse

	body, err := json.Marshal(agent.MoveRequest{Board: board.Snapshot(), RemainingMillis: remaining})
	if err != nil {
		return out, fmt.Errorf("failed to encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(remaining*float64(time.Millisecond)))
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url+"/move", bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return out, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("failed to decode move: %w", err)
	}
	return out, nil
}
