package agent

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"isolation/game"
	"isolation/searcher"

	"github.com/stretchr/testify/require"
)

func postMove(t *testing.T, srv *httptest.Server, body []byte) (*http.Response, MoveResponse) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/move", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out MoveResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func TestAgentServer(t *testing.T) {
	srv := httptest.NewServer(NewHandler(NewAlphaBetaAgent(searcher.WithEvaluator(game.Improved), searcher.WithMaxDepth(3))))
	defer srv.Close()

	t.Run("ping", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/ping")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("serves a legal move", func(t *testing.T) {
		b := opened(t, searcher.Move{X: 3, Y: 3}, searcher.Move{X: 0, Y: 0})
		body, err := json.Marshal(MoveRequest{Board: b.Snapshot(), RemainingMillis: 1000})
		require.NoError(t, err)

		resp, got := postMove(t, srv, body)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, b.LegalMoves(), got.Move)
		require.Equal(t, 3, got.Depth, "Search should reach the configured max depth")
		require.Positive(t, got.Nodes)
	})

	t.Run("centre opening", func(t *testing.T) {
		body, err := json.Marshal(MoveRequest{Board: game.NewBoard(7, 7).Snapshot(), RemainingMillis: 1000})
		require.NoError(t, err)

		_, got := postMove(t, srv, body)

		require.Equal(t, searcher.Move{X: 3, Y: 3}, got.Move)
	})

	t.Run("no time left", func(t *testing.T) {
		b := opened(t, searcher.Move{X: 3, Y: 3}, searcher.Move{X: 0, Y: 0})
		body, err := json.Marshal(MoveRequest{Board: b.Snapshot(), RemainingMillis: 0})
		require.NoError(t, err)

		resp, got := postMove(t, srv, body)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, searcher.NoMove, got.Move)
	})

	t.Run("malformed payload", func(t *testing.T) {
		resp, _ := postMove(t, srv, []byte("{"))

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid board", func(t *testing.T) {
		body, err := json.Marshal(MoveRequest{Board: game.Snapshot{Width: -1, Height: 3}})
		require.NoError(t, err)

		resp, _ := postMove(t, srv, body)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("wrong method", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/move")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
