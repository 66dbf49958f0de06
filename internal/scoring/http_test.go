package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truthscore/truthbench/internal/models"
)

func TestHTTPScorer_Score(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		var gotReq scoreRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			json.NewEncoder(w).Encode(models.ScoreResult{
				EvidenceScore:      0.8,
				Consistency:        0.7,
				LanguageConfidence: 0.9,
				Coverage:           0.6,
				TruthScore:         0.75,
				Decision:           models.DecisionAccept,
			})
		}))
		defer srv.Close()

		s := NewHTTPScorer(srv.URL, 0)
		result, err := s.Score(context.Background(), "Is the sky blue?", "Yes.")
		require.NoError(t, err)

		require.Equal(t, "Is the sky blue?", gotReq.Question)
		require.Equal(t, "Yes.", gotReq.Answer)
		require.Equal(t, 0.75, result.TruthScore)
		require.Equal(t, models.DecisionAccept, result.Decision)
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := NewHTTPScorer(srv.URL, 0).Score(context.Background(), "q", "a")
		require.ErrorContains(t, err, "status 500")
	})

	t.Run("unknown decision", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"decision": "SHRUG"})
		}))
		defer srv.Close()

		_, err := NewHTTPScorer(srv.URL, 0).Score(context.Background(), "q", "a")
		require.ErrorContains(t, err, "unknown decision")
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		_, err := NewHTTPScorer("http://127.0.0.1:1", 0).Score(context.Background(), "q", "a")
		require.Error(t, err)
	})
}

func TestStaticScorer(t *testing.T) {
	t.Run("default accepts", func(t *testing.T) {
		r, err := NewStaticScorer().Score(context.Background(), "q", "a")
		require.NoError(t, err)
		require.Equal(t, models.DecisionAccept, r.Decision)
		require.Equal(t, 0.6, r.TruthScore)
	})

	t.Run("per-question override", func(t *testing.T) {
		s := NewStaticScorer().SetResult("q2", models.ScoreResult{Decision: models.DecisionRefuse})

		r, err := s.Score(context.Background(), "q1", "a")
		require.NoError(t, err)
		require.Equal(t, models.DecisionAccept, r.Decision)

		r, err = s.Score(context.Background(), "q2", "a")
		require.NoError(t, err)
		require.Equal(t, models.DecisionRefuse, r.Decision)
	})

	t.Run("FailNext fails exactly once", func(t *testing.T) {
		s := NewStaticScorer()
		s.FailNext()

		_, err := s.Score(context.Background(), "q", "a")
		require.Error(t, err)

		_, err = s.Score(context.Background(), "q", "a")
		require.NoError(t, err)
	})
}
