package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/truthscore/truthbench/internal/models"
)

// HTTPScorer calls an external truth-scoring service over HTTP. The service
// accepts {question, answer} and returns the full score result shape.
type HTTPScorer struct {
	endpoint string
	client   *http.Client
}

// NewHTTPScorer creates a scorer client for the given endpoint. A zero
// timeout defaults to 30 seconds; every call is bounded.
func NewHTTPScorer(endpoint string, timeout time.Duration) *HTTPScorer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPScorer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type scoreRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (s *HTTPScorer) Score(ctx context.Context, question, answer string) (*models.ScoreResult, error) {
	body, err := json.Marshal(scoreRequest{Question: question, Answer: answer})
	if err != nil {
		return nil, fmt.Errorf("encoding score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building score request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error("scorer call failed", "endpoint", s.endpoint, "error", err)
		return nil, fmt.Errorf("scorer call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scorer returned status %d", resp.StatusCode)
	}

	var result models.ScoreResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding score result: %w", err)
	}

	switch result.Decision {
	case models.DecisionAccept, models.DecisionQualified, models.DecisionRefuse:
	default:
		return nil, fmt.Errorf("scorer returned unknown decision %q", result.Decision)
	}

	return &result, nil
}
