package generation

import "context"

// StubGenerator is the offline backend used when no API key is configured.
// It marks every response as a placeholder so strategies substitute their
// simulated answer text, keeping runs reproducible without network access.
type StubGenerator struct{}

// NewStubGenerator creates a stub backend.
func NewStubGenerator() *StubGenerator {
	return &StubGenerator{}
}

func (s *StubGenerator) Generate(ctx context.Context, req Request) (*Response, error) {
	return &Response{Placeholder: true}, nil
}
