package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/truthscore/truthbench/internal/generation"
	"github.com/truthscore/truthbench/internal/models"
)

const (
	ragSystemPrompt = "You are a helpful assistant that answers questions based on the provided context. \n" +
		"If the context doesn't contain enough information to answer the question, say so."

	// DefaultTopK is the number of documents retrieved per query.
	DefaultTopK = 3
)

// Retriever fetches documents relevant to a query. Retrieval mechanics are
// external; the shipped implementation synthesizes placeholder documents.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]string, error)
}

// PlaceholderRetriever returns synthetic documents so the augmented prompt
// shape can be exercised without a vector store.
type PlaceholderRetriever struct{}

// NewPlaceholderRetriever creates the stand-in document source.
func NewPlaceholderRetriever() *PlaceholderRetriever {
	return &PlaceholderRetriever{}
}

func (r *PlaceholderRetriever) Retrieve(ctx context.Context, query string, topK int) ([]string, error) {
	docs := make([]string, 0, topK)
	for i := 1; i <= topK; i++ {
		docs = append(docs, fmt.Sprintf("Document %d related to: %s", i, query))
	}
	return docs, nil
}

// ContextAugmented retrieves documents and conditions generation on them.
type ContextAugmented struct {
	generator generation.Generator
	retriever Retriever
	model     string
	topK      int
}

// NewContextAugmented creates the rag strategy. A non-positive topK falls
// back to DefaultTopK.
func NewContextAugmented(g generation.Generator, r Retriever, model string, topK int) *ContextAugmented {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &ContextAugmented{generator: g, retriever: r, model: model, topK: topK}
}

func (c *ContextAugmented) Generate(ctx context.Context, prompt string) (*models.Generation, error) {
	docs, err := c.retriever.Retrieve(ctx, prompt, c.topK)
	if err != nil {
		return errorGeneration(models.MethodRAG, c.model,
			fmt.Sprintf("[ERROR] Failed to generate RAG response: %v", err), err), nil
	}

	bullets := make([]string, 0, len(docs))
	for _, doc := range docs {
		bullets = append(bullets, "- "+doc)
	}
	contextBlock := strings.Join(bullets, "\n\n")

	userPrompt := fmt.Sprintf("Context:\n%s\n\nQuestion: %s\n\nAnswer based on the context above:",
		contextBlock, prompt)

	resp, err := c.generator.Generate(ctx, generation.Request{
		System:      ragSystemPrompt,
		Prompt:      userPrompt,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	})
	if err != nil {
		return errorGeneration(models.MethodRAG, c.model,
			fmt.Sprintf("[ERROR] Failed to generate RAG response: %v", err), err), nil
	}

	if resp.Placeholder {
		return &models.Generation{
			Answer:        fmt.Sprintf("[PLACEHOLDER] RAG response to: %s (with %d retrieved docs)", prompt, len(docs)),
			Method:        models.MethodRAG,
			Model:         c.model,
			IsPlaceholder: true,
			RetrievedDocs: len(docs),
		}, nil
	}

	usage := resp.Usage
	return &models.Generation{
		Answer:        resp.Text,
		Method:        models.MethodRAG,
		Model:         c.model,
		Usage:         &usage,
		RetrievedDocs: len(docs),
	}, nil
}
