package models

// Method identifies an inference strategy.
type Method string

const (
	MethodVanilla         Method = "vanilla"
	MethodRAG             Method = "rag"
	MethodSelfConsistency Method = "self_consistency"
	MethodTruthScore      Method = "truthscore"
)

// AllMethods lists the configured methods in their canonical reporting order.
var AllMethods = []Method{MethodVanilla, MethodRAG, MethodSelfConsistency, MethodTruthScore}

// Decision is the scorer's three-way verdict on an answer.
type Decision string

const (
	DecisionAccept    Decision = "ACCEPT"
	DecisionQualified Decision = "QUALIFIED"
	DecisionRefuse    Decision = "REFUSE"
)

// OutcomeCategory is the post-hoc classification of a generated answer.
type OutcomeCategory string

const (
	CategoryCorrectAnswer      OutcomeCategory = "Correct Answer"
	CategoryOverconfidentError OutcomeCategory = "Overconfident Error"
	CategoryCorrectRefusal     OutcomeCategory = "Correct Refusal"
	CategoryHedgedIncorrect    OutcomeCategory = "Hedged but Incorrect"
)

// AllCategories lists the outcome categories in their canonical reporting order.
var AllCategories = []OutcomeCategory{
	CategoryCorrectAnswer,
	CategoryOverconfidentError,
	CategoryCorrectRefusal,
	CategoryHedgedIncorrect,
}

// TokenUsage accumulates token counts across one or more backend calls.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another usage record into u.
func (u *TokenUsage) Add(other TokenUsage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// ScoreResult is the structured truthfulness assessment returned by a Scorer.
// All component scores are in [0, 1].
type ScoreResult struct {
	EvidenceScore      float64  `json:"evidence_score"`
	Consistency        float64  `json:"consistency"`
	LanguageConfidence float64  `json:"language_confidence"`
	Coverage           float64  `json:"coverage"`
	TruthScore         float64  `json:"truth_score"`
	Decision           Decision `json:"decision"`
}

// Generation is the result of one strategy invocation. It is created per call
// and never mutated after being returned.
type Generation struct {
	Answer        string      `json:"answer"`
	Method        Method      `json:"method"`
	Model         string      `json:"model,omitempty"`
	IsPlaceholder bool        `json:"placeholder"`
	IsError       bool        `json:"error,omitempty"`
	ErrorMsg      string      `json:"error_msg,omitempty"`
	Usage         *TokenUsage `json:"usage,omitempty"`

	// Self-consistency metadata. Samples preserves generation order; Agreement
	// maps each distinct answer to its occurrence count.
	Samples    []string       `json:"samples,omitempty"`
	NumSamples int            `json:"num_samples,omitempty"`
	Agreement  map[string]int `json:"agreement,omitempty"`

	// Context-augmented metadata.
	RetrievedDocs int `json:"retrieved_docs,omitempty"`

	// Truth-gate metadata. ScoreDetails retains the full scorer result even
	// when the raw base answer has been replaced by a refusal.
	BaseMethod   Method       `json:"base_method,omitempty"`
	TruthScore   float64      `json:"truth_score,omitempty"`
	Decision     Decision     `json:"decision,omitempty"`
	Refused      bool         `json:"refused,omitempty"`
	Unscored     bool         `json:"unscored,omitempty"`
	ScoreDetails *ScoreResult `json:"score_details,omitempty"`
}

// Annotation is the classification attached to one method's answer.
type Annotation struct {
	Category  OutcomeCategory `json:"category"`
	IsRefusal bool            `json:"is_refusal"`
	IsHedged  bool            `json:"is_hedged"`
}

// GroundTruth is optional reference information for a prompt.
type GroundTruth struct {
	Answer    string `json:"answer,omitempty"`
	IsCorrect *bool  `json:"is_correct,omitempty"`
}

// ResultEntry holds everything produced for a single prompt: one generation
// per configured method plus the per-method annotations.
type ResultEntry struct {
	Prompt          string                 `json:"prompt"`
	Vanilla         *Generation            `json:"vanilla,omitempty"`
	RAG             *Generation            `json:"rag,omitempty"`
	SelfConsistency *Generation            `json:"self_consistency,omitempty"`
	TruthScore      *Generation            `json:"truthscore,omitempty"`
	GroundTruth     *GroundTruth           `json:"ground_truth,omitempty"`
	Annotations     map[Method]*Annotation `json:"annotations,omitempty"`
}

// Generation returns the stored generation for a method, or nil.
func (e *ResultEntry) Generation(m Method) *Generation {
	switch m {
	case MethodVanilla:
		return e.Vanilla
	case MethodRAG:
		return e.RAG
	case MethodSelfConsistency:
		return e.SelfConsistency
	case MethodTruthScore:
		return e.TruthScore
	default:
		return nil
	}
}

// SetGeneration stores a generation under its method slot. Unknown methods
// are ignored; the method set is closed.
func (e *ResultEntry) SetGeneration(m Method, g *Generation) {
	switch m {
	case MethodVanilla:
		e.Vanilla = g
	case MethodRAG:
		e.RAG = g
	case MethodSelfConsistency:
		e.SelfConsistency = g
	case MethodTruthScore:
		e.TruthScore = g
	}
}

// Summary is the cross-tabulated outcome report for one experiment run.
// Errors and Unscored are tallied separately from the four categories: an
// error placeholder still receives a category (so per-method counts sum to
// the number of annotated prompts) but remains visible as a distinct count.
type Summary struct {
	RunID        string                             `json:"run_id,omitempty"`
	GeneratedAt  string                             `json:"generated_at,omitempty"`
	TotalPrompts int                                `json:"total_prompts"`
	ByMethod     map[Method]map[OutcomeCategory]int `json:"by_method"`
	ByCategory   map[OutcomeCategory]map[Method]int `json:"by_category"`
	Errors       map[Method]int                     `json:"errors,omitempty"`
	Unscored     map[Method]int                     `json:"unscored,omitempty"`
}
