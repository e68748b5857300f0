// Package domain holds the entities and ports of the question engine.
package domain

import (
	"context"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrUpstreamTimeout = errors.New("upstream timeout")
	ErrSchemaInvalid   = errors.New("schema invalid")
	ErrInternal        = errors.New("internal error")
)

// AirlineType classifies a carrier's service model.
type AirlineType string

const (
	AirlineFSC AirlineType = "FSC" // full-service carrier
	AirlineLCC AirlineType = "LCC" // low-cost carrier
	AirlineHSC AirlineType = "HSC" // hybrid-service carrier
)

// QuestionType is the closed set of essay-prompt categories.
type QuestionType string

const (
	QuestionExperience QuestionType = "경험 요구형"
	QuestionValueFit   QuestionType = "가치·태도 정합성형"
	QuestionMotivation QuestionType = "동기·정체성형"
)

// BasisKind labels what a basis excerpt describes.
type BasisKind string

const (
	BasisAction   BasisKind = "action"
	BasisResult   BasisKind = "result"
	BasisRole     BasisKind = "role"
	BasisPriority BasisKind = "priority"
	BasisRisk     BasisKind = "risk"
	BasisReason   BasisKind = "reason"
	BasisSustain  BasisKind = "sustain"
)

// Basis is one rationale excerpt picked from an essay answer.
type Basis struct {
	Text string
	Kind BasisKind
}

// EssayItem is one analyzed (prompt, answer) pair from the applicant.
// Items are immutable after analysis; a change to the underlying essay text
// produces fresh items (and a fresh cache key), never a mutation.
type EssayItem struct {
	Index       int // 1-based position
	Prompt      string
	Answer      string
	Type        QuestionType
	Keywords    []string // extraction order preserved
	Situation   string
	BasisA      Basis
	BasisB      Basis
	ActionSents []string
	ResultSents []string
}

// AttackPointRecord is the optional per-item output of the extraction
// collaborator. Absence of the whole record is a normal state. Every fragment
// that survives into a question must pass the validity filters first.
type AttackPointRecord struct {
	Claim                string   `json:"claim"`
	DecisionCriteria     []string `json:"decision_criteria"`
	RejectedAlternatives []string `json:"rejected_alternatives"`
	OverIdealizedPoints  []string `json:"over_idealized_points"`
	RiskPoints           []string `json:"risk_points"`
	RepeatabilityQs      []string `json:"repeatability_questions"`
	ActionSentences      []string `json:"action_sentences"`
	ResultSentences      []string `json:"result_sentences"`
}

// QuestionSlot is one of the five output positions of a generated set.
// Question is never empty on any slot the engine returns.
type QuestionSlot struct {
	Type      string `json:"type"`
	Question  string `json:"question"`
	Basis     string `json:"basis"`
	Anchor    string `json:"anchor,omitempty"`
	ValueMeta string `json:"value_meta,omitempty"`
}

// QuestionSet is the atomic 5-slot output for one (essay, airline, version).
type QuestionSet struct {
	Q1 QuestionSlot `json:"q1"`
	Q2 QuestionSlot `json:"q2"`
	Q3 QuestionSlot `json:"q3"`
	Q4 QuestionSlot `json:"q4"`
	Q5 QuestionSlot `json:"q5"`
}

// Slots returns the five slots in order.
func (s *QuestionSet) Slots() []QuestionSlot {
	return []QuestionSlot{s.Q1, s.Q2, s.Q3, s.Q4, s.Q5}
}

// GenerationKey identifies one cached analysis: the essay content hash, the
// canonical airline identity, and the item count. Version is deliberately not
// part of the key; all versions of one essay share an entry.
type GenerationKey struct {
	EssayHash      string
	ExtractionHash string
	Airline        string
	AirlineType    AirlineType
	ItemCount      int
}

// SetRecord is a persisted generation, kept for the history endpoint.
type SetRecord struct {
	ID        string
	EssayHash string
	Airline   string
	Type      AirlineType
	Version   int
	Set       QuestionSet
	CreatedAt time.Time
}

// Extractor (port) produces one AttackPointRecord per essay item, or nil when
// the collaborator has nothing usable. Implementations may block on network
// I/O; the core never does.
type Extractor interface {
	Extract(ctx context.Context, items []EssayItem, airline string) ([]*AttackPointRecord, error)
}

// SetCache (port) memoizes generated sets per (CacheVersion, GenerationKey,
// version). Implementations must tolerate concurrent callers.
type SetCache interface {
	Get(ctx context.Context, key string) (QuestionSet, bool)
	Put(ctx context.Context, key string, set QuestionSet)
	Invalidate(ctx context.Context, keyPrefix string)
}

// SetRepository (port) persists generated sets for later review.
type SetRepository interface {
	Insert(ctx context.Context, rec SetRecord) (string, error)
	ListByEssayHash(ctx context.Context, essayHash string, limit int) ([]SetRecord, error)
}
