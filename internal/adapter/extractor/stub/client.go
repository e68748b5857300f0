// Package stub provides a deterministic, offline extraction collaborator.
// It is the wired client when no API key is configured, so local and test
// runs exercise the full pipeline without network access.
package stub

import (
	"context"
	"strings"

	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/pkg/textkor"
)

// Client derives a minimal record from each item's own sentences. The output
// is a pure function of the input, keeping cached sets stable across runs.
type Client struct{}

// New constructs a stub Client.
func New() *Client { return &Client{} }

// Extract returns one record per item, with the first sentence of the answer
// as the claim. Everything else is left for local analysis to fill in.
func (c *Client) Extract(_ context.Context, items []domain.EssayItem, _ string) ([]*domain.AttackPointRecord, error) {
	recs := make([]*domain.AttackPointRecord, len(items))
	for i, it := range items {
		sents := textkor.SplitSentences(it.Answer)
		if len(sents) == 0 {
			continue
		}
		claim := strings.TrimSpace(sents[0])
		if claim == "" {
			continue
		}
		recs[i] = &domain.AttackPointRecord{Claim: claim}
	}
	return recs, nil
}
