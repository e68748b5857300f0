package essay

import (
	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/pkg/textkor"
)

const topKeywordCount = 10

// basisFromRecord builds the A/B pair from an extraction record's validated
// action/result sentences, filling any missing side from the local fallback.
func basisFromRecord(rec *domain.AttackPointRecord, qtype domain.QuestionType, answer string) (domain.Basis, domain.Basis, bool) {
	if rec == nil {
		return domain.Basis{}, domain.Basis{}, false
	}
	var acts, ress []string
	for _, s := range rec.ActionSentences {
		if validBasisText(s) {
			acts = append(acts, s)
		}
	}
	for _, s := range rec.ResultSentences {
		if validBasisText(s) {
			ress = append(ress, s)
		}
	}
	if len(acts) == 0 && len(ress) == 0 {
		return domain.Basis{}, domain.Basis{}, false
	}

	var a, b domain.Basis
	if len(acts) > 0 {
		a = domain.Basis{Text: textkor.TrimNoEllipsis(textkor.StripEllipsis(acts[0]), 120), Kind: domain.BasisAction}
	}
	switch {
	case len(ress) > 0:
		b = domain.Basis{Text: textkor.TrimNoEllipsis(textkor.StripEllipsis(ress[0]), 120), Kind: domain.BasisResult}
	case len(acts) > 1:
		b = domain.Basis{Text: textkor.TrimNoEllipsis(textkor.StripEllipsis(acts[1]), 120), Kind: domain.BasisResult}
	}

	if a.Text == "" || b.Text == "" {
		fbA, fbB := PickBasisPair(qtype, answer)
		if a.Text == "" {
			a = fbA
		}
		if b.Text == "" {
			b = fbB
		}
	}
	return a, b, true
}

// Analyze turns a raw essay into the analyzed items question generation
// consumes. recs is positional per item and may be nil or shorter than the
// item list; analysis succeeds without it.
func Analyze(essay string, recs []*domain.AttackPointRecord) []domain.EssayItem {
	raw := SplitItems(essay)
	items := make([]domain.EssayItem, 0, len(raw))

	for i, ri := range raw {
		prompt := textkor.NormalizeSpace(ri.Prompt)
		answer := textkor.NormalizeSpace(ri.Answer)
		qtype := ClassifyPrompt(prompt)

		var rec *domain.AttackPointRecord
		if i < len(recs) {
			rec = recs[i]
		}

		a, b, ok := basisFromRecord(rec, qtype, ri.Answer)
		if !ok {
			a, b = PickBasisPair(qtype, ri.Answer)
		}

		actions, results := TagActionResult(ri.Answer)
		if rec != nil {
			actions = append(append([]string{}, rec.ActionSentences...), actions...)
			results = append(append([]string{}, rec.ResultSentences...), results...)
		}

		items = append(items, domain.EssayItem{
			Index:       i + 1,
			Prompt:      prompt,
			Answer:      answer,
			Type:        qtype,
			Keywords:    TopicKeywords(ri.Answer, topKeywordCount),
			Situation:   SituationSnippet(ri.Answer, qtype),
			BasisA:      a,
			BasisB:      b,
			ActionSents: textkor.DedupKeepOrder(actions),
			ResultSents: textkor.DedupKeepOrder(results),
		})
	}
	return items
}
