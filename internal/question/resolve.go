package question

import (
	"strings"

	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/pkg/textkor"
)

// AttackCategory names the three classes of attackable material an
// extraction record can supply.
type AttackCategory string

const (
	CategoryIdealized   AttackCategory = "idealized"
	CategoryRisk        AttackCategory = "risk"
	CategoryAlternative AttackCategory = "alternative"
)

// AttackPoint is the resolver's output: the fragment a deep question will be
// built around and how it should be attacked. A zero Point means no attack
// point survived and the renderer must use a generic question.
type AttackPoint struct {
	Point    string
	Category AttackCategory
	Tier     int // fallback tier that produced it, 1..4 (0 when empty)
}

// categoryPriority returns the category rotation for a version. Rotating the
// order is what makes versions 1..6 probe different angles of the same essay.
func categoryPriority(version int) []AttackCategory {
	switch version % 3 {
	case 1:
		return []AttackCategory{CategoryIdealized, CategoryRisk, CategoryAlternative}
	case 2:
		return []AttackCategory{CategoryRisk, CategoryIdealized, CategoryAlternative}
	default:
		return []AttackCategory{CategoryAlternative, CategoryIdealized, CategoryRisk}
	}
}

func categoryCandidates(rec *domain.AttackPointRecord, cat AttackCategory) []string {
	if rec == nil {
		return nil
	}
	switch cat {
	case CategoryIdealized:
		return rec.OverIdealizedPoints
	case CategoryRisk:
		return rec.RiskPoints
	case CategoryAlternative:
		return rec.RejectedAlternatives
	}
	return nil
}

// Keywords that flag an over-idealized sentence when the extraction record
// yields nothing usable.
var idealizingKeywords = []string{
	"함께", "극복", "소통", "팀워크", "협력", "해결", "성장", "노력", "배려", "따뜻",
}

const (
	keywordScanMinRunes = 15
	keywordScanMaxRunes = 100
)

// scanIdealizedSentence is fallback tier 2: the first complete sentence of
// the raw answer carrying an idealizing keyword. Document order wins over
// seeded choice here so the most prominent claim is the one attacked.
func scanIdealizedSentence(rawAnswer string) string {
	for _, sent := range textkor.SplitSentences(rawAnswer) {
		if runeLen(sent) < keywordScanMinRunes || !IsCompleteSentence(sent) {
			continue
		}
		if !containsAny(sent, idealizingKeywords) {
			continue
		}
		if runeLen(sent) > keywordScanMaxRunes {
			sent = string([]rune(sent)[:keywordScanMaxRunes])
		}
		return sent
	}
	return ""
}

// validCandidates filters a candidate list through the validity gates shared
// by every tier.
func validCandidates(cands []string) []string {
	var out []string
	for _, c := range cands {
		c = textkor.NormalizeSpace(strings.TrimSpace(c))
		if usableFragment(c) {
			out = append(out, c)
		}
	}
	return textkor.DedupKeepOrder(out)
}

// ResolveAttackPoint walks the fallback ladder for one essay item:
//
//	tier 1: validated extraction lists, in the version's category order
//	tier 2: first idealizing-keyword sentence of the raw answer
//	tier 3: any validated sentence of the raw answer, seeded pick
//	tier 4: the extraction claim itself
//
// It never errors; an empty AttackPoint tells the renderer to go generic.
func ResolveAttackPoint(rec *domain.AttackPointRecord, rawAnswer string, base uint64, version int) AttackPoint {
	for _, cat := range categoryPriority(version) {
		cands := validCandidates(categoryCandidates(rec, cat))
		if len(cands) == 0 {
			continue
		}
		idx := PickIndex(base, version, multCategory, categorySalts[cat], len(cands))
		return AttackPoint{Point: cands[idx], Category: cat, Tier: 1}
	}

	if sent := scanIdealizedSentence(rawAnswer); sent != "" {
		return AttackPoint{Point: sent, Category: CategoryIdealized, Tier: 2}
	}

	if cands := validCandidates(textkor.SplitSentences(rawAnswer)); len(cands) > 0 {
		idx := PickIndex(base, version, multAny, 0, len(cands))
		return AttackPoint{Point: cands[idx], Category: CategoryIdealized, Tier: 3}
	}

	if rec != nil {
		// the claim is the extractor's own summary, so completeness is the
		// only gate it must clear
		if claim := textkor.NormalizeSpace(strings.TrimSpace(rec.Claim)); IsCompleteSentence(claim) {
			return AttackPoint{Point: claim, Category: CategoryIdealized, Tier: 4}
		}
	}

	return AttackPoint{}
}
