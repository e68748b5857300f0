package essay

import (
	"regexp"
	"strings"

	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/pkg/textkor"
)

// A situation snippet is quoted inside a question, so it must read as a
// present or hypothetical scene: no past-tense narration and no first-person
// openers.
var (
	situationRe = regexp.MustCompile(
		`(상황|현장|고객|승객|팀|동료|규정|절차|민원|불만|클레임|CS|갈등|충돌|지연|누락|오류|긴급|안전|변경|취소)`)
	pastNarrativeRe = regexp.MustCompile(
		`(이었습니다|였습니다|겪었습니다|있었습니다|왔습니다|했습니다|되었습니다|무너질|쌓아|아픔|위기는|역사|과거|발전을|위상을|사태는|이름은|기업으로서|것입니다|될 것입니다|하겠습니다|드리겠습니다|약속드|할 것입니다)`)
	selfStartRe = regexp.MustCompile(`^(저는|제가|저의|본인은|본인이)`)
	selfLeadRe  = regexp.MustCompile(`^(저는|제가|저의|저도|저만|저를|저에게|제|본인은|본인이)\s*`)
	selfMidRe   = regexp.MustCompile(`\s+(저는|제가)\s+`)
	timeWordRe  = regexp.MustCompile(`(때|중)`)
)

const situationScanLimit = 18

func removeSelfReferences(s string) string {
	s = selfLeadRe.ReplaceAllString(s, "")
	s = selfMidRe.ReplaceAllString(s, " ")
	return textkor.NormalizeSpace(s)
}

func finishSituation(s string) string {
	if !strings.Contains(s, "상황") && !timeWordRe.MatchString(s) {
		s = textkor.NormalizeSpace(s + " 상황")
	}
	return textkor.AutoFixParticles(textkor.SanityEndings(s))
}

// SituationSnippet picks a short scene description from the answer for use
// inside question text, falling back to a per-type default scene.
func SituationSnippet(answer string, qtype domain.QuestionType) string {
	sents := textkor.SplitSentences(textkor.NormalizeSpace(answer))
	if len(sents) > situationScanLimit {
		sents = sents[:situationScanLimit]
	}

	for _, s := range sents {
		ss := textkor.TrimNoEllipsis(textkor.StripEllipsis(textkor.NormalizeSpace(s)), 90)
		if ss == "" || pastNarrativeRe.MatchString(ss) || selfStartRe.MatchString(ss) {
			continue
		}
		if situationRe.MatchString(ss) {
			return finishSituation(ss)
		}
	}

	// second pass: strip the self reference first, then retry
	for _, s := range sents {
		ss := textkor.NormalizeSpace(s)
		if pastNarrativeRe.MatchString(ss) {
			continue
		}
		ss = textkor.TrimNoEllipsis(textkor.StripEllipsis(removeSelfReferences(ss)), 90)
		if len([]rune(ss)) < 10 {
			continue
		}
		if situationRe.MatchString(ss) {
			return finishSituation(ss)
		}
	}

	switch qtype {
	case domain.QuestionValueFit:
		return "고객 요구와 규정 준수가 동시에 걸린 상황"
	case domain.QuestionMotivation:
		return "지원 동기와 현실 조건이 동시에 작동하는 상황"
	default:
		return "현장에서 변수가 발생한 상황"
	}
}
