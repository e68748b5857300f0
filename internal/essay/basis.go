package essay

import (
	"regexp"
	"strings"

	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/pkg/textkor"
)

// Basis selection: each question type allows different evidence. Experience
// items quote actions, value items quote priority calls and their risks,
// motivation items quote reasons and what sustains them.

var (
	basisBareParticleRe = regexp.MustCompile(`[을를이가은는와과]$`)

	actionCandRe = regexp.MustCompile(
		`(대응|처리|해결|조치|안내|확인|관리|개선|수정|운영|수행|조정|정리|보고|설득|제안|설명|리드|주도|응대|공유|협의|조율|요청)`)
	actionVerbCandRe = regexp.MustCompile(
		`(했다|했습니다|하였다|진행했|수행했|처리했|대응했|관리했|조치했|확인했)`)
	choiceCandRe = regexp.MustCompile(
		`(우선순위|우선|선택|결정|판단|버리|포기|양보|집중|먼저|나중|충돌|갈등|트레이드오프|리스크)`)
	motivationCandRe = regexp.MustCompile(
		`(지원|동기|이유|목표|꿈|커리어|장기|지속|버티|현실|조건|압박|불확실|책임|역할|성장|학습)`)

	roleMarkerRe    = regexp.MustCompile(`(팀|동료|협업|소통|조율|보고|리드|주도|담당|책임)`)
	conflictRe      = regexp.MustCompile(`(충돌|갈등|동시에|우선순위|양보|포기|먼저|나중)`)
	riskMarkerRe    = regexp.MustCompile(`(리스크|예외|문제|위험|부작용|재발|대안)`)
	reasonMarkerRe  = regexp.MustCompile(`(지원|동기|이유|목표|꿈|직무|역할)`)
	sustainMarkerRe = regexp.MustCompile(`(장기|지속|버티|현실|조건|압박|불확실|유지)`)

	selfRefLeadRe     = regexp.MustCompile(`^(저는|제가|저의|본인은|본인이)\s*`)
	declarativeTailRe = regexp.MustCompile(
		`(할 것입니다|될 것입니다|것입니다|하겠습니다|드리겠습니다|있겠습니다|약속드립니다)\.?$`)
	basisKeyPhraseRes = []*regexp.Regexp{
		regexp.MustCompile(`(고객[^,.]*)`),
		regexp.MustCompile(`(서비스[^,.]*)`),
		regexp.MustCompile(`(안전[^,.]*)`),
		regexp.MustCompile(`(팀[^,.]*협[^,.]*)`),
		regexp.MustCompile(`(미소[^,.]*)`),
	}
)

var basisIncompleteEndings = []string{
	"향한", "위한", "통한", "대한", "관한",
	"하는", "되는", "같은", "다른", "있는", "없는",
	"라는", "이라는", "라고 하는",
	"과의", "와의", "에서의", "으로의", "로의",
	"처럼", "같이", "대로",
	"하고", "하며", "하면서", "하여", "해서",
	"되고", "되며", "으며", "며", "면서",
	"지만", "는데", "니까", "므로", "어서", "아서",
	"려고", "으려고", "고자", "도록",
}

// validBasisText rejects fragments that dangle grammatically and could not
// be quoted back to the applicant as evidence.
func validBasisText(text string) bool {
	t := strings.TrimSpace(text)
	if len([]rune(t)) < 10 {
		return false
	}
	for _, e := range basisIncompleteEndings {
		if strings.HasSuffix(t, e) {
			return false
		}
	}
	if basisBareParticleRe.MatchString(t) && len([]rune(t)) < 25 {
		return false
	}
	return true
}

// cleanBasisText reduces a sentence to the quotable core: self references
// and declarative tails go, and overlong text collapses to its key phrase.
func cleanBasisText(text string) string {
	t := textkor.NormalizeSpace(text)
	if t == "" {
		return ""
	}
	t = selfRefLeadRe.ReplaceAllString(t, "")
	t = selfMidRe.ReplaceAllString(t, " ")
	t = declarativeTailRe.ReplaceAllString(t, "")
	t = textkor.NormalizeSpace(t)

	if len([]rune(t)) > 60 {
		for _, re := range basisKeyPhraseRes {
			if m := re.FindStringSubmatch(t); m != nil && len([]rune(m[1])) >= 8 {
				t = textkor.TrimNoEllipsis(m[1], 60)
				break
			}
		}
	}
	return textkor.TrimNoEllipsis(t, 80)
}

const candScanLimit = 26

func collectCandidates(answer string, match func(string) bool, max int) []string {
	sents := textkor.SplitSentences(textkor.NormalizeSpace(answer))
	if len(sents) > candScanLimit {
		sents = sents[:candScanLimit]
	}
	var out []string
	seen := map[string]struct{}{}
	for _, s := range sents {
		ss := textkor.TrimNoEllipsis(textkor.StripEllipsis(textkor.NormalizeSpace(s)), 120)
		if ss == "" || !match(ss) {
			continue
		}
		if _, dup := seen[ss]; dup {
			continue
		}
		seen[ss] = struct{}{}
		out = append(out, ss)
		if len(out) >= max {
			break
		}
	}
	return out
}

func actionCandidates(answer string, max int) []string {
	return collectCandidates(answer, func(s string) bool {
		return actionCandRe.MatchString(s) || actionVerbCandRe.MatchString(s)
	}, max)
}

func choiceCandidates(answer string, max int) []string {
	return collectCandidates(answer, choiceCandRe.MatchString, max)
}

func motivationCandidates(answer string, max int) []string {
	return collectCandidates(answer, motivationCandRe.MatchString, max)
}

func firstMatching(cands []string, re *regexp.Regexp) string {
	for _, s := range cands {
		if re.MatchString(s) {
			return s
		}
	}
	return ""
}

// PickBasisPair selects the two rationale excerpts (A and B) allowed for a
// question type, with fixed literal fallbacks so a basis always exists.
func PickBasisPair(qtype domain.QuestionType, answer string) (domain.Basis, domain.Basis) {
	switch qtype {
	case domain.QuestionValueFit:
		choices := choiceCandidates(answer, 10)
		a := firstMatching(choices, conflictRe)
		if a == "" && len(choices) > 0 {
			a = choices[0]
		}
		if a == "" {
			a = "고객 요구와 규정 준수가 동시에 걸린 상황에서 선택을 정리한 내용"
		}
		b := firstMatching(choices, riskMarkerRe)
		if b == "" && len(choices) > 1 {
			b = choices[1]
		}
		if b == "" {
			b = "선택의 부작용을 고려해 보완한 내용"
		}
		return domain.Basis{Text: cleanBasisText(a), Kind: domain.BasisPriority},
			domain.Basis{Text: cleanBasisText(b), Kind: domain.BasisRisk}

	case domain.QuestionMotivation:
		mots := motivationCandidates(answer, 10)
		a := firstMatching(mots, reasonMarkerRe)
		if a == "" && len(mots) > 0 {
			a = mots[0]
		}
		if a == "" {
			a = "직무 선택 이유와 목표를 설명한 내용"
		}
		b := firstMatching(mots, sustainMarkerRe)
		if b == "" && len(mots) > 1 {
			b = mots[1]
		}
		if b == "" {
			b = "현실 조건이 바뀌어도 지속할 수 있는 방식에 대한 내용"
		}
		return domain.Basis{Text: cleanBasisText(a), Kind: domain.BasisReason},
			domain.Basis{Text: cleanBasisText(b), Kind: domain.BasisSustain}

	default: // experience
		acts := actionCandidates(answer, 8)
		a := ""
		if len(acts) > 0 {
			a = acts[0]
		}
		if a == "" {
			a = "변수가 발생한 상황에서 해야 할 일을 정리하고 실행한 내용"
		}
		b := ""
		if len(acts) > 1 {
			b = firstMatching(acts[1:], roleMarkerRe)
			if b == "" {
				b = acts[1]
			}
		}
		if b == "" {
			b = "팀과 역할을 나누어 실행한 내용"
		}
		return domain.Basis{Text: cleanBasisText(a), Kind: domain.BasisAction},
			domain.Basis{Text: cleanBasisText(b), Kind: domain.BasisRole}
	}
}
