package question

import (
	"regexp"
	"sort"

	"github.com/flyready/question-engine/pkg/textkor"
)

// Anchor rule: only action or result sentences may anchor a question, action
// first, result second. When neither survives the filters there is no anchor.

var (
	actionVerbRe    = regexp.MustCompile(`(했|하였다|했습니다|진행|수행|처리|대응|조치|확인|안내|관리|개선|조정|정리|공유|보고|설득)`)
	resultChangeRe  = regexp.MustCompile(`(성과|개선|해결|달성|증가|감소|만족|효율|재발\s*방지|오류\s*감소|불만\s*해소)`)
	resultBecameRe  = regexp.MustCompile(`(되었|됐다|되었습|되었고|되었으며|되었다)`)
	resultTrendRe   = regexp.MustCompile(`(증가|감소|개선|달성|해결|줄|늘|단축|향상)`)
	digitRe         = regexp.MustCompile(`\d`)
	anchorBlockedRe = regexp.MustCompile(`^(그|이|저|그것|이것|저것)[은는이가]?\s`)

	// Decision and role-adjustment markers score an action sentence up.
	actionPriorityRes = []*regexp.Regexp{
		regexp.MustCompile(`(선택|판단|결정)`),
		regexp.MustCompile(`(역할|분담|조율|조정)`),
		regexp.MustCompile(`(대응|대처|수습)`),
	}
	resultPriorityRes = []*regexp.Regexp{
		regexp.MustCompile(`(성과|달성|해결)`),
		regexp.MustCompile(`(만족|감사|호평)`),
	}
)

func anchorActionLike(s string) bool {
	s = textkor.NormalizeSpace(s)
	if s == "" || anchorBlockedRe.MatchString(s) {
		return false
	}
	return actionVerbRe.MatchString(s)
}

func anchorResultLike(s string) bool {
	s = textkor.NormalizeSpace(s)
	if s == "" || anchorBlockedRe.MatchString(s) {
		return false
	}
	if resultChangeRe.MatchString(s) && (digitRe.MatchString(s) || resultBecameRe.MatchString(s)) {
		return true
	}
	return digitRe.MatchString(s) && resultTrendRe.MatchString(s)
}

func scoreAnchor(s string, priority []*regexp.Regexp, loRunes, hiRunes int) int {
	s = textkor.NormalizeSpace(s)
	if s == "" {
		return -999
	}
	sc := 0
	for _, re := range priority {
		if re.MatchString(s) {
			sc += 3
		}
	}
	if digitRe.MatchString(s) {
		sc++
	}
	n := runeLen(s)
	if n < 12 {
		sc -= 2
	}
	if n >= loRunes && n <= hiRunes {
		sc++
	}
	return sc
}

func bestAnchor(cands []string, priority []*regexp.Regexp, loRunes, hiRunes int) string {
	type ranked struct {
		score int
		tie   uint64
		text  string
	}
	rs := make([]ranked, 0, len(cands))
	for _, s := range cands {
		rs = append(rs, ranked{scoreAnchor(s, priority, loRunes, hiRunes), StableSeed(s), s})
	}
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].score != rs[j].score {
			return rs[i].score > rs[j].score
		}
		return rs[i].tie < rs[j].tie
	})
	return rs[0].text
}

// PickAnchor selects the essay excerpt that justifies the deep and follow-up
// questions. Ties break on a stable hash so the choice is reproducible.
func PickAnchor(actionSents, resultSents []string) string {
	var acts []string
	for _, s := range textkor.DedupKeepOrder(actionSents) {
		if anchorActionLike(s) {
			acts = append(acts, s)
		}
	}
	if len(acts) > 0 {
		return bestAnchor(acts, actionPriorityRes, 40, 160)
	}
	var ress []string
	for _, s := range textkor.DedupKeepOrder(resultSents) {
		if anchorResultLike(s) {
			ress = append(ress, s)
		}
	}
	if len(ress) > 0 {
		return bestAnchor(ress, resultPriorityRes, 30, 180)
	}
	return ""
}
