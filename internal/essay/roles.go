package essay

import (
	"regexp"

	"github.com/flyready/question-engine/pkg/textkor"
)

// Local sentence-role tagging, used when no extraction collaborator is
// available. Priority: result beats action; sentences that cannot anchor a
// question (promises, slogans, quotes of others) are blocked outright.

var (
	nonQuestionableRe = regexp.MustCompile(
		`(하겠습니다|드리겠습니다|것입니다|약속드|다짐|각오|인사말|감사합니다|존경하는|라고 말씀|라고 하셨)`)
	resultConnectorRe = regexp.MustCompile(`(그 결과|결과적으로|덕분에|이를 통해|마침내|결국)`)
	resultVerbRe      = regexp.MustCompile(
		`(성과|개선|해결|달성|증가|감소|만족|효율|향상|단축)[^.]*(되었|됐|했|있었)`)
	weakResultRe   = regexp.MustCompile(`(좋아졌|나아졌)`)
	actionTagRe    = regexp.MustCompile(`(대응|처리|조치|안내|확인|관리|개선|조정|정리|보고|설득|응대|공유|협의|조율|진행|수행)`)
	actionDidRe    = regexp.MustCompile(`(했|하였다|했습니다)`)
	resultDigitsRe = regexp.MustCompile(`\d`)
)

type sentenceRole int

const (
	roleNone sentenceRole = iota
	roleAction
	roleResult
)

func tagRole(s string) sentenceRole {
	if s == "" || nonQuestionableRe.MatchString(s) {
		return roleNone
	}
	if resultConnectorRe.MatchString(s) || resultVerbRe.MatchString(s) {
		return roleResult
	}
	if resultDigitsRe.MatchString(s) && weakResultRe.MatchString(s) {
		return roleResult
	}
	if actionTagRe.MatchString(s) && actionDidRe.MatchString(s) {
		return roleAction
	}
	return roleNone
}

const maxRoleSentences = 12

// TagActionResult splits the answer into sentences and returns the action
// and result sentences suitable as anchors, capped and in original order.
func TagActionResult(answer string) (actions, results []string) {
	for _, s := range textkor.SplitSentences(textkor.NormalizeSpace(answer)) {
		switch tagRole(s) {
		case roleAction:
			if len(actions) < maxRoleSentences {
				actions = append(actions, s)
			}
		case roleResult:
			if len(results) < maxRoleSentences {
				results = append(results, s)
			}
		}
	}
	return textkor.DedupKeepOrder(actions), textkor.DedupKeepOrder(results)
}
