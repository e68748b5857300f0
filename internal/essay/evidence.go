package essay

import (
	"regexp"
	"sort"

	"github.com/flyready/question-engine/pkg/textkor"
)

// Aggregate extraction returned with each generation: the strongest evidence
// sentences of an essay and the keywords an interviewer is likely to probe.

var (
	evidenceMarkerRe = regexp.MustCompile(
		`(성과|개선|해결|달성|증가|감소|수상|리드|주도|기여|협업|고객|안전|서비스|불만|민원|클레임|CS|매출|효율|품질)`)
	evidenceDigitRe = regexp.MustCompile(`\d`)
)

func evidenceScore(s string) int {
	sc := 0
	if evidenceDigitRe.MatchString(s) {
		sc += 2
	}
	if evidenceMarkerRe.MatchString(s) {
		sc += 2
	}
	if n := len([]rune(s)); n >= 40 && n <= 180 {
		sc++
	}
	return sc
}

// EvidenceSentences ranks the essay's sentences by how much verifiable
// substance they carry.
func EvidenceSentences(essay string, max int) []string {
	sents := textkor.DedupKeepOrder(textkor.SplitSentences(essay))
	sort.SliceStable(sents, func(i, j int) bool {
		si, sj := evidenceScore(sents[i]), evidenceScore(sents[j])
		if si != sj {
			return si > sj
		}
		return len([]rune(sents[i])) > len([]rune(sents[j]))
	})
	if len(sents) > max {
		sents = sents[:max]
	}
	return sents
}

var riskKeywordRes = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(혼자|단독|독단)`), "단독 판단 성향"},
	{regexp.MustCompile(`(완벽|철저|꼼꼼)`), "완벽주의 부담"},
	{regexp.MustCompile(`(처음|미숙|서툴)`), "경험 부족 인정"},
	{regexp.MustCompile(`(긴장|떨리|불안)`), "압박 상황 긴장"},
	{regexp.MustCompile(`(포기|그만두|중단)`), "중도 이탈 이력"},
	{regexp.MustCompile(`(갈등|충돌|마찰)`), "대인 갈등 경험"},
	{regexp.MustCompile(`(실수|실패|오류)`), "실패 경험"},
}

// RiskKeywords scans the essay for phrases an interviewer would flag as
// attack surface, labeled and deduplicated in scan order.
func RiskKeywords(essay string, topK int) []string {
	t := textkor.NormalizeSpace(essay)
	if t == "" {
		return nil
	}
	var out []string
	for _, rk := range riskKeywordRes {
		if rk.re.MatchString(t) {
			out = append(out, rk.label)
			if len(out) >= topK {
				break
			}
		}
	}
	return out
}
