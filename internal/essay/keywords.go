package essay

import (
	"regexp"
	"sort"

	"github.com/flyready/question-engine/internal/question"
	"github.com/flyready/question-engine/pkg/textkor"
)

var koreanStopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"저는", "제가", "저의", "저를", "저도", "본인", "우리", "것을", "것이", "것은",
		"그리고", "하지만", "그러나", "그래서", "또한", "때문", "때문에", "통해", "위해",
		"있습니다", "없습니다", "합니다", "입니다", "했습니다", "되었습니다", "싶습니다",
		"하는", "있는", "없는", "같은", "많은", "모든", "이런", "그런", "저런",
		"생각", "마음", "정말", "매우", "가장", "항상", "함께", "다시", "지금",
	} {
		koreanStopwords[w] = struct{}{}
	}
}

var (
	tokenRe     = regexp.MustCompile(`[가-힣0-9]{2,10}`)
	allDigitsRe = regexp.MustCompile(`^\d{2,}$`)
	hasDigitRe  = regexp.MustCompile(`\d`)
)

// TopicKeywords ranks the answer's content words by frequency. Digit-bearing
// tokens and longer tokens score up; ties break on a stable hash so the
// ordering is reproducible across processes.
func TopicKeywords(answer string, topK int) []string {
	t := textkor.NormalizeSpace(answer)
	if t == "" {
		return nil
	}
	freq := map[string]int{}
	for _, w := range tokenRe.FindAllString(t, -1) {
		if _, stop := koreanStopwords[w]; stop {
			continue
		}
		if allDigitsRe.MatchString(w) {
			continue
		}
		freq[w]++
	}

	type scored struct {
		score int
		tie   uint64
		word  string
	}
	ranked := make([]scored, 0, len(freq))
	for w, c := range freq {
		sc := c * 10
		if hasDigitRe.MatchString(w) {
			sc += 2
		}
		if len([]rune(w)) >= 4 {
			sc++
		}
		ranked = append(ranked, scored{sc, question.StableSeed(w), w})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].tie < ranked[j].tie
	})

	out := make([]string, 0, topK)
	for _, r := range ranked {
		out = append(out, r.word)
		if len(out) >= topK {
			break
		}
	}
	return out
}
