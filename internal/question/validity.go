package question

import (
	"regexp"
	"strings"
)

// The four validity predicates gate whether an essay fragment may become the
// basis of an interview question. A usable fragment must be grammatically
// self-contained, interpretable without having read the essay, and routed to
// the right template family depending on whether it describes an experience
// or an aspiration.

var (
	// sentence-final verb/adjective endings that close a Korean sentence
	completeEndingRe = regexp.MustCompile(
		`(습니다|입니다|했다|였다|있다|없다|됩니다|합니다|됐다|한다|된다|` +
			`하다|이다|었다|았다|겠다|ㅂ니다|해요|에요|어요|네요|군요|죠|요)\.?$`)

	// attributive/connective endings that leave the clause dangling
	incompleteEndingRe = regexp.MustCompile(
		`(을 향한|를 향한|을 위한|를 위한|을 통한|를 통한|` +
			`에 대한|와 함께|과 함께|을 위해|를 위해|에서의|로서의|` +
			`하는|되는|있는|없는|했던|된|한|의)$`)

	// fragments ending on a bare noun with no predicate
	nounFragmentRe = regexp.MustCompile(
		`.{5,}(같은|라는|라고|라며|에서|에게|으로|처럼|보다|만큼|까지|부터|` +
			`장면|모습|사람|마음|생각|자세|태도|순간|경험|능력|역량|가치|` +
			`이유|계기|동기|목표|꿈|비전|열정|노력|성장|변화|도전|시작점|기점|출발점)$`)

	// bracketed or colon-separated titles masquerading as sentences
	titleRe = regexp.MustCompile(
		`^\s*[《「\[【『].*[》」\]】』]\s*$|` +
			`^\s*[가-힣]+\s*[:：]\s*[가-힣]+\s*$|` +
			`^\s*[\(（].+[\)）]\s*$`)

	meaningfulRe = regexp.MustCompile(`할 수 있|수 있다|극복|해결|이겨냈|성공|했습니다|했다|했어요`)

	bareParticleRe = regexp.MustCompile(`[을를이가은는도만]$`)
	conjEndRe      = regexp.MustCompile(`[와과]$`)
)

// connective verb endings that need a following clause
var connectiveEndings = []string{
	"하고", "하며", "하면서", "하여", "해서",
	"되고", "되며", "되면서",
	"으며", "며", "면서",
	"지만", "는데", "ㄴ데",
	"으면", "면", "니까", "므로", "어서", "아서",
	"려고", "으려고", "고자", "도록",
}

// attributive endings that need a following noun
var attributiveEndings = []string{
	"을 향한", "를 향한", "에 향한", "향한",
	"을 위한", "를 위한", "에 위한", "위한",
	"과 함께", "와 함께",
	"을 통한", "를 통한", "통한",
	"에 대한", "에서의", "으로의", "로의",
	"과의", "와의", "에게의",
	"이라는", "라는", "라고 하는",
	"하는", "되는", "인", "적인", "스러운",
	"같은", "다른", "새로운", "높은", "낮은",
	"처럼", "같이", "대로",
	"그리고", "그러나", "하지만", "따라서",
}

// markers that only make sense with the essay's context in hand
var contextMarkers = []string{
	// named events the interviewer cannot know
	"사태", "사건", "프로젝트", "당시", "그때", "그 당시",
	"OO", "XX", "○○", "××",
	// metaphor fragments
	"살보다", "뼈를", "피를", "눈물을", "피와 땀",
	"살과 뼈", "피와 눈물", "아픔이 함께",
	// pronoun-only event references
	"이번의", "이번에", "그때의", "그것은", "이것은",
	"그 순간", "그날", "그 일", "이 일",
	// abstractions with no concrete referent
	"역사를", "발전과 역사", "새로운 시작과 끝",
	"인생의 전환점", "삶의 의미",
	// comparisons against unstated baselines
	"그보다", "이보다", "저보다",
	"전보다", "예전보다", "이전보다",
	// anonymized titles
	"○○님", "△△님", "ㅇㅇ님",
}

var completeEndings = []string{
	"다", "요", "죠", "니다", "습니다", "입니다",
	"했다", "했습니다", "했어요", "됐다", "됐습니다",
	"있다", "있습니다", "없다", "없습니다",
	"이다", "이었다", "였다",
}

var abstractPatterns = []string{
	"뼈를 깎는", "살보다 뼈", "피와 땀", "피나는 노력",
	"가슴에 새기", "마음에 새기", "인생의 전환점",
	"한 편의 영화", "한 장면", "다큐멘터리",
	"날개를 달", "날개를 펴", "빛과 소금",
	"제2의 집", "또 하나의 가족", "하늘을 나는 꿈",
}

var dreamPatterns = []string{
	"되고 싶", "싶다는 꿈", "꿈을 품", "꿈을 갖", "꿈이 생",
	"되겠다는", "되고자", "싶습니다", "싶었습니다",
	"목표를 갖", "목표가 생", "비전을",
	"다짐", "결심", "각오",
}

func runeLen(s string) int { return len([]rune(s)) }

// IsCompleteSentence reports whether text reads as a grammatically closed
// Korean sentence. Short strings bias toward incomplete: under 25 runes the
// fragment must carry an explicit sentence-final ending.
func IsCompleteSentence(text string) bool {
	t := strings.TrimSpace(text)
	if runeLen(t) < 10 {
		return false
	}
	t = strings.Trim(t, `'"`+"‘’“”")

	if titleRe.MatchString(t) {
		return false
	}
	if incompleteEndingRe.MatchString(t) {
		return false
	}
	if nounFragmentRe.MatchString(t) {
		return false
	}
	if completeEndingRe.MatchString(t) {
		return true
	}
	if strings.HasSuffix(t, ".") {
		return true
	}
	if runeLen(t) < 25 {
		return false
	}
	// long fragments without a clean ending are tolerated; the extraction
	// side is trusted for those
	return true
}

// IsContextDependent reports whether text needs unstated context to be
// interpretable. A question built from such a fragment would be unanswerable
// by anyone who has not read the source essay.
func IsContextDependent(text string) bool {
	t := strings.TrimSpace(text)
	n := runeLen(t)
	if n < 15 {
		return true
	}
	// ending checks run against the text without terminal punctuation
	te := strings.TrimRight(t, ".!?…")
	for _, e := range attributiveEndings {
		if strings.HasSuffix(te, e) {
			return true
		}
	}
	for _, e := range connectiveEndings {
		if strings.HasSuffix(te, e) {
			return true
		}
	}
	if bareParticleRe.MatchString(te) && n < 25 {
		return true
	}
	if conjEndRe.MatchString(te) {
		return true
	}
	lower := strings.ToLower(t)
	for _, m := range contextMarkers {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	if n < 30 && (strings.HasPrefix(t, "그") || strings.HasPrefix(t, "이") || strings.HasPrefix(t, "저")) {
		return true
	}

	hasCompleteEnding := false
	for _, e := range completeEndings {
		if strings.HasSuffix(te, e) {
			hasCompleteEnding = true
			break
		}
	}
	if !hasCompleteEnding && !meaningfulRe.MatchString(t) && n < 40 {
		return true
	}
	return false
}

// IsAbstractSentence reports whether text is figurative or metaphorical
// phrasing rather than a concrete statement.
func IsAbstractSentence(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range abstractPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// IsDreamSentence reports whether text expresses a future aspiration rather
// than a past or ongoing experience. Aspirations get the "condition changed"
// attack framing instead of "premise broken".
func IsDreamSentence(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range dreamPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// usableFragment composes the filters the resolver applies to every
// extraction candidate.
func usableFragment(s string) bool {
	t := strings.TrimSpace(s)
	return t != "" && !IsContextDependent(t) && IsCompleteSentence(t)
}
