package textkor

import (
	"regexp"
	"strings"
)

// HasFinalConsonant reports whether a Hangul syllable carries a trailing
// consonant (jongseong). Non-Hangul runes report false.
func HasFinalConsonant(r rune) bool {
	if r < 0xAC00 || r > 0xD7A3 {
		return false
	}
	return (r-0xAC00)%28 != 0
}

// ChooseParticle picks between a particle pair based on the final syllable of
// word: withFinal when the syllable has a trailing consonant, noFinal otherwise.
func ChooseParticle(word, withFinal, noFinal string) string {
	w := []rune(NormalizeSpace(word))
	if len(w) == 0 {
		return noFinal
	}
	if HasFinalConsonant(w[len(w)-1]) {
		return withFinal
	}
	return noFinal
}

// Carrier names are protected from particle rewriting: several of them end in
// syllables that look like particles (에어부산, 진에어).
var airlineNames = []string{
	"에어로케이", "에어프레미아", "이스타항공", "아시아나항공",
	"티웨이항공", "제주항공", "대한항공", "진에어", "에어부산", "에어서울",
}

func isAirlineFragment(word, particle string) bool {
	full := word + particle
	for _, a := range airlineNames {
		if full == a || strings.HasPrefix(a, full) {
			return true
		}
	}
	return false
}

// Names that were clipped by aggressive substitution, restored to full form.
var truncatedAirlineFixes = [][2]string{
	{"어로케이", "에어로케이"},
	{"어프레미아", "에어프레미아"},
	{"스타항공", "이스타항공"},
	{"시아나항공", "아시아나항공"},
	{"웨이항공", "티웨이항공"},
	{"주항공", "제주항공"},
}

func repairAirlineNames(t string) string {
	for _, f := range truncatedAirlineFixes {
		if strings.Contains(t, f[0]) && !strings.Contains(t, f[1]) {
			t = strings.ReplaceAll(t, f[0], f[1])
		}
	}
	return t
}

type particlePair struct {
	withFinal string
	noFinal   string
}

var particlePairs = map[string]particlePair{
	"을": {"을", "를"}, "를": {"을", "를"},
	"이": {"이", "가"}, "가": {"이", "가"},
	"은": {"은", "는"}, "는": {"은", "는"},
	"과": {"과", "와"}, "와": {"과", "와"},
}

// Words whose final syllable coincides with the 가 particle (누군가, 언젠가).
var subjectParticleExceptions = []string{"누군", "누구", "언젠", "어딘", "무언", "뭔", "웬"}

var (
	objectParticleRe  = regexp.MustCompile(`([가-힣]{1,15})(을|를)(\s|$|[,\.!?])`)
	subjectParticleRe = regexp.MustCompile(`([가-힣]{1,15})(이|가)(\s|$|[,\.!?])`)
	topicParticleRe   = regexp.MustCompile(`([가-힣]{1,15})(은|는)(\s|$|[,\.!?])`)
	conjParticleRe    = regexp.MustCompile(`([가-힣]{1,15})(과|와)(\s|$|[,\.!?])`)
	quoteParticleRe   = regexp.MustCompile(`([가-힣]{1,15})(['"])([이가은는을를과와])(\s|$|[,\.!?])`)

	doubledTopicRe   = regexp.MustCompile(`([가-힣])(은는|는은)`)
	doubledSubjectRe = regexp.MustCompile(`([가-힣])(이가|가이)`)
)

// replaceGroups applies fn to every match of re in t, passing the submatches.
func replaceGroups(re *regexp.Regexp, t string, fn func(groups []string) string) string {
	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringSubmatchIndex(t, -1) {
		b.WriteString(t[last:loc[0]])
		groups := make([]string, 0, len(loc)/2)
		for g := 0; g < len(loc); g += 2 {
			if loc[g] < 0 {
				groups = append(groups, "")
				continue
			}
			groups = append(groups, t[loc[g]:loc[g+1]])
		}
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(t[last:])
	return b.String()
}

func fixParticleRe(t string, re *regexp.Regexp, guardExceptions bool) string {
	return replaceGroups(re, t, func(g []string) string {
		word, particle, suffix := g[1], g[2], g[3]
		if word == "" {
			return g[0]
		}
		if isAirlineFragment(word, particle) {
			return g[0]
		}
		if guardExceptions {
			for _, exc := range subjectParticleExceptions {
				if strings.HasSuffix(word, exc) {
					return g[0]
				}
			}
		}
		pair := particlePairs[particle]
		return word + ChooseParticle(word, pair.withFinal, pair.noFinal) + suffix
	})
}

// AutoFixParticles is a lightweight cleanup of doubled particles such as
// "은는" and "이가" left behind by string substitution. It never rewrites
// meaning, only the particle itself.
func AutoFixParticles(text string) string {
	t := NormalizeSpace(text)
	if t == "" {
		return ""
	}
	t = strings.ReplaceAll(t, "은 는", "은 ")
	t = strings.ReplaceAll(t, "는 은", "는 ")
	t = strings.ReplaceAll(t, "이 가", "이 ")
	t = strings.ReplaceAll(t, "가 이", "가 ")
	t = replaceGroups(doubledTopicRe, t, func(g []string) string {
		return g[1] + ChooseParticle(g[1], "은", "는")
	})
	t = replaceGroups(doubledSubjectRe, t, func(g []string) string {
		return g[1] + ChooseParticle(g[1], "이", "가")
	})
	t = repairAirlineNames(t)
	return NormalizeSpace(t)
}

// FixParticles corrects case-particle allomorphs (을/를, 이/가, 은/는, 과/와)
// after template formatting. Naive substitution regularly attaches the wrong
// allomorph; the right one depends on whether the preceding syllable ends in
// a consonant.
func FixParticles(text string) string {
	t := NormalizeSpace(text)
	if t == "" {
		return ""
	}
	// restore clipped carrier names first, otherwise their final syllables
	// get rewritten as particles and the repair target disappears
	t = repairAirlineNames(t)
	t = fixParticleRe(t, objectParticleRe, false)
	t = fixParticleRe(t, subjectParticleRe, true)
	t = fixParticleRe(t, topicParticleRe, false)
	t = fixParticleRe(t, conjParticleRe, false)

	t = replaceGroups(quoteParticleRe, t, func(g []string) string {
		word, quote, particle, suffix := g[1], g[2], g[3], g[4]
		pair, ok := particlePairs[particle]
		if !ok {
			return g[0]
		}
		return word + quote + ChooseParticle(word, pair.withFinal, pair.noFinal) + suffix
	})

	// 있다/없다 take the 는 attributive form, never 은.
	t = strings.ReplaceAll(t, "있은", "있는")
	t = strings.ReplaceAll(t, "없은", "없는")

	// conditional smoothing: 이었다면 reads stilted in a question
	t = strings.ReplaceAll(t, "이었다면", "이라면")
	t = strings.ReplaceAll(t, "였다면 ", "라면 ")
	t = strings.ReplaceAll(t, "이었더라면", "이라면")

	return NormalizeSpace(t)
}
