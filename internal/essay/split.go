// Package essay analyzes an applicant's self-introduction essay into the
// per-item structures question generation consumes: prompt/answer pairs,
// prompt-type classification, topic keywords, situation snippets, and
// action/result evidence sentences.
package essay

import (
	"regexp"
	"strings"
	"unicode"
)

// RawItem is one (prompt, answer) pair as written, before analysis.
type RawItem struct {
	Prompt string
	Answer string
}

const defaultPrompt = "자기소개서"

var promptHeadingRe = regexp.MustCompile(
	`(?i)^(Q\s*\d+[.)]|문항\s*\d+[.)]|\d+[.)]|지원동기|성장과정|입사\s*후\s*포부|강점|약점|경험|역량)`)

// isPromptHeading requires the matched marker to end a word: a line starting
// "경험을 통해..." is body text, not a heading. \b cannot express this for
// Hangul, so the boundary is checked by hand.
func isPromptHeading(line string) bool {
	m := promptHeadingRe.FindString(line)
	if m == "" {
		return false
	}
	if strings.HasSuffix(m, ".") || strings.HasSuffix(m, ")") {
		return true
	}
	rest := line[len(m):]
	if rest == "" {
		return true
	}
	r := []rune(rest)[0]
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// SplitItems splits a pasted essay into prompt/answer items on heading lines
// (Q1., 문항 1., 1), 지원동기, ...). Essays without recognizable headings come
// back as a single item.
func SplitItems(essay string) []RawItem {
	t := strings.ReplaceAll(essay, "\r\n", "\n")
	t = strings.TrimSpace(strings.ReplaceAll(t, "\r", "\n"))
	if t == "" {
		return nil
	}

	var lines []string
	for _, l := range strings.Split(t, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return []RawItem{{Prompt: defaultPrompt, Answer: t}}
	}

	var headIdx []int
	for i, line := range lines {
		if isPromptHeading(line) {
			headIdx = append(headIdx, i)
		}
	}
	if len(headIdx) == 0 {
		// a short first line over a multi-line body reads as a bare title
		if len([]rune(lines[0])) <= 40 && len(lines) >= 3 {
			return []RawItem{{Prompt: lines[0], Answer: strings.Join(lines[1:], "\n")}}
		}
		return []RawItem{{Prompt: defaultPrompt, Answer: t}}
	}

	var items []RawItem
	headIdx = append(headIdx, len(lines))
	for k := 0; k+1 < len(headIdx); k++ {
		body := strings.TrimSpace(strings.Join(lines[headIdx[k]+1:headIdx[k+1]], "\n"))
		if body != "" {
			items = append(items, RawItem{Prompt: lines[headIdx[k]], Answer: body})
		}
	}
	if len(items) == 0 {
		return []RawItem{{Prompt: defaultPrompt, Answer: t}}
	}
	return items
}
