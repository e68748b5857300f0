// Package textkor provides small Korean text utilities used across the project.
// All functions are pure and deterministic.
package textkor

import (
	"regexp"
	"strings"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	sentenceEnd  = regexp.MustCompile(`([\.\?\!。！？])\s+|\n+`)
)

// chunkRunes is the fixed chunk width used when punctuation-based splitting
// fails on a long single-blob text.
const chunkRunes = 140

// longBlobRunes is the minimum length before chunking kicks in.
const longBlobRunes = 260

// NormalizeSpace collapses runs of horizontal whitespace to one space and trims.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(horizontalWS.ReplaceAllString(s, " "))
}

// SplitSentences splits text on terminal punctuation or newlines. When that
// yields at most one sentence from a long blob, it falls back to fixed-width
// chunking so per-sentence filters downstream still have material to work on.
func SplitSentences(text string) []string {
	t := NormalizeSpace(strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n"))
	if t == "" {
		return nil
	}
	var parts []string
	last := 0
	for _, loc := range sentenceEnd.FindAllStringSubmatchIndex(t, -1) {
		end := loc[0]
		if loc[2] >= 0 {
			// keep the terminal punctuation with its sentence
			end = loc[3]
		}
		parts = append(parts, t[last:end])
		last = loc[1]
	}
	parts = append(parts, t[last:])

	sents := make([]string, 0, len(parts))
	for _, p := range parts {
		if pp := NormalizeSpace(p); pp != "" {
			sents = append(sents, pp)
		}
	}
	if len(sents) <= 1 && len([]rune(t)) > longBlobRunes {
		var chunks []string
		buf := make([]rune, 0, chunkRunes)
		for _, r := range t {
			buf = append(buf, r)
			if len(buf) >= chunkRunes {
				if c := NormalizeSpace(string(buf)); c != "" {
					chunks = append(chunks, c)
				}
				buf = buf[:0]
			}
		}
		if c := NormalizeSpace(string(buf)); c != "" {
			chunks = append(chunks, c)
		}
		if len(chunks) > 0 {
			sents = chunks
		}
	}
	return sents
}

// StripEllipsis removes ellipsis tokens and renormalizes spacing.
func StripEllipsis(s string) string {
	if s == "" {
		return ""
	}
	t := NormalizeSpace(s)
	t = strings.ReplaceAll(t, "…", "")
	t = strings.ReplaceAll(t, "...", "")
	return NormalizeSpace(t)
}

// TrimNoEllipsis cuts s down to at most max runes without appending an
// ellipsis, preferring a word boundary so Korean words are not split mid-way.
func TrimNoEllipsis(s string, max int) string {
	t := StripEllipsis(NormalizeSpace(s))
	if t == "" {
		return ""
	}
	runes := []rune(t)
	if len(runes) <= max {
		return t
	}
	truncated := string(runes[:max])
	next := runes[max]
	if next != ' ' && next != '.' && next != ',' {
		if i := strings.LastIndex(truncated, " "); i > max*4/10 {
			truncated = truncated[:i]
		}
	}
	return strings.TrimRight(strings.TrimSpace(truncated), ",.")
}

// duplicated sentence-final endings produced by naive template substitution
var endingFixes = [][2]string{
	{"입니다다", "입니다"},
	{"합니다다", "합니다"},
	{"했습니다다", "했습니다"},
	{"하였다다", "하였다"},
	{"했다다", "했다"},
	{"됩니다다", "됩니다"},
	{"됐습니다다", "됐습니다"},
	{"이에요요", "이에요"},
	{"예요요", "예요"},
	{"요요", "요"},
}

// SanityEndings removes doubled sentence-final endings such as "입니다다".
func SanityEndings(s string) string {
	t := StripEllipsis(NormalizeSpace(s))
	if t == "" {
		return ""
	}
	for _, f := range endingFixes {
		t = strings.ReplaceAll(t, f[0], f[1])
	}
	return NormalizeSpace(t)
}

// DedupKeepOrder drops duplicate and empty strings, preserving first-seen order.
func DedupKeepOrder(xs []string) []string {
	out := make([]string, 0, len(xs))
	seen := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		xx := NormalizeSpace(x)
		if xx == "" {
			continue
		}
		if _, ok := seen[xx]; ok {
			continue
		}
		seen[xx] = struct{}{}
		out = append(out, xx)
	}
	return out
}

// FormatAnchor trims an anchor excerpt to a renderable length.
func FormatAnchor(a string) string {
	if a == "" {
		return ""
	}
	runes := []rune(a)
	if len(runes) <= 180 {
		return a
	}
	return string(runes[:177]) + "..."
}

// BuildBasis renders the two-line rationale string attached to each slot.
func BuildBasis(summary, intent string) string {
	s := AutoFixParticles(SanityEndings(StripEllipsis(NormalizeSpace(summary))))
	i := AutoFixParticles(SanityEndings(StripEllipsis(NormalizeSpace(intent))))
	return "요약: " + s + "\n의도: " + i
}

// SanitizeQuestion performs minimal cleanup of a rendered question: it strips
// demonstratives that only make sense with the essay in front of you. No
// grammatical rewriting happens here.
func SanitizeQuestion(q string) string {
	t := NormalizeSpace(q)
	if t == "" {
		return ""
	}
	for _, demo := range []string{"그런 ", "이런 ", "해당 ", "위의 "} {
		t = strings.ReplaceAll(t, demo, "")
	}
	return NormalizeSpace(t)
}
