// Package textproc holds the shared text normalization helpers used by every
// analyzer: preprocessing, keyword extraction, pain point detection, and the
// confidence heuristic. Input is noisy short-form content mixing Russian and
// English, so everything here is deliberately best-effort.
package textproc

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	urlRe        = regexp.MustCompile(`http[s]?://[^\s]+`)
	emailRe      = regexp.MustCompile(`\S+@\S+`)
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	nonTextRe    = regexp.MustCompile(`[^а-яёa-z0-9\s]`)
)

// Preprocess normalizes raw text into a clean lowercase form containing only
// Cyrillic letters, Latin letters, digits, and single spaces. The operation
// is deterministic and idempotent; unparseable input degrades to whatever
// survives the stripping.
func Preprocess(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = urlRe.ReplaceAllString(text, "")
	text = emailRe.ReplaceAllString(text, "")
	text = htmlTagRe.ReplaceAllString(text, "")
	text = nonTextRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// StripMarkdown renders markdown to HTML and flattens the output to plain
// text. Forum and Reddit content arrives markdown-formatted; stripping it
// before Preprocess keeps link targets and formatting noise out of the
// token stream.
func StripMarkdown(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagRe.ReplaceAllString(string(output), " ")
	return strings.Join(strings.Fields(plain), " ")
}

// ContainsCyrillic reports whether text has at least one Cyrillic letter.
func ContainsCyrillic(text string) bool {
	for _, r := range strings.ToLower(text) {
		if (r >= 'а' && r <= 'я') || r == 'ё' {
			return true
		}
	}
	return false
}

// ContainsLatin reports whether text has at least one Latin letter.
func ContainsLatin(text string) bool {
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}
