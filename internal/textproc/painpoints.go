package textproc

import (
	"regexp"
	"sort"
	"strings"
)

// painPatterns is the fixed ordered list of bilingual pain indicators:
// problems, errors, slowness, unmet needs, and frustration. The Russian
// patterns skip \b because RE2 word boundaries are ASCII-only and never
// fire between Cyrillic letters.
var painPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(проблем[аы]|сложност[ьи]|трудност[ьи]|не получается|не работает|ошибк[аи]|баг[иа]?|не понимаю)`),
	regexp.MustCompile(`(не могу|не знаю|помогите|подскажите|что делать|как исправить|как решить)`),
	regexp.MustCompile(`(медленно|тормозит|виснет|глючит|лагает|не отвечает)`),
	regexp.MustCompile(`(не хватает|нужн[оа]|необходим[оа]|требуется|хочется|желательно)`),

	regexp.MustCompile(`\b(problem|issue|trouble|difficulty|error|bug|crash|fail)\b`),
	regexp.MustCompile(`\b(can't|cannot|don't know|help|how to|what to do)\b`),
	regexp.MustCompile(`\b(slow|laggy|freezing|not working|broken|stuck)\b`),
	regexp.MustCompile(`\b(need|want|require|missing|lack)\b`),
}

// DetectPainPoints scans the lowercased text with every pain pattern and
// returns the deduplicated phrases that matched. No match is an empty
// slice, never an error. The result is sorted for stable output.
func DetectPainPoints(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	seen := make(map[string]bool)

	for _, pattern := range painPatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			phrase := m[0]
			if len(m) > 1 {
				var parts []string
				for _, group := range m[1:] {
					if group != "" {
						parts = append(parts, group)
					}
				}
				phrase = strings.Join(parts, " ")
			}
			seen[phrase] = true
		}
	}

	if len(seen) == 0 {
		return nil
	}

	points := make([]string, 0, len(seen))
	for phrase := range seen {
		points = append(points, phrase)
	}
	sort.Strings(points)
	return points
}
