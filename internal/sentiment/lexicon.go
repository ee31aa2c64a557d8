package sentiment

import "strings"

// Bilingual sentiment lexicons for the fallback scorer. These are small on
// purpose: the lexicon method carries the lowest fusion weight and only has
// to produce a usable signal when the model-backed methods are unavailable.
var positiveWords = map[string]bool{
	// Russian
	"хорошо": true, "отлично": true, "прекрасно": true, "замечательно": true,
	"великолепно": true, "потрясающе": true, "нравится": true, "люблю": true,
	"классно": true, "круто": true, "супер": true, "идеально": true,
	"лучше": true, "полезно": true, "удобно": true, "легко": true,
	"быстро": true, "эффективно": true, "качественно": true,
	// English
	"good": true, "great": true, "excellent": true, "awesome": true,
	"fantastic": true, "amazing": true, "love": true, "like": true,
	"perfect": true, "wonderful": true, "brilliant": true, "outstanding": true,
	"useful": true, "helpful": true, "easy": true, "fast": true,
	"efficient": true, "quality": true,
}

var negativeWords = map[string]bool{
	// Russian
	"плохо": true, "ужасно": true, "отвратительно": true, "кошмар": true,
	"катастрофа": true, "провал": true, "ненавижу": true, "отстой": true,
	"фигня": true, "бред": true, "неудобно": true, "сложно": true,
	"медленно": true, "глючит": true, "тормозит": true, "проблема": true,
	// English
	"bad": true, "terrible": true, "awful": true, "horrible": true,
	"disgusting": true, "hate": true, "dislike": true, "worst": true,
	"sucks": true, "crap": true, "garbage": true, "useless": true,
	"difficult": true, "hard": true, "slow": true, "broken": true,
	"buggy": true, "problem": true,
}

// lexiconScore counts positive and negative lexicon hits and maps the
// balance to [-1,1]. The raw ratio is amplified by 10 so short texts with a
// single sentiment word still register, then clamped.
func lexiconScore(text string) float64 {
	if text == "" {
		return 0
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}

	positive, negative := 0, 0
	for _, w := range words {
		switch {
		case positiveWords[w]:
			positive++
		case negativeWords[w]:
			negative++
		}
	}

	if positive+negative == 0 {
		return 0
	}

	score := float64(positive-negative) / float64(len(words)) * 10
	return clamp(score, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
