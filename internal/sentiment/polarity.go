package sentiment

import (
	"regexp"

	"github.com/jonreiter/govader"

	"github.com/opinsight/opinsight/internal/textproc"
)

var (
	markdownLinkRe = regexp.MustCompile(`\[(.*?)\]\(https?://[^\s\)]+\)`)
	bareURLRe      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// polarityModel scores Latin-script text with the VADER compound polarity,
// which is already native to [-1,1]. Collected content is frequently
// markdown, so links and formatting are flattened first.
type polarityModel struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func newPolarityModel() *polarityModel {
	return &polarityModel{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (m *polarityModel) Score(text string) float64 {
	plain := m.toPlainText(text)
	return m.analyzer.PolarityScores(plain).Compound
}

func (m *polarityModel) toPlainText(input string) string {
	input = markdownLinkRe.ReplaceAllString(input, "$1")
	input = bareURLRe.ReplaceAllString(input, "")
	return textproc.StripMarkdown(input)
}
