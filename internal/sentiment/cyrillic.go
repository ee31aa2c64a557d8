package sentiment

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

const cyrillicModelName = "cointegrated/rubert-tiny-sentiment-balanced"

// cyrillicModel wraps a local ONNX text-classification pipeline specialized
// for Russian social-network text. Construction is best-effort: any failure
// is reported to the caller, who degrades to the remaining methods.
type cyrillicModel struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func loadCyrillicModel(modelDir string) (*cyrillicModel, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating model directory: %w", err)
	}

	modelPath := filepath.Join(modelDir, filepath.Base(cyrillicModelName))
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[SentimentAnalyzer] Cyrillic model not found, downloading...",
			slog.String("model", cyrillicModelName))
		downloaded, err := hugot.DownloadModel(cyrillicModelName, modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("downloading model: %w", err)
		}
		modelPath = downloaded
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("initializing ORT session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "cyrillicSentimentPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("initializing pipeline: %w", err)
	}

	return &cyrillicModel{session: session, pipeline: pipeline}, nil
}

// Score classifies text and maps the model output to [-1,1]: positive mass
// minus negative mass, neutral contributing zero.
func (m *cyrillicModel) Score(text string) (float64, error) {
	output, err := m.pipeline.RunPipeline([]string{text})
	if err != nil {
		return 0, err
	}
	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return 0, fmt.Errorf("empty classification output")
	}

	score := 0.0
	for _, c := range output.ClassificationOutputs[0] {
		switch c.Label {
		case "positive":
			score += float64(c.Score)
		case "negative":
			score -= float64(c.Score)
		}
	}
	return clamp(score, -1, 1), nil
}

func (m *cyrillicModel) Close() {
	if m.session != nil {
		m.session.Destroy()
	}
}
