// Package capability resolves which optional analysis backends are present.
// The probe runs once at process startup and the resulting descriptor is
// passed into analyzer constructors, so no analyzer consults ambient global
// state. A missing capability degrades the pipeline (fewer sentiment
// methods, heuristic frequency counting) but is never fatal.
package capability

import (
	"log/slog"
	"os"
	"strings"

	"github.com/opinsight/opinsight/config"
)

// Capabilities describes the optional backends available to the analyzers.
type Capabilities struct {
	// CyrillicModel enables the specialized transformer sentiment model
	// for Russian text.
	CyrillicModel bool
	// PolarityModel enables the general-purpose VADER polarity scorer
	// for Latin text.
	PolarityModel bool
	// Vectorizer enables the vectorized TF-IDF frequency path; when false
	// the frequency analyzer falls back to manual counting.
	Vectorizer bool
	// ModelDir is where transformer model files live or get downloaded.
	ModelDir string
}

const defaultModelDir = "./models"

// Probe inspects the environment and reports the available capabilities,
// logging a one-time warning for anything disabled or missing.
func Probe() Capabilities {
	caps := Capabilities{
		CyrillicModel: true,
		PolarityModel: true,
		Vectorizer:    true,
		ModelDir:      config.Getenv("MODEL_DIR", defaultModelDir),
	}

	if disabled(os.Getenv("DISABLE_CYRILLIC_MODEL")) {
		caps.CyrillicModel = false
		slog.Warn("[Capability] Cyrillic sentiment model disabled, Russian text falls back to lexicon scoring")
	}
	if disabled(os.Getenv("DISABLE_POLARITY_MODEL")) {
		caps.PolarityModel = false
		slog.Warn("[Capability] Polarity model disabled, English text falls back to lexicon scoring")
	}
	if disabled(os.Getenv("DISABLE_VECTORIZER")) {
		caps.Vectorizer = false
		slog.Warn("[Capability] Vectorizer disabled, frequency analysis uses manual counting")
	}

	return caps
}

func disabled(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	}
	return false
}
