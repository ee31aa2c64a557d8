package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/opinsight/opinsight/config"
	"github.com/opinsight/opinsight/internal/analysis"
	"github.com/opinsight/opinsight/internal/capability"
	"github.com/opinsight/opinsight/internal/clustering"
	"github.com/opinsight/opinsight/internal/frequency"
	"github.com/opinsight/opinsight/internal/logging"
	"github.com/opinsight/opinsight/internal/models"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	var (
		inputPath      = flag.String("input", "-", "JSONL file with {\"text_id\",\"text\"} objects, - for stdin")
		method         = flag.String("method", clustering.MethodKMeans, "clustering method: kmeans, dbscan, or auto")
		clusters       = flag.Int("clusters", 0, "fixed cluster count, 0 selects automatically")
		includeResults = flag.Bool("results", false, "embed per-text results in the output")
	)
	flag.Parse()

	texts, err := readInputs(*inputPath)
	if err != nil {
		slog.Error("[Analyzer] Failed to read input",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	caps := capability.Probe()
	service := analysis.NewService(caps)
	defer service.Close()

	summary, err := service.AnalyzeProject(context.Background(), texts, analysis.Options{
		Clustering: clustering.Options{
			Method:    *method,
			NClusters: *clusters,
		},
		Frequency:      frequency.DefaultOptions(),
		IncludeResults: *includeResults,
	})
	if err != nil {
		slog.Error("[Analyzer] Analysis failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		slog.Error("[Analyzer] Failed to encode summary",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func readInputs(path string) ([]models.InputText, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	var texts []models.InputText
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var input models.InputText
		if err := json.Unmarshal(line, &input); err != nil {
			slog.Warn("[Analyzer] Skipping malformed input line",
				slog.String("error", err.Error()))
			continue
		}
		texts = append(texts, input)
	}
	return texts, scanner.Err()
}
