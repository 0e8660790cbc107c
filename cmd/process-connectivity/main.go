// One-shot runner: processes two run-log CSV exports and a master roster
// workbook into the final connectivity workbook without standing up the HTTP
// service. Inputs may be local paths or http(s) URLs (dashboard export links).
//
// Usage:
//
//	process-connectivity <runlog1.csv> <runlog2.csv> <master.xlsx> [output.xlsx]
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"truelab-connectivity/internal/config"
	"truelab-connectivity/internal/logger"
	"truelab-connectivity/internal/pipeline"
	"truelab-connectivity/internal/report"
)

func main() {
	if len(os.Args) < 4 || len(os.Args) > 5 {
		fmt.Fprintln(os.Stderr, "usage: process-connectivity <runlog1.csv> <runlog2.csv> <master.xlsx> [output.xlsx]")
		os.Exit(2)
	}

	cfg := config.Load()
	zlog, err := logger.NewLogger(cfg.Log.Level, "console", "process-connectivity")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	outPath := cfg.Pipeline.OutputFilename
	if len(os.Args) == 5 {
		outPath = os.Args[4]
	}

	client := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second)

	inputs := make([]pipeline.Input, 0, 3)
	for _, arg := range os.Args[1:4] {
		data, err := fetchInput(client, arg)
		if err != nil {
			zlog.Fatal("Failed to read input", zap.String("input", arg), zap.Error(err))
		}
		inputs = append(inputs, pipeline.Input{Name: arg, Reader: bytes.NewReader(data)})
	}

	p := pipeline.New(cfg.Pipeline, zlog)
	rep, err := p.Process(inputs[:2], &inputs[2])
	if err != nil {
		zlog.Fatal("Processing failed", zap.Error(err))
	}

	workbook, err := report.Generate(cfg.Pipeline.DetailSheetName, cfg.Pipeline.SummarySheetName, rep)
	if err != nil {
		zlog.Fatal("Workbook generation failed", zap.Error(err))
	}

	if err := os.WriteFile(outPath, workbook, 0o644); err != nil {
		zlog.Fatal("Failed to write output", zap.String("path", outPath), zap.Error(err))
	}
	zlog.Info("Connectivity report written",
		zap.String("path", outPath),
		zap.Int("accounts", len(rep.Detail)),
		zap.Int("summary_rows", len(rep.Summary)),
	)
}

// fetchInput reads a local file, or downloads the body when the argument is
// an http(s) URL.
func fetchInput(client *resty.Client, arg string) ([]byte, error) {
	if !isURL(arg) {
		return os.ReadFile(arg)
	}
	resp, err := client.R().Get(arg)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("GET %s: %s", arg, resp.Status())
	}
	return resp.Body(), nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
