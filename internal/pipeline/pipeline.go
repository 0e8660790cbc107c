// Package pipeline implements the connectivity processing core: two run-log
// CSV exports and one master roster workbook in, one two-sheet connectivity
// report out.
//
// Five stages run strictly in sequence, each fully materializing its output
// before the next starts:
//
//  1. load: parse and concatenate the CSV exports; parse the roster
//  2. clean: filter service runs, normalize keys and text, coerce
//     dates/numbers (failures become nils, never errors)
//  3. aggregate: one row per device with run count / last run / last lab
//  4. reconcile: left-join roster vs. aggregates, classify Active/Inactive
//  5. summarize: Active/Inactive counts by (State, Customer Type)
//
// Every stage is a pure function of its input; the Pipeline type only adds
// configuration and logging around them.
package pipeline

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"truelab-connectivity/internal/config"
	"truelab-connectivity/internal/domain"
)

// Pipeline runs the five processing stages over caller-supplied inputs.
type Pipeline struct {
	cfg    config.PipelineConfig
	logger *zap.Logger
}

// New creates a pipeline with the given constants and logger.
func New(cfg config.PipelineConfig, logger *zap.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger}
}

// Process validates the input set and runs all five stages. It returns the
// full report, or one of InputCountError / SchemaError / FormatError before
// any transformation output exists. There is no partial success.
func (p *Pipeline) Process(runLogs []Input, roster *Input) (*domain.ConnectivityReport, error) {
	if len(runLogs) != 2 {
		return nil, &InputCountError{RunLogs: len(runLogs)}
	}
	if roster == nil {
		return nil, &InputCountError{RunLogs: len(runLogs), MissingRoster: true}
	}

	logger := p.logger.With(zap.String("job_id", uuid.NewString()))

	records, err := LoadRunLogs(p.cfg, runLogs)
	if err != nil {
		return nil, err
	}
	accounts, err := LoadRoster(p.cfg, *roster)
	if err != nil {
		return nil, err
	}
	logger.Info("Inputs loaded",
		zap.Int("run_records", len(records)),
		zap.Int("accounts", len(accounts)),
	)

	loaded := len(records)
	records = CleanRunRecords(p.cfg, records)
	accounts = CleanRoster(accounts)
	logger.Debug("Cleaning done",
		zap.Int("run_records", len(records)),
		zap.Int("service_runs_dropped", loaded-len(records)),
	)

	aggregates := Aggregate(records)
	detail := Reconcile(accounts, aggregates)
	summary := Summarize(detail)

	active := 0
	for _, row := range detail {
		if row.Status == domain.StatusActive {
			active++
		}
	}
	logger.Info("Report built",
		zap.Int("devices", len(aggregates)),
		zap.Int("accounts", len(detail)),
		zap.Int("active", active),
		zap.Int("inactive", len(detail)-active),
		zap.Int("summary_rows", len(summary)),
	)

	return &domain.ConnectivityReport{Detail: detail, Summary: summary}, nil
}
