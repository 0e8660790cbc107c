package httpapi

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"truelab-connectivity/internal/config"
	"truelab-connectivity/internal/pipeline"
	"truelab-connectivity/internal/report"
)

// ConnectivityHandler exposes the processing pipeline over HTTP.
//
// POST /connectivity/api/v1/process, multipart form:
//   - "runlogs": exactly 2 CSV run-log exports
//   - "master":  the master roster workbook (.xlsx)
//
// Success returns the generated workbook as an attachment; any failure
// returns the JSON Result envelope with the error message.
type ConnectivityHandler struct {
	pipeline *pipeline.Pipeline
	cfg      *config.Config
	logger   *zap.Logger
}

func NewConnectivityHandler(p *pipeline.Pipeline, cfg *config.Config, logger *zap.Logger) *ConnectivityHandler {
	return &ConnectivityHandler{pipeline: p, cfg: cfg, logger: logger}
}

func (h *ConnectivityHandler) Process(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.cfg.MaxUploadMB << 20
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeJSON(w, http.StatusOK, Fail("failed to parse form"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	runLogHeaders := r.MultipartForm.File["runlogs"]
	masterHeaders := r.MultipartForm.File["master"]

	runLogs, closers, err := openUploads(runLogHeaders)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	defer closeAll(closers)

	var roster *pipeline.Input
	if len(masterHeaders) > 0 {
		f, err := masterHeaders[0].Open()
		if err != nil {
			writeJSON(w, http.StatusOK, Fail(fmt.Sprintf("failed to read upload %q: %v", masterHeaders[0].Filename, err)))
			return
		}
		defer f.Close()
		roster = &pipeline.Input{Name: masterHeaders[0].Filename, Reader: f}
	}

	rep, err := h.pipeline.Process(runLogs, roster)
	if err != nil {
		h.logger.Warn("Processing rejected", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}

	workbook, err := report.Generate(h.cfg.Pipeline.DetailSheetName, h.cfg.Pipeline.SummarySheetName, rep)
	if err != nil {
		h.logger.Error("Workbook generation failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(fmt.Sprintf("failed to generate workbook: %v", err)))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", h.cfg.Pipeline.OutputFilename))
	w.WriteHeader(http.StatusOK)
	w.Write(workbook)
}

func (h *ConnectivityHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Ok(map[string]any{"status": "ok"}))
}

func openUploads(headers []*multipart.FileHeader) ([]pipeline.Input, []multipart.File, error) {
	inputs := make([]pipeline.Input, 0, len(headers))
	closers := make([]multipart.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll(closers)
			return nil, nil, fmt.Errorf("failed to read upload %q: %v", fh.Filename, err)
		}
		closers = append(closers, f)
		inputs = append(inputs, pipeline.Input{Name: fh.Filename, Reader: f})
	}
	return inputs, closers, nil
}

func closeAll(files []multipart.File) {
	for _, f := range files {
		f.Close()
	}
}
