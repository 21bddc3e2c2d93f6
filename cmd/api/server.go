package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"corte-report-go/internal/config"
	"corte-report-go/internal/dataset"
	"corte-report-go/internal/logger"
	"corte-report-go/internal/processor"
	"corte-report-go/internal/report"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
	Present []string `json:"present,omitempty"`
}

func newMux(cfg *config.Config, log *logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		log.WithRequest(r).Debug("health check")
		fmt.Fprint(w, "ok")
	})

	// POST /reports: multipart upload with a "file" part. Optional fields
	// "sheet", "top" and "format" (json | docx | md).
	mux.HandleFunc("/reports", func(w http.ResponseWriter, r *http.Request) {
		reqLog := log.WithRequest(r).WithField("handler", "reports")
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadMB<<20)
		file, hdr, err := r.FormFile("file")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			reqLog.WithField("limit_bytes", tooLarge.Limit).Warn("upload too large")
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
				Error: fmt.Sprintf("upload exceeds %d MB", cfg.MaxUploadMB),
			})
			return
		}
		if err != nil {
			reqLog.WithField("error", err.Error()).Warn("missing upload")
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing file upload"})
			return
		}
		defer file.Close()

		opts := dataset.LoadOptions{Sheet: cfg.Sheet}
		if s := r.FormValue("sheet"); s != "" {
			opts.Sheet = s
		}
		topN := cfg.TopN
		if t := r.FormValue("top"); t != "" {
			n, err := strconv.Atoi(t)
			if err != nil || n <= 0 {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "top must be a positive integer"})
				return
			}
			topN = n
		}
		format := strings.ToLower(r.FormValue("format"))
		if format == "" {
			format = "json"
		}
		reqLog = reqLog.WithField("upload", hdr.Filename).WithField("format", format)

		start := time.Now()
		table, err := dataset.LoadReader(file, hdr.Filename, opts)
		if err != nil {
			reqLog.WithField("error", err.Error()).Warn("unreadable spreadsheet")
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		rep, err := processor.Process(table, hdr.Filename, processor.Options{TopN: topN})
		if err != nil {
			var schemaErr *dataset.SchemaError
			if errors.As(err, &schemaErr) {
				reqLog.WithField("missing", schemaErr.Missing).Warn("schema validation failed")
				writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
					Error:   err.Error(),
					Missing: schemaErr.Missing,
					Present: schemaErr.Present,
				})
				return
			}
			reqLog.WithField("error", err.Error()).Error("processing failed")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		reqLog = reqLog.WithField("rows", rep.Rows).WithField("duration_ms", time.Since(start).Milliseconds())

		if format == "json" {
			reqLog.Info("report computed")
			writeJSON(w, http.StatusOK, rep)
			return
		}
		ext, err := report.Extension(format)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		var buf bytes.Buffer
		if err := report.Encode(&buf, report.Build(rep, report.Meta{Author: cfg.Author}), format); err != nil {
			reqLog.WithField("error", err.Error()).Error("failed to render report")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		name := report.FileName(hdr.Filename, rep.GeneratedAt, ext)
		w.Header().Set("Content-Type", contentType(format))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		if _, err := buf.WriteTo(w); err != nil {
			reqLog.WithField("error", err.Error()).Error("failed to write response")
			return
		}
		reqLog.WithField("file", name).Info("report rendered")
	})

	return mux
}

func contentType(format string) string {
	if format == report.FormatMarkdown {
		return "text/markdown; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
