// Package server exposes the tank sizing report over HTTP.
package server

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/iwvelando/tank-forecast/internal/config"
	"github.com/iwvelando/tank-forecast/internal/report"
	"github.com/iwvelando/tank-forecast/pkg/inputprocessor"
	"github.com/iwvelando/tank-forecast/pkg/output"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

const formatMsgpack = "msgpack"

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	simulation    config.SimulationConfig
	processor     *inputprocessor.Processor
}

type forecastResponse struct {
	Report   output.Document `json:"report"`
	Duration string          `json:"duration"`
}

// NewHandler constructs the HTTP handler that serves the forecast API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		maxUploadSize: cfg.UploadSizeBytes(),
		version:       trimmedVersion,
		simulation:    cfg.Simulation,
		processor:     inputprocessor.NewProcessor(logger),
	}

	// Full paths on the root router; a PathPrefix subrouter answers 404 for
	// method mismatches on all but its last route.
	router := mux.NewRouter()

	// Forecast for an uploaded input file or a plain text body
	router.HandleFunc("/api/forecast", h.handleForecast).Methods(http.MethodPost)

	// Version endpoint for client metadata
	router.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet)

	return router
}

func (h *handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const op = "server.handleForecast"

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	text, err := h.readInput(r)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	input := h.processor.ParseText(text, h.simulation.Defaults())
	rep := report.Build(h.logger, input, h.simulation.Bounds(input.Consumption))

	h.writeResponse(w, r, http.StatusOK, forecastResponse{
		Report:   output.NewDocument(rep),
		Duration: time.Since(start).String(),
	})
}

// readInput returns the input text from a multipart "file" field or, for any
// other content type, from the raw body.
func (h *handler) readInput(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		return "", fmt.Errorf("failed to parse upload: %w", err)
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return "", errors.New("missing input file")
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.readInput"),
				zap.Error(closeErr),
			)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeResponse(w, r, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Warn("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeResponse(w, r, status, map[string]string{"error": msg})
}

// writeResponse encodes the payload as JSON, or as MessagePack when the
// request asks for format=msgpack.
func (h *handler) writeResponse(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	if r.URL.Query().Get("format") == formatMsgpack {
		w.Header().Set("Content-Type", "application/x-msgpack")
		w.WriteHeader(status)
		encoder := msgpack.NewEncoder(w)
		encoder.SetCustomStructTag("json")
		if err := encoder.Encode(payload); err != nil {
			h.logger.Error("failed to encode msgpack response",
				zap.String("op", "server.writeResponse"),
				zap.Error(err),
			)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeResponse"),
			zap.Error(err),
		)
	}
}
