package asr

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mmynk/scribe/internal/metrics"
)

// FileField is the multipart field carrying the recording.
const FileField = "audio_file"

// Server handles the HTTP transcription API.
type Server struct {
	engine    Engine
	maxUpload int64
	timeout   time.Duration
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewServer creates a Server. engine may be nil, in which case the health
// check reports the misconfiguration and uploads fail with 503.
func NewServer(engine Engine, maxUpload int64, timeout time.Duration, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		engine:    engine,
		maxUpload: maxUpload,
		timeout:   timeout,
		metrics:   m,
		logger:    logger,
	}
}

// Router returns the routes of the transcription API.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleHealth).Methods("GET")
	r.HandleFunc("/upload_and_transcribe", s.handleUpload).Methods("POST")
	return r
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Model   string `json:"model_name,omitempty"`
}

type validationItem struct {
	Loc  []string `json:"loc,omitempty"`
	Msg  string   `json:"msg"`
	Type string   `json:"type,omitempty"`
}

type listError struct {
	Detail []validationItem `json:"detail"`
}

type detailError struct {
	Detail string `json:"detail"`
}

type transcribeResponse struct {
	Message        string  `json:"message"`
	Transcription  string  `json:"transcription"`
	Model          string  `json:"model"`
	ProcessingTime float64 `json:"processing_time"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.engine == nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "Error: no transcription engine configured",
			Message: "Scribe ASR API is running.",
		})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "Operational",
		Message: "Scribe ASR API is running.",
		Model:   s.engine.Model(),
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if s.engine == nil {
		writeJSON(w, http.StatusServiceUnavailable, detailError{
			Detail: "Server not configured for inference. Set ASR_ENGINE and its credentials.",
		})
		return
	}

	// Multipart framing needs headroom beyond the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+1<<20)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.tooLarge(w)
			return
		}
		s.missingFile(w)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(FileField)
	if err != nil {
		s.missingFile(w)
		return
	}
	defer file.Close()

	if header.Filename == "" || header.Size == 0 {
		writeJSON(w, http.StatusBadRequest, detailError{Detail: "No selected file."})
		return
	}
	if header.Size > s.maxUpload {
		s.tooLarge(w)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("Failed to read upload", "error", err)
		writeJSON(w, http.StatusInternalServerError, detailError{Detail: "Server processing error during file handling."})
		return
	}

	audio := Audio{
		Filename: header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Data:     data,
	}
	s.logger.Info("File received",
		"filename", audio.Filename,
		"bytes", len(data),
		"user_id", r.FormValue("userId"),
	)

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.engine.Transcribe(ctx, audio)
	elapsed := time.Since(start)
	if err != nil {
		s.metrics.Transcription(s.engine.Name(), "error", elapsed)
		s.logger.Error("Inference failed", "engine", s.engine.Name(), "error", err)
		writeJSON(w, http.StatusInternalServerError, detailError{Detail: "Transcription engine error: " + err.Error()})
		return
	}

	s.metrics.Transcription(s.engine.Name(), "ok", elapsed)
	s.logger.Info("Inference complete", "engine", s.engine.Name(), "chars", len(text), "duration_ms", elapsed.Milliseconds())
	writeJSON(w, http.StatusOK, transcribeResponse{
		Message:        "Transcription successful",
		Transcription:  text,
		Model:          s.engine.Model(),
		ProcessingTime: elapsed.Seconds(),
	})
}

func (s *Server) missingFile(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnprocessableEntity, listError{Detail: []validationItem{{
		Loc:  []string{"body", FileField},
		Msg:  "field required",
		Type: "value_error.missing",
	}}})
}

func (s *Server) tooLarge(w http.ResponseWriter) {
	writeJSON(w, http.StatusRequestEntityTooLarge, listError{Detail: []validationItem{{Msg: "file too large"}}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
