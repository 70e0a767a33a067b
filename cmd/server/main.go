package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/scribe/internal/asr"
	"github.com/mmynk/scribe/internal/auth"
	"github.com/mmynk/scribe/internal/config"
	"github.com/mmynk/scribe/internal/mailer"
	"github.com/mmynk/scribe/internal/metrics"
	"github.com/mmynk/scribe/internal/middleware"
	"github.com/mmynk/scribe/internal/realtime"
	"github.com/mmynk/scribe/internal/service"
	"github.com/mmynk/scribe/internal/storage/sqlite"
	"github.com/mmynk/scribe/pkg/logging"
	"github.com/mmynk/scribe/pkg/proto/protoconnect"
)

func main() {
	config.LoadDefaultDotEnv()
	logging.Setup()
	cfg := config.LoadServer()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		slog.Error("Failed to create data directory", "error", err)
		os.Exit(1)
	}
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(service.AuthConfig{
		Authenticator: auth.NewPasswordAuthenticator(store, auth.NewAttemptLimiter(5, 15*time.Minute)),
		Users:         store,
		JWT:           jwtManager,
		Mailer:        mailer.NewLogSender(slog.Default()),
		PublicURL:     cfg.PublicURL,
		Metrics:       m,
		Logger:        slog.Default(),
	})
	historySvc := service.NewHistoryService(store, realtime.NewHub(), m, slog.Default())

	logInterceptor := middleware.NewLoggingInterceptor(slog.Default(), m)
	mux := http.NewServeMux()

	// Register Connect services
	authPath, authHandler := protoconnect.NewAuthServiceHandler(authSvc,
		connect.WithInterceptors(logInterceptor, middleware.OptionalAuth(jwtManager)))
	mux.Handle(authPath, authHandler)

	historyPath, historyHandler := protoconnect.NewHistoryServiceHandler(historySvc,
		connect.WithInterceptors(logInterceptor, middleware.RequireAuth(jwtManager)))
	mux.Handle(historyPath, historyHandler)

	mux.Handle(service.ActionPath, authSvc.ActionHandler())
	mux.Handle("/metrics", metrics.Handler(reg))

	engine := newEngine(cfg)
	mux.Handle("/", asr.NewServer(engine, cfg.MaxUpload, cfg.ASRTimeout, m, slog.Default()).Router())

	handler := middleware.HTTPLogging(slog.Default(), middleware.CORS(cfg.CORSOrigin, mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect streaming)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Scribe server starting", "address", cfg.Addr, "public_url", cfg.PublicURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

// newEngine picks the transcription engine. A missing key leaves the
// endpoint up but reporting unavailable.
func newEngine(cfg config.Server) asr.Engine {
	switch cfg.ASREngine {
	case "hf":
		if cfg.HFToken == "" {
			slog.Warn("HF_API_TOKEN not set; Hugging Face requests may be rate limited")
		}
		slog.Info("Transcription engine", "engine", "hf", "model", cfg.ASRModel)
		return asr.NewHFInference(cfg.HFURL, cfg.HFToken, cfg.ASRModel, cfg.ASRTimeout)
	case "openai":
		if cfg.OpenAIKey == "" {
			slog.Error("OPENAI_API_KEY not set; transcription disabled")
			return nil
		}
		model := cfg.ASRModel
		if model == "" || model == config.DefaultASRModel {
			model = "whisper-1"
		}
		slog.Info("Transcription engine", "engine", "openai", "model", model)
		return asr.NewOpenAI(cfg.OpenAIKey, model, cfg.ASRTimeout)
	default:
		slog.Warn("No transcription engine configured", "engine", cfg.ASREngine)
		return nil
	}
}
