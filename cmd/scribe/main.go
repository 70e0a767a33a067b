package main

import (
	"bufio"
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/scribe/internal/account"
	"github.com/mmynk/scribe/internal/biometric"
	"github.com/mmynk/scribe/internal/capture"
	"github.com/mmynk/scribe/internal/cli"
	"github.com/mmynk/scribe/internal/config"
	"github.com/mmynk/scribe/internal/history"
	"github.com/mmynk/scribe/internal/identity"
	"github.com/mmynk/scribe/internal/middleware"
	"github.com/mmynk/scribe/internal/pipeline"
	"github.com/mmynk/scribe/internal/session"
	"github.com/mmynk/scribe/internal/transcribe"
	"github.com/mmynk/scribe/internal/tui"
	"github.com/mmynk/scribe/internal/vault"
	"github.com/mmynk/scribe/pkg/logging"
	"github.com/mmynk/scribe/pkg/proto/protoconnect"
)

func main() {
	server := flag.String("server", "", "scribe server URL (overrides SCRIBE_SERVER)")
	flag.Parse()

	config.LoadDefaultDotEnv()
	if *server != "" {
		os.Setenv("SCRIBE_SERVER", *server)
	}
	logging.Setup()
	cfg := config.LoadClient()
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := vault.NewFileStore(cfg.VaultDir)
	if err != nil {
		logger.Error("Failed to open credential vault", "dir", cfg.VaultDir, "error", err)
		os.Exit(1)
	}

	in := bufio.NewReader(os.Stdin)
	idc := identity.NewClient(http.DefaultClient, cfg.ServerURL, logger)
	gate := session.NewGate(idc)
	defer gate.Close()

	device := biometric.NewConsole(cfg.BiometricHardware, cfg.BiometricEnrolled, in, os.Stdout)
	flow := biometric.NewFlow(device, vault.NewCredentials(store), idc, logger)

	historyClient := protoconnect.NewHistoryServiceClient(http.DefaultClient, cfg.ServerURL,
		connect.WithInterceptors(middleware.Bearer(idc.IDToken)))
	remote := history.NewRemote(historyClient, logger)
	feed := history.NewFeed(remote, logger)
	defer feed.Close()

	// The feed follows the verified session.
	removeFeed := gate.OnChange(func(r session.Reachability) {
		if a, ok := r.(session.Authenticated); ok {
			feed.SetUser(a.Session.UserID)
			return
		}
		feed.SetUser("")
	})
	defer removeFeed()

	shell := cli.New(cli.Deps{
		In:        in,
		Out:       os.Stdout,
		Logger:    logger,
		Identity:  idc,
		Gate:      gate,
		Account:   account.NewService(idc, flow, logger),
		Biometric: flow,
		Remote:    remote,
		Feed:      feed,
		Dashboard: tui.NewLinePrompt(),
	})
	shell.Pipeline = pipeline.New(pipeline.Config{
		Recorder: capture.NewFFmpegRecorder(cfg.RecordFormat, cfg.RecordDevice, cfg.RecordDir, logger),
		Picker:   capture.NewPathPicker(shell.PickPath),
		Transcriber: transcribe.NewClient(cfg.TranscribeURL, cfg.UploadTimeout, logger,
			transcribe.WithField(cfg.FileField),
			transcribe.WithToken(idc.IDToken)),
		Writer:         remote,
		Session:        gate,
		PersistTimeout: cfg.PersistTimeout,
		Logger:         logger,
	})

	logger.Debug("Client configured", "server", cfg.ServerURL, "transcribe", cfg.TranscribeURL)
	if err := shell.Run(ctx); err != nil {
		logger.Error("Shell failed", "error", err)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), cfg.PersistTimeout+5*time.Second)
	defer cancel()
	if err := shell.Pipeline.Close(closeCtx); err != nil {
		logger.Warn("Pipeline did not finish cleanly", "error", err)
	}
}
