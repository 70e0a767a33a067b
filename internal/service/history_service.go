package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/scribe/internal/metrics"
	"github.com/mmynk/scribe/internal/middleware"
	"github.com/mmynk/scribe/internal/models"
	"github.com/mmynk/scribe/internal/realtime"
	"github.com/mmynk/scribe/internal/storage"
	pb "github.com/mmynk/scribe/pkg/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// snapshotLimit caps how many records one watch snapshot carries.
const snapshotLimit = 500

var errUnverified = errors.New("email not verified")

// HistoryService implements the HistoryService RPC interface: the per-user
// transcript subtree users/{userId}/transcriptions.
type HistoryService struct {
	store   storage.TranscriptStore
	hub     *realtime.Hub
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewHistoryService creates a new history service. m may be nil.
func NewHistoryService(store storage.TranscriptStore, hub *realtime.Hub, m *metrics.Metrics, logger *slog.Logger) *HistoryService {
	return &HistoryService{
		store:   store,
		hub:     hub,
		metrics: m,
		logger:  logger,
	}
}

// AddTranscription appends a record to the caller's history. The server
// assigns the ID and timestamp.
func (s *HistoryService) AddTranscription(ctx context.Context, req *connect.Request[pb.AddTranscriptionRequest]) (*connect.Response[pb.AddTranscriptionResponse], error) {
	userID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(req.Msg.Text)
	if text == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("text is required"))
	}

	t := &models.Transcript{UserID: userID, Text: text, Model: req.Msg.Model}
	if err := s.store.AddTranscript(ctx, t); err != nil {
		s.logger.Error("Failed to add transcript", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.metrics.HistoryWrite()
	s.hub.Publish(userID)
	s.logger.Info("Transcript added", "path", t.Path(), "chars", len(text))
	return connect.NewResponse(&pb.AddTranscriptionResponse{Transcription: toAPITranscription(t)}), nil
}

// ListTranscriptions returns the caller's history, newest first.
func (s *HistoryService) ListTranscriptions(ctx context.Context, req *connect.Request[pb.ListTranscriptionsRequest]) (*connect.Response[pb.ListTranscriptionsResponse], error) {
	userID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(ctx, userID, int(req.Msg.Limit))
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.ListTranscriptionsResponse{Transcriptions: snapshot.Transcriptions}), nil
}

// WatchTranscriptions streams a full snapshot of the caller's history on
// open and again after every write to it, until the client goes away.
func (s *HistoryService) WatchTranscriptions(ctx context.Context, req *connect.Request[pb.WatchTranscriptionsRequest], stream *connect.ServerStream[pb.TranscriptionSnapshot]) error {
	userID, err := s.owner(ctx)
	if err != nil {
		return err
	}

	// Subscribe before the first read so no write slips between them.
	changed, cancel := s.hub.Subscribe(userID)
	defer cancel()
	defer s.metrics.WatcherOpened()()

	for {
		snapshot, err := s.snapshot(ctx, userID, snapshotLimit)
		if err != nil {
			return err
		}
		if err := stream.Send(snapshot); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-changed:
		}
	}
}

func (s *HistoryService) owner(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errors.New("authentication required"))
	}
	if !middleware.GetEmailVerified(ctx) {
		return "", connect.NewError(connect.CodePermissionDenied, errUnverified)
	}
	return userID, nil
}

func (s *HistoryService) snapshot(ctx context.Context, userID string, limit int) (*pb.TranscriptionSnapshot, error) {
	list, err := s.store.ListTranscripts(ctx, userID, limit)
	if err != nil {
		s.logger.Error("Failed to list transcripts", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]*pb.Transcription, 0, len(list))
	for _, t := range list {
		out = append(out, toAPITranscription(t))
	}
	return &pb.TranscriptionSnapshot{Transcriptions: out}, nil
}

func toAPITranscription(t *models.Transcript) *pb.Transcription {
	return &pb.Transcription{
		Id:        t.ID,
		Text:      t.Text,
		Model:     t.Model,
		CreatedAt: timestamppb.New(time.Unix(0, t.CreatedAt)),
	}
}
