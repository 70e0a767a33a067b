package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/mmynk/scribe/internal/middleware"
	pb "github.com/mmynk/scribe/pkg/proto"
	"github.com/mmynk/scribe/pkg/proto/protoconnect"
	"google.golang.org/protobuf/proto"
)

func TestBinaryProtoRequests(t *testing.T) {
	env := setupTestServer(t)
	env.signUpVerified(t, "wire@example.com", "password123")

	body, err := proto.Marshal(&pb.SignInRequest{Email: "wire@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	resp, err := http.Post(env.server.URL+protoconnect.AuthServiceSignInProcedure, "application/proto", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, data)
	}

	var out pb.SignInResponse
	if err := proto.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out.GetUser().GetEmail() != "wire@example.com" || out.GetIdToken() == "" {
		t.Errorf("response = %v", &out)
	}
	if out.GetUser().GetCreatedAt() == nil {
		t.Error("expected created_at to be set")
	}
}

func TestJSONTimestampsUseRFC3339(t *testing.T) {
	env := setupTestServer(t)
	env.signUpVerified(t, "json@example.com", "password123")
	ctx := context.Background()

	if _, err := env.history.AddTranscription(ctx, connect.NewRequest(&pb.AddTranscriptionRequest{Text: "hello"})); err != nil {
		t.Fatalf("AddTranscription failed: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, env.server.URL+protoconnect.HistoryServiceListTranscriptionsProcedure, strings.NewReader(`{"limit":1}`))
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+env.token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, data)
	}

	if !regexp.MustCompile(`"createdAt":\s*"\d{4}-\d{2}-\d{2}T[^"]+Z"`).Match(data) {
		t.Errorf("createdAt is not an RFC 3339 string: %s", data)
	}

	jsonClient := protoconnect.NewHistoryServiceClient(http.DefaultClient, env.server.URL,
		connect.WithProtoJSON(),
		connect.WithInterceptors(middleware.Bearer(func() string { return env.token })))
	list, err := jsonClient.ListTranscriptions(ctx, connect.NewRequest(&pb.ListTranscriptionsRequest{}))
	if err != nil {
		t.Fatalf("ListTranscriptions over JSON failed: %v", err)
	}
	if n := len(list.Msg.GetTranscriptions()); n != 1 {
		t.Errorf("got %d transcriptions, want 1", n)
	}
}
