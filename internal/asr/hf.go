package asr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HFInference calls a Hugging Face inference endpoint with the raw audio
// bytes as the request body.
type HFInference struct {
	url    string
	token  string
	model  string
	client *http.Client
}

// NewHFInference creates an engine for the endpoint at url.
func NewHFInference(url, token, model string, timeout time.Duration) *HFInference {
	return &HFInference{
		url:    url,
		token:  token,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

func (h *HFInference) Name() string  { return "hf" }
func (h *HFInference) Model() string { return h.model }

type hfResult struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

func (h *HFInference) Transcribe(ctx context.Context, audio Audio) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(audio.Data))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	if audio.MIMEType != "" {
		req.Header.Set("Content-Type", audio.MIMEType)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}
	if resp.StatusCode >= 300 {
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	return parseHFResult(body)
}

// parseHFResult accepts both a list of results and a single object.
func parseHFResult(body []byte) (string, error) {
	var res hfResult
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []hfResult
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		if len(list) == 0 {
			return "", errors.New("inference returned no results")
		}
		res = list[0]
	} else if err := json.Unmarshal(trimmed, &res); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if res.Error != "" {
		return "", fmt.Errorf("inference error: %s", res.Error)
	}
	text := strings.TrimSpace(res.Text)
	if text == "" {
		return "", errors.New("inference returned empty text")
	}
	return text, nil
}
