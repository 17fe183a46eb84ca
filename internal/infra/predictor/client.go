package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/yanqian/risk-intake/internal/domain/intake"
	"github.com/yanqian/risk-intake/internal/domain/riskresult"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 10 * time.Second
	errorBodyLimit = 4 << 10
)

// Client calls the risk-prediction service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(url, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Predict posts the payload to /predict and returns the decoded body untouched.
func (c *Client) Predict(ctx context.Context, payload intake.Payload) (riskresult.RiskResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &intake.PredictionError{Message: "encode prediction request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, &intake.PredictionError{Message: "build prediction request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &intake.PredictionError{Message: transportMessage(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &intake.PredictionError{
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(raw),
			Message:    fmt.Sprintf("request failed with status code %d", resp.StatusCode),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &intake.PredictionError{Message: "network error", Err: fmt.Errorf("read prediction response: %w", err)}
	}
	return decodeResult(data)
}

// Status probes the service root and returns its status text.
func (c *Client) Status(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", fmt.Errorf("build status request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("status request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("status request error: status=%d body=%s", resp.StatusCode, string(raw))
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", fmt.Errorf("decode status response: %w", err)
	}
	return body.Status, nil
}

func transportMessage(err error) string {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return "request timed out"
	}
	return "network error"
}

func decodeResult(data []byte) (riskresult.RiskResult, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		// anything but an object is left for the renderer's fallbacks
		return riskresult.RiskResult{}, nil
	}
	var out riskresult.RiskResult
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, &intake.PredictionError{Message: "decode prediction response", Err: err}
	}
	if out == nil {
		out = riskresult.RiskResult{}
	}
	return out, nil
}

// extractDetail reads the "detail" key of an error body. Plain strings are
// returned verbatim; validation lists of {loc, msg} are flattened.
func extractDetail(raw []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	switch body.Detail[0] {
	case '"':
		var text string
		if err := json.Unmarshal(body.Detail, &text); err != nil {
			return ""
		}
		return text
	case '[':
		var items []validationIssue
		if err := json.Unmarshal(body.Detail, &items); err != nil {
			return ""
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if text := item.String(); text != "" {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}

type validationIssue struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func (v validationIssue) String() string {
	msg := strings.TrimSpace(v.Msg)
	if msg == "" {
		return ""
	}
	var path []string
	for _, part := range v.Loc {
		segment := fmt.Sprint(part)
		if segment == "body" {
			continue
		}
		path = append(path, segment)
	}
	if len(path) == 0 {
		return msg
	}
	return strings.Join(path, ".") + ": " + msg
}
