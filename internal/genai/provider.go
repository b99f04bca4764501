package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Request holds the parameters for one provider invocation.
type Request struct {
	Kind         ContentKind
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
}

// Response holds the raw result of one provider invocation.
type Response struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Provider is a backing text-generation service. Implementations make a
// single attempt; retrying is the generator's concern.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// httpProvider talks to a completion endpoint over JSON HTTP. All three
// routed providers share this shape and differ only in endpoint and model.
type httpProvider struct {
	cfg  ProviderConfig
	http *http.Client
}

// NewHTTPProvider creates a Provider for the given endpoint and model.
func NewHTTPProvider(cfg ProviderConfig) Provider {
	return &httpProvider{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// completionRequest is the JSON body sent to POST /api/generate.
type completionRequest struct {
	Model   string            `json:"model"`
	System  string            `json:"system,omitempty"`
	Prompt  string            `json:"prompt"`
	Stream  bool              `json:"stream"`
	Options completionOptions `json:"options,omitempty"`
}

type completionOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// completionResponse is the JSON body of a non-streaming completion.
type completionResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (p *httpProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	body := completionRequest{
		Model:  p.cfg.Model,
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Stream: false,
		Options: completionOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		},
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := p.cfg.Endpoint + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		if isConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	// Any non-2xx is treated identically regardless of which provider
	// answered.
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, fmt.Errorf("provider returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp completionResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &Response{
		Text:      resp.Response,
		Model:     resp.Model,
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
