package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visioncraft/workbook/internal/theme"
)

// stubProvider scripts provider behavior per attempt.
type stubProvider struct {
	calls int
	fn    func(attempt int) (*Response, error)
}

func (s *stubProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	s.calls++
	return s.fn(s.calls)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxRetries = 2
	cfg.BaseDelayMs = 0
	return cfg
}

func testPack(t *testing.T) theme.Pack {
	t.Helper()
	pack, err := theme.DefaultRegistry().Get("midnight-garden")
	require.NoError(t, err)
	return pack
}

func allProviders(p Provider) map[ProviderID]Provider {
	return map[ProviderID]Provider{
		ProviderGallery: p,
		ProviderFinance: p,
		ProviderJournal: p,
	}
}

func TestGenerate_ParsedOutcome(t *testing.T) {
	stub := &stubProvider{fn: func(int) (*Response, error) {
		return &Response{Text: `{"foreword": "Welcome, Maya."}`, Model: "test-model"}, nil
	}}
	gen := NewGeneratorWithProviders(testConfig(), allProviders(stub), nil)

	result := gen.Generate(context.Background(), ContentContext{UserName: "Maya"}, testPack(t), KindForeword)

	assert.Equal(t, OutcomeParsed, result.Outcome)
	assert.Equal(t, "Welcome, Maya.", result.Content.Foreword)
	assert.False(t, result.Content.FallbackUsed)
	assert.Equal(t, 1, stub.calls)

	blocks := result.Blocks()
	require.Len(t, blocks, 1)
	assert.NotEmpty(t, blocks[0].ID)
	assert.True(t, blocks[0].AIGenerated)
	assert.True(t, blocks[0].Editable)
}

func TestGenerate_DegradedOutcomeKeepsRawText(t *testing.T) {
	stub := &stubProvider{fn: func(int) (*Response, error) {
		return &Response{Text: "Sorry, plain prose only today."}, nil
	}}
	gen := NewGeneratorWithProviders(testConfig(), allProviders(stub), nil)

	result := gen.Generate(context.Background(), ContentContext{}, testPack(t), KindForeword)

	assert.Equal(t, OutcomeDegraded, result.Outcome)
	assert.False(t, result.Content.FallbackUsed)

	blocks := result.Blocks()
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0].Content, "plain prose")
	assert.False(t, blocks[0].AIGenerated)
}

func TestGenerate_AllAttemptsFailUsesThemeFallback(t *testing.T) {
	stub := &stubProvider{fn: func(int) (*Response, error) {
		return nil, ErrProviderUnavailable
	}}
	cfg := testConfig()
	gen := NewGeneratorWithProviders(cfg, allProviders(stub), nil)

	cctx := ContentContext{UserName: "Maya", Goals: []string{"run a marathon", "learn Spanish"}}
	result := gen.Generate(context.Background(), cctx, testPack(t), KindForeword)

	assert.Equal(t, OutcomeFallback, result.Outcome)
	assert.True(t, result.Content.FallbackUsed)
	assert.NotEmpty(t, result.Content.Foreword)
	assert.Contains(t, result.Content.Foreword, "Maya")
	assert.Contains(t, result.Content.Foreword, "run a marathon and learn Spanish")
	// 1 initial attempt + MaxRetries.
	assert.Equal(t, 1+cfg.MaxRetries, stub.calls)
}

func TestGenerate_RecoversOnRetry(t *testing.T) {
	stub := &stubProvider{fn: func(attempt int) (*Response, error) {
		if attempt < 2 {
			return nil, errors.New("transient")
		}
		return &Response{Text: `{"reflectionPrompts": ["What changed?"]}`}, nil
	}}
	gen := NewGeneratorWithProviders(testConfig(), allProviders(stub), nil)

	result := gen.Generate(context.Background(), ContentContext{}, testPack(t), KindReflectionPrompts)

	assert.Equal(t, OutcomeParsed, result.Outcome)
	assert.Equal(t, 2, stub.calls)
	assert.Equal(t, ProviderJournal, result.Provider)
}

func TestGenerate_FallbackPerKind(t *testing.T) {
	stub := &stubProvider{fn: func(int) (*Response, error) {
		return nil, ErrProviderUnavailable
	}}
	gen := NewGeneratorWithProviders(testConfig(), allProviders(stub), nil)
	pack := testPack(t)
	cctx := ContentContext{Goals: []string{"open a studio"}, FinancialTarget: "$20,000"}

	reflections := gen.Generate(context.Background(), cctx, pack, KindReflectionPrompts)
	assert.NotEmpty(t, reflections.Content.ReflectionPrompts)

	captions := gen.Generate(context.Background(), cctx, pack, KindVisionCaptions)
	assert.NotEmpty(t, captions.Prompts("vision"))

	budget := gen.Generate(context.Background(), cctx, pack, KindBudgetNotes)
	require.NotEmpty(t, budget.Prompts("budget"))
	assert.Contains(t, budget.Prompts("budget")[0], "$20,000")
}

// TestGenerate_HTTPRoundTrip exercises the full HTTP serialization path:
// httptest server -> HTTP provider -> generator -> parse. It guards against
// mock drift between the completion wire format and the parsing layer.
func TestGenerate_HTTPRoundTrip(t *testing.T) {
	structured, err := json.Marshal(GeneratedContent{
		Foreword: "Welcome to the garden, Maya.",
	})
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Contains(t, req.System, "JSON object")
		assert.Contains(t, req.Prompt, "Maya")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model":    "test-model",
			"response": string(structured),
		})
	}))
	defer srv.Close()

	cfg := testConfig()
	for id, pc := range cfg.Providers {
		pc.Endpoint = srv.URL
		pc.Model = "test-model"
		cfg.Providers[id] = pc
	}

	gen := NewGenerator(cfg, NoopObserver{})
	result := gen.Generate(context.Background(), ContentContext{UserName: "Maya"}, testPack(t), KindForeword)

	assert.Equal(t, OutcomeParsed, result.Outcome)
	assert.Equal(t, "Welcome to the garden, Maya.", result.Content.Foreword)
}

func TestGenerate_HTTPErrorStatusFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.MaxRetries = 1
	for id, pc := range cfg.Providers {
		pc.Endpoint = srv.URL
		cfg.Providers[id] = pc
	}

	gen := NewGenerator(cfg, NoopObserver{})
	result := gen.Generate(context.Background(), ContentContext{}, testPack(t), KindCoachLetter)

	assert.Equal(t, OutcomeFallback, result.Outcome)
	assert.True(t, result.Content.FallbackUsed)
	assert.NotEmpty(t, result.Content.CoachLetter)
}

func TestContentContext_GoalList(t *testing.T) {
	assert.Equal(t, "", ContentContext{}.GoalList())
	assert.Equal(t, "a", ContentContext{Goals: []string{"a"}}.GoalList())
	assert.Equal(t, "a and b", ContentContext{Goals: []string{"a", "b"}}.GoalList())
	assert.Equal(t, "a, b and c", ContentContext{Goals: []string{"a", "b", "c"}}.GoalList())
}

func TestKindTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 20000, cfg.KindTimeout(KindForeword))
	assert.Equal(t, cfg.TimeoutMs, cfg.KindTimeout(KindVisionCaptions))
	assert.Equal(t, cfg.TimeoutMs, cfg.KindTimeout(ContentKind("unknown")))
}
