package genai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/retry"
	"github.com/visioncraft/workbook/internal/theme"
)

// Outcome classifies how a generation result was produced.
type Outcome string

const (
	// OutcomeParsed means the provider answered and its output parsed as
	// structured content.
	OutcomeParsed Outcome = "parsed"

	// OutcomeDegraded means the provider answered but its output did not
	// parse; the raw text is kept as a single body block.
	OutcomeDegraded Outcome = "degraded"

	// OutcomeFallback means every provider attempt failed and the content
	// is a deterministic theme-keyed template.
	OutcomeFallback Outcome = "fallback"
)

// Result is the product of one generation call. Generation never fails:
// one of the three outcomes is always returned.
type Result struct {
	Kind     ContentKind
	Provider ProviderID
	Outcome  Outcome
	Content  GeneratedContent
	Raw      string
}

// Blocks converts the result into page-ready text blocks with synthetic
// identifiers. Parsed blocks are marked AI-generated and editable; degraded
// raw text becomes a single editable body block.
func (r *Result) Blocks() []domain.TextBlock {
	if r.Outcome == OutcomeDegraded {
		return []domain.TextBlock{{
			ID:       uuid.New().String(),
			Role:     domain.RoleBody,
			Content:  r.Raw,
			Editable: true,
		}}
	}

	ai := r.Outcome == OutcomeParsed
	var blocks []domain.TextBlock
	add := func(role domain.TextRole, content string) {
		if content == "" {
			return
		}
		blocks = append(blocks, domain.TextBlock{
			ID:          uuid.New().String(),
			Role:        role,
			Content:     content,
			AIGenerated: ai,
			Editable:    true,
		})
	}

	add(domain.RoleBody, r.Content.Foreword)
	add(domain.RoleBody, r.Content.CoachLetter)
	for _, p := range r.Content.ReflectionPrompts {
		add(domain.RoleLabel, p)
	}
	return blocks
}

// Prompts returns the generated strings under one theme-prompt category.
func (r *Result) Prompts(category string) []string {
	return r.Content.ThemePrompts[category]
}

// Generator produces page content from a content context, with provider
// routing, sequential retry, and deterministic fallback. It holds no state
// between calls beyond the static routing and configuration.
type Generator struct {
	cfg       Config
	providers map[ProviderID]Provider
	observer  Observer
}

// NewGenerator builds a Generator with HTTP providers from cfg.
func NewGenerator(cfg Config, observer Observer) *Generator {
	providers := make(map[ProviderID]Provider, len(cfg.Providers))
	for id, pc := range cfg.Providers {
		providers[id] = NewHTTPProvider(pc)
	}
	return NewGeneratorWithProviders(cfg, providers, observer)
}

// NewGeneratorWithProviders builds a Generator with explicit provider
// implementations, used by tests.
func NewGeneratorWithProviders(cfg Config, providers map[ProviderID]Provider, observer Observer) *Generator {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Generator{cfg: cfg, providers: providers, observer: observer}
}

// Generate runs the full pipeline for one content kind: prompt assembly,
// provider routing, retried invocation, parse-or-degrade, and fallback.
// A provider failure is never propagated to the caller; page assembly
// proceeds with degraded content instead of aborting the document.
func (g *Generator) Generate(ctx context.Context, cctx ContentContext, pack theme.Pack, kind ContentKind) *Result {
	start := time.Now()

	system, user := BuildPrompt(kind, pack.Guidance, cctx)
	providerID := RouteKind(kind)

	kindCfg := g.cfg.Kinds[kind]
	req := Request{
		Kind:         kind,
		SystemPrompt: system,
		UserPrompt:   user,
		Temperature:  kindCfg.Temperature,
		MaxTokens:    kindCfg.MaxTokens,
	}

	callCtx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.KindTimeout(kind))*time.Millisecond)
	defer cancel()

	policy := retry.Policy{
		MaxAttempts: 1 + g.cfg.MaxRetries,
		BaseDelay:   time.Duration(g.cfg.BaseDelayMs) * time.Millisecond,
		Retryable: func(err error) bool {
			// Context expiry ends the whole call; everything else gets
			// another attempt with the unchanged prompt.
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) &&
				!errors.Is(err, ErrTimeout)
		},
	}

	provider := g.providers[providerID]

	var resp *Response
	attempts := 0
	err := policy.Do(callCtx, func(ctx context.Context) error {
		attempts++
		var callErr error
		resp, callErr = provider.Generate(ctx, req)
		return callErr
	})

	result := &Result{Kind: kind, Provider: providerID}
	event := CallEvent{Kind: kind, Provider: providerID, Attempts: attempts}

	if err != nil {
		result.Outcome = OutcomeFallback
		result.Content = FallbackContent(kind, pack, cctx)
		event.FallbackUsed = true
		event.ErrorCode = errorCode(err)
	} else {
		event.Model = resp.Model
		outcome := ParseOrDegrade(resp.Text)
		if parsed, ok := outcome.Parsed(); ok {
			result.Outcome = OutcomeParsed
			result.Content = *parsed
		} else {
			result.Outcome = OutcomeDegraded
			result.Raw = outcome.RawText()
			event.Degraded = true
		}
	}

	event.LatencyMs = time.Since(start).Milliseconds()
	g.observer.OnGenerationComplete(event)
	return result
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	default:
		code := "UNKNOWN"
		if strings.Contains(err.Error(), "status") {
			code = "HTTP_ERROR"
		}
		return code
	}
}
