package genai

import (
	"os"
	"strconv"
)

// ContentKind identifies the kind of content being generated. Provider
// routing and prompt assembly key off it.
type ContentKind string

const (
	KindForeword          ContentKind = "foreword"
	KindCoachLetter       ContentKind = "coach_letter"
	KindVisionCaptions    ContentKind = "vision_gallery_captions"
	KindGoalAffirmations  ContentKind = "goal_affirmations"
	KindReflectionPrompts ContentKind = "reflection_journal_prompts"
	KindBudgetNotes       ContentKind = "budget_financial_notes"
)

// KindConfig holds per-kind generation parameters.
type KindConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// ProviderConfig holds the endpoint and model for one backing provider.
type ProviderConfig struct {
	Endpoint string
	Model    string
}

// Config holds all configuration for the generation subsystem.
type Config struct {
	Providers   map[ProviderID]ProviderConfig
	TimeoutMs   int
	MaxRetries  int
	BaseDelayMs int
	LogCalls    bool
	Kinds       map[ContentKind]KindConfig
}

// DefaultConfig returns a Config with sensible defaults. All three
// providers point at a local endpoint until overridden.
func DefaultConfig() Config {
	return Config{
		Providers: map[ProviderID]ProviderConfig{
			ProviderGallery: {Endpoint: "http://localhost:11434", Model: "llama3.2"},
			ProviderFinance: {Endpoint: "http://localhost:11434", Model: "llama3.2"},
			ProviderJournal: {Endpoint: "http://localhost:11434", Model: "llama3.2"},
		},
		TimeoutMs:   15000,
		MaxRetries:  2,
		BaseDelayMs: 500,
		Kinds: map[ContentKind]KindConfig{
			KindForeword:          {Temperature: 0.6, MaxTokens: 1024, TimeoutMs: 20000},
			KindCoachLetter:       {Temperature: 0.6, MaxTokens: 1024, TimeoutMs: 20000},
			KindVisionCaptions:    {Temperature: 0.8, MaxTokens: 512},
			KindGoalAffirmations:  {Temperature: 0.8, MaxTokens: 512},
			KindReflectionPrompts: {Temperature: 0.7, MaxTokens: 768},
			KindBudgetNotes:       {Temperature: 0.3, MaxTokens: 768},
		},
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	applyProviderEnv(&cfg, ProviderGallery, "WORKBOOK_AI_GALLERY_ENDPOINT", "WORKBOOK_AI_GALLERY_MODEL")
	applyProviderEnv(&cfg, ProviderFinance, "WORKBOOK_AI_FINANCE_ENDPOINT", "WORKBOOK_AI_FINANCE_MODEL")
	applyProviderEnv(&cfg, ProviderJournal, "WORKBOOK_AI_JOURNAL_ENDPOINT", "WORKBOOK_AI_JOURNAL_MODEL")

	if v := os.Getenv("WORKBOOK_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("WORKBOOK_AI_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("WORKBOOK_AI_BASE_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.BaseDelayMs = n
		}
	}
	if v := os.Getenv("WORKBOOK_AI_LOG_CALLS"); v == "1" || v == "true" {
		cfg.LogCalls = true
	}

	return cfg
}

// KindTimeout returns the effective timeout for a content kind.
func (c Config) KindTimeout(kind ContentKind) int {
	if kc, ok := c.Kinds[kind]; ok && kc.TimeoutMs > 0 {
		return kc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyProviderEnv(cfg *Config, id ProviderID, endpointEnv, modelEnv string) {
	pc := cfg.Providers[id]
	if v := os.Getenv(endpointEnv); v != "" {
		pc.Endpoint = v
	}
	if v := os.Getenv(modelEnv); v != "" {
		pc.Model = v
	}
	cfg.Providers[id] = pc
}
