// Package ai wraps the language oracle behind a typed request/response
// boundary. Callers build the prompts and decode the JSON; this package
// owns provider selection, transport and error classification. Oracle
// failures are never retried here: a failed call is reported to the caller,
// which decides whether to resubmit.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appcfg "github.com/wortkiste/core/internal/config"
)

var (
	// ErrNotConfigured means no enabled oracle provider with an API key
	// exists. Surfaced to the client as actionable, never retried.
	ErrNotConfigured = errors.New("no enabled AI provider configured")

	// ErrBadResponse means the oracle was reachable but returned empty or
	// schema-violating output.
	ErrBadResponse = errors.New("invalid response from AI")
)

// Request is a single oracle call. SchemaHint is appended to the user
// prompt so the model sees the exact output shape next to the data.
type Request struct {
	SystemPrompt string
	Prompt       string
	SchemaHint   string
	Temperature  float64
	MaxTokens    int
}

// Result carries the oracle's raw text plus the model that produced it,
// for tagging persisted derived records.
type Result struct {
	Raw   string
	Model string
}

// Task selects the per-call-type model assignment from config.
type Task int

const (
	TaskReview Task = iota
	TaskCompletion
	TaskAlternatives
)

// Service is the oracle client adapter.
type Service struct {
	cfg appcfg.AIConfig
}

func NewService(cfg appcfg.AIConfig) *Service {
	return &Service{cfg: cfg}
}

// Configured reports whether at least one usable provider exists.
func (s *Service) Configured() bool {
	return s.provider(TaskReview) != nil
}

// Complete performs one oracle call for the given task and returns the raw
// response text.
func (s *Service) Complete(ctx context.Context, task Task, req Request) (*Result, error) {
	provider := s.provider(task)
	if provider == nil {
		return nil, ErrNotConfigured
	}

	prompt := req.Prompt
	if strings.TrimSpace(req.SchemaHint) != "" {
		prompt = req.SchemaHint + "\n\n" + prompt
	}

	raw, err := callProvider(ctx, provider, req.SystemPrompt, prompt, req.Temperature, req.MaxTokens)
	if err != nil {
		return nil, fmt.Errorf("oracle call failed: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, ErrBadResponse
	}
	return &Result{Raw: raw, Model: resolveModelID(provider)}, nil
}

func (s *Service) provider(task Task) *appcfg.AIProvider {
	var assignment *appcfg.AIModelAssignment
	switch task {
	case TaskReview:
		assignment = s.cfg.ReviewModel
	case TaskCompletion:
		assignment = s.cfg.CompletionModel
	case TaskAlternatives:
		assignment = s.cfg.AlternativesModel
	}
	return selectProvider(s.cfg, assignment)
}

func selectProvider(cfg appcfg.AIConfig, assignment *appcfg.AIModelAssignment) *appcfg.AIProvider {
	var providerID, overrideModel string
	if assignment != nil {
		providerID = strings.TrimSpace(assignment.ProviderID)
		overrideModel = strings.TrimSpace(assignment.Model)
	}

	pick := func(provider appcfg.AIProvider) *appcfg.AIProvider {
		selected := provider
		if overrideModel != "" {
			selected.DefaultModel = overrideModel
		}
		return &selected
	}

	if providerID != "" {
		for _, provider := range cfg.Providers {
			if !provider.Enabled || strings.TrimSpace(provider.APIKey) == "" {
				continue
			}
			if strings.TrimSpace(provider.ID) != providerID {
				continue
			}
			return pick(provider)
		}
	}

	for _, provider := range cfg.Providers {
		if !provider.Enabled || strings.TrimSpace(provider.APIKey) == "" {
			continue
		}
		return pick(provider)
	}
	return nil
}

func resolveModelID(provider *appcfg.AIProvider) string {
	if model := strings.TrimSpace(provider.DefaultModel); model != "" {
		return model
	}
	if isAnthropicProviderType(provider.Type) {
		return defaultAnthropicModel
	}
	return defaultOpenAIModel
}
