package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"resumeapi/internal/config"
)

// ErrEmptyChoices is reported when the provider answers without any choice.
var ErrEmptyChoices = errors.New("openai response missing choices")

// OpenAIParser calls the Chat Completions API once per request. No retries.
type OpenAIParser struct {
	client *openai.Client
	model  string
	log    logrus.FieldLogger
}

// NewOpenAIParser builds a parser from cfg. An empty APIKey is accepted: Parse then
// reports OutcomeMissingCredential without touching the network.
func NewOpenAIParser(cfg config.OpenAIConfig, log logrus.FieldLogger) *OpenAIParser {
	p := &OpenAIParser{model: cfg.Model, log: log}
	if p.model == "" {
		p.model = DefaultModel
	}
	if cfg.APIKey == "" {
		return p
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	if cfg.TimeoutSec > 0 {
		oc.HTTPClient = &http.Client{Timeout: time.Duration(cfg.TimeoutSec) * time.Second}
	}
	p.client = openai.NewClientWithConfig(oc)
	return p
}

func (p *OpenAIParser) Parse(ctx context.Context, profileText string) Result {
	if p.client == nil {
		return Result{Outcome: OutcomeMissingCredential, Err: errors.New("OPENAI_API_KEY is not set")}
	}

	prompt := BuildPrompt(profileText)
	p.log.WithFields(logrus.Fields{"model": p.model, "prompt_len": len(prompt)}).Debug("requesting profile parse")

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: DefaultTemperature,
	})
	if err != nil {
		p.log.WithError(err).Error("openai request failed")
		return Result{Outcome: OutcomeProviderError, Err: err}
	}
	if len(resp.Choices) == 0 {
		p.log.Error(ErrEmptyChoices.Error())
		return Result{Outcome: OutcomeProviderError, Err: ErrEmptyChoices}
	}

	content := resp.Choices[0].Message.Content
	profile, err := DecodeProfile(content)
	if err != nil {
		p.log.WithError(err).WithField("content_len", len(content)).Error("profile decode failed")
		return Result{Outcome: OutcomeDecodeError, Err: err}
	}
	return Result{Outcome: OutcomeParsed, Profile: profile}
}

var _ Parser = (*OpenAIParser)(nil)
