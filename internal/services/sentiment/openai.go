package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"TrendMatrix/internal/domain/models"

	"github.com/sashabaranov/go-openai"
)

// AIAnalyzer scores sentiment with an OpenAI chat model. On any error the
// caller should fall back to the rule-based scorer; this type never guesses.
type AIAnalyzer struct {
	client *openai.Client
	model  string
}

// NewAIAnalyzer creates an OpenAI-backed analyzer.
func NewAIAnalyzer(apiKey, model string) *AIAnalyzer {
	if model == "" {
		model = openai.GPT4
	}
	return &AIAnalyzer{client: openai.NewClient(apiKey), model: model}
}

// Analyze summarizes the recent signal mix and activity trend into a prompt
// and expects a strict JSON answer.
func (a *AIAnalyzer) Analyze(ctx context.Context, signals []models.Signal, activity []models.TimePoint) (int, string, error) {
	var sb strings.Builder
	for _, s := range signals {
		fmt.Fprintf(&sb, "- asset=%s type=%s strength=%d\n", s.Asset, s.Type, s.Strength)
	}
	var ab strings.Builder
	for _, p := range activity {
		fmt.Fprintf(&ab, "%s=%.1f ", p.Date, p.Value)
	}

	prompt := fmt.Sprintf(`You are scoring crypto ecosystem market sentiment.

Recent signals:
%s
Daily activity series:
%s

Return strict JSON only:
{"sentiment_score": <integer 0-100>, "label": "bearish"|"neutral"|"bullish"}`,
		sb.String(), ab.String())

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return 0, "", fmt.Errorf("sentiment completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return 0, "", fmt.Errorf("sentiment completion: empty response")
	}

	var parsed struct {
		SentimentScore int    `json:"sentiment_score"`
		Label          string `json:"label"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return 0, "", fmt.Errorf("parse sentiment response: %w", err)
	}

	score := models.ClampStrength(parsed.SentimentScore)
	label := parsed.Label
	if label == "" {
		label = LabelFor(score)
	}
	return score, label, nil
}

// Fallback chains a primary analyzer with a fallback used on error.
type Fallback struct {
	Primary   Analyzer
	Secondary Analyzer
}

// Analyzer matches domain/service.SentimentAnalyzer without the import cycle.
type Analyzer interface {
	Analyze(ctx context.Context, signals []models.Signal, activity []models.TimePoint) (int, string, error)
}

// Analyze tries the primary analyzer and falls back on error.
func (f *Fallback) Analyze(ctx context.Context, signals []models.Signal, activity []models.TimePoint) (int, string, error) {
	if f.Primary != nil {
		if score, label, err := f.Primary.Analyze(ctx, signals, activity); err == nil {
			return score, label, nil
		}
	}
	return f.Secondary.Analyze(ctx, signals, activity)
}
