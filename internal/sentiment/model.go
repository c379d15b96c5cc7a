package sentiment

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/selivandex/newspulse/pkg/logger"
	"github.com/selivandex/newspulse/pkg/models"
)

const modelSystemPrompt = `You classify the sentiment of company news headlines for an investor.
Respond with exactly one word: positive, negative, or neutral.`

// completionAPI is the slice of the OpenAI client the classifier needs,
// extracted so tests can stub the model call.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ModelClassifier delegates classification to a chat completion model.
// Slower than the lexicon but better on domain-specific phrasing. Any failure
// or off-label answer coerces to neutral; classification never aborts a run.
type ModelClassifier struct {
	client completionAPI
	model  string
}

// NewModelClassifier creates a model-backed classifier
func NewModelClassifier(apiKey, model string) *ModelClassifier {
	return &ModelClassifier{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (m *ModelClassifier) Classify(ctx context.Context, text string) models.Sentiment {
	text = truncateWords(text, maxInputWords)

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       m.model,
		Temperature: 0,
		MaxTokens:   3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: modelSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		logger.Warn("model classification failed, coercing to neutral",
			zap.Error(err),
		)
		return models.SentimentNeutral
	}

	if len(resp.Choices) == 0 {
		return models.SentimentNeutral
	}

	return parseLabel(resp.Choices[0].Message.Content)
}

// parseLabel maps a model answer onto the label set, defaulting to neutral
// for anything outside it.
func parseLabel(answer string) models.Sentiment {
	label := strings.ToLower(strings.Trim(strings.TrimSpace(answer), "."))
	switch label {
	case "positive":
		return models.SentimentPositive
	case "negative":
		return models.SentimentNegative
	case "neutral":
		return models.SentimentNeutral
	default:
		logger.Warn("model returned out-of-set label, coercing to neutral",
			zap.String("label", answer),
		)
		return models.SentimentNeutral
	}
}
