package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/voicequill/voicequill/internal/domain"
	"github.com/voicequill/voicequill/internal/srt"
)

// quotesSchema constrains quote extraction to {"quotes": [{speaker, quote}]}.
var quotesSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"quotes": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"speaker": {Type: genai.TypeString},
					"quote":   {Type: genai.TypeString},
				},
				Required: []string{"speaker", "quote"},
			},
		},
	},
	Required: []string{"quotes"},
}

// Transcribe sends the audio inline with one of the two fixed instruction
// templates and returns the raw response text.
func (c *implClient) Transcribe(ctx context.Context, audio []byte, mimeType string, timecodes bool) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(
			[]*genai.Part{
				genai.NewPartFromText(buildTranscribePrompt(timecodes)),
				genai.NewPartFromBytes(audio, mimeType),
			},
			genai.RoleUser,
		),
	}

	text, err := c.generate(ctx, contents, nil)
	if err != nil {
		c.logger.Error(ctx, "transcription call failed: %v", err)
		return "", newTranscriptionError(err)
	}
	return text, nil
}

// Translate requests a translation of text into targetLanguage. Input that
// still carries SRT timecode lines gets the structure-preserving template.
func (c *implClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := buildTranslatePrompt(text, targetLanguage, srt.ContainsTimecodes(text))

	result, err := c.generate(ctx, genai.Text(prompt), nil)
	if err != nil {
		c.logger.Error(ctx, "translation call failed: %v", err)
		return "", newTranslationError(err)
	}
	return result, nil
}

// ExtractQuotes requests exactly 5 verbatim quotes with speaker labels,
// constrained to the quotes schema, and parses the structured response.
func (c *implClient) ExtractQuotes(ctx context.Context, text string) ([]domain.Quote, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   quotesSchema,
	}

	raw, err := c.generate(ctx, genai.Text(buildExtractQuotesPrompt(text)), cfg)
	if err != nil {
		c.logger.Error(ctx, "quote extraction call failed: %v", err)
		return nil, newQuoteExtractionError(err)
	}

	quotes, err := parseQuotes(raw)
	if err != nil {
		c.logger.Error(ctx, "quote extraction returned malformed output: %v", err)
		return nil, newQuoteExtractionError(err)
	}
	return quotes, nil
}

// parseQuotes decodes the schema-constrained JSON payload.
func parseQuotes(raw string) ([]domain.Quote, error) {
	var payload struct {
		Quotes []domain.Quote `json:"quotes"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decode quotes payload: %w", err)
	}
	if len(payload.Quotes) == 0 {
		return nil, fmt.Errorf("quotes payload is empty")
	}
	return payload.Quotes, nil
}

// generate performs one GenerateContent round trip, rotating API keys on
// 429 / quota errors.
func (c *implClient) generate(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key := c.nextKey(false)

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.nextKey(true)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, c.model, contents, cfg)
		if err != nil {
			if isQuotaError(err) {
				c.logger.Warn(ctx, "API key rate limited, rotating...")
				c.nextKey(true)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		text := strings.TrimSpace(result.Text())
		if text == "" {
			return "", fmt.Errorf("empty response from model")
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// nextKey returns the current key, advancing first when rotate is set.
func (c *implClient) nextKey(rotate bool) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rotate {
		c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
	}
	return c.apiKeys[c.currentKey]
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
