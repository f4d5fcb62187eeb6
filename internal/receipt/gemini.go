package receipt

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

const extractionPrompt = "extract data from the image and return it in given JSON schema. give date in dd/mm/yyyy format."

// GeminiExtractor reads receipts with the Gemini API, constrained to a
// fixed JSON response schema.
type GeminiExtractor struct {
	client *genai.Client
}

// NewGeminiExtractor creates an extractor backed by the Gemini API.
// The API key is read from the GEMINI_API_KEY environment variable when
// apiKey is empty.
func NewGeminiExtractor(ctx context.Context, apiKey string) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExtractor{client: client}, nil
}

func (g *GeminiExtractor) Extract(ctx context.Context, image []byte, categories []string) (Extraction, error) {
	allowed := append([]string{}, categories...)
	if !slices.Contains(allowed, FallbackCategory) {
		allowed = append(allowed, FallbackCategory)
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {Type: genai.TypeString},
				"date": {Type: genai.TypeString},
				"category": {
					Type: genai.TypeString,
					Enum: allowed,
				},
				"total": {Type: genai.TypeNumber},
			},
		},
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, "image/jpeg"),
			genai.NewPartFromText(extractionPrompt),
		}, genai.RoleUser),
	}

	response, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, config)
	if err != nil {
		return Extraction{}, fmt.Errorf("generating receipt data failed: %w", err)
	}

	var extraction Extraction
	err = json.Unmarshal([]byte(response.Text()), &extraction)
	if err != nil {
		return Extraction{}, fmt.Errorf("un-parseable model response: %w", err)
	}

	return extraction, nil
}
