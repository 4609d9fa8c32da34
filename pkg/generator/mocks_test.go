package generator

import (
	"context"

	"google.golang.org/genai"
)

// --- Mocks ---

type mockContentGenerator struct {
	generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func (m *mockContentGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, contents, config)
	}
	return imageResponse("image/png", []byte("fake")), nil
}

// imageResponse はインライン画像を1つ含むレスポンスを作成します。
func imageResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}},
			},
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

// textResponse はテキストのみのレスポンスを作成します。
func textResponse(text string, reason genai.FinishReason) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Parts: []*genai.Part{{Text: text}}},
			FinishReason: reason,
		}},
	}
}
