package generator

import (
	"context"

	"github.com/shouni/gemini-photo-kit/pkg/domain"

	"google.golang.org/genai"
)

// ContentGenerator はモデルへの生成リクエストを抽象化するインターフェースです。
// *genai.Models がこれを満たします。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// PhotoGenerator は UI 層や HTTP 層が利用する統合窓口です。
type PhotoGenerator interface {
	// Run はツールの種類に応じて画像を生成します。
	Run(ctx context.Context, tool domain.Tool) ([]domain.ImageResource, error)

	RestorePhoto(ctx context.Context, opts domain.Restoration) (domain.ImageResource, error)
	GenerateIDPhoto(ctx context.Context, opts domain.IDPhoto) ([]domain.ImageResource, error)
	GenerateProductShowcase(ctx context.Context, opts domain.ProductShowcase) ([]domain.ImageResource, error)
	RemoveObject(ctx context.Context, opts domain.ObjectRemoval) (domain.ImageResource, error)
	GenerateOfficeHeadshot(ctx context.Context, opts domain.OfficeHeadshot) ([]domain.ImageResource, error)
}
