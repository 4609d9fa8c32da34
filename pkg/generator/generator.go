package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

const (
	// DefaultModel は画像編集に使うモデル名の既定値です。
	DefaultModel = "gemini-2.5-flash-image-preview"
	// DefaultMaxImages は1回の呼び出しで要求できる画像枚数の既定の上限です。
	DefaultMaxImages = 10
)

// GeminiPhotoGenerator はツールの設定をリクエストに変換し、モデルを呼び出して結果を解析します。
type GeminiPhotoGenerator struct {
	client    ContentGenerator
	model     string
	maxImages int
}

var _ PhotoGenerator = (*GeminiPhotoGenerator)(nil)

// NewGeminiPhotoGenerator は依存関係を注入して GeminiPhotoGenerator を初期化します。
// model が空なら DefaultModel、maxImages が0以下なら DefaultMaxImages を使います。
func NewGeminiPhotoGenerator(client ContentGenerator, model string, maxImages int) (*GeminiPhotoGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("client (ContentGenerator) is required")
	}
	if model == "" {
		model = DefaultModel
	}
	if maxImages <= 0 {
		maxImages = DefaultMaxImages
	}
	return &GeminiPhotoGenerator{
		client:    client,
		model:     model,
		maxImages: maxImages,
	}, nil
}

// Run はツールを検証し、要求枚数分のリクエストを並行に実行します。
// 1件でも失敗した場合は他の結果を破棄してそのエラーを返します。
func (g *GeminiPhotoGenerator) Run(ctx context.Context, tool domain.Tool) ([]domain.ImageResource, error) {
	if tool == nil {
		return nil, fmt.Errorf("%w: tool is nil", domain.ErrInvalidOptions)
	}
	if err := tool.Validate(); err != nil {
		return nil, err
	}

	count := tool.OutputCount()
	if count < 1 || count > g.maxImages {
		return nil, fmt.Errorf("%w: %d (allowed 1-%d)", ErrInvalidCount, count, g.maxImages)
	}

	req, err := NewRequest(tool)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "画像生成リクエストを準備しました",
		"tool", req.Tool, "model", g.model, "images", len(req.Parts), "count", count)

	if count == 1 {
		img, err := g.Execute(ctx, req)
		if err != nil {
			return nil, err
		}
		return []domain.ImageResource{img}, nil
	}
	return g.executeBatch(ctx, req, count)
}

// Execute は1件のリクエストを送信し、レスポンスを解析します。
func (g *GeminiPhotoGenerator) Execute(ctx context.Context, req GenerationRequest) (domain.ImageResource, error) {
	contents, err := req.Contents()
	if err != nil {
		return domain.ImageResource{}, err
	}

	resp, err := g.client.GenerateContent(ctx, g.model, contents, req.Config())
	if err != nil {
		slog.WarnContext(ctx, "モデルの呼び出しに失敗しました", "tool", req.Tool, "error", err)
		return domain.ImageResource{}, &TransportError{Err: err}
	}

	outcome := Decode(resp)
	if err := outcome.Err(); err != nil {
		slog.WarnContext(ctx, "画像が返されませんでした", "tool", req.Tool, "outcome", outcome.Kind.String(), "error", err)
		return domain.ImageResource{}, err
	}
	return outcome.Image, nil
}

// RestorePhoto は写真を修復します。
func (g *GeminiPhotoGenerator) RestorePhoto(ctx context.Context, opts domain.Restoration) (domain.ImageResource, error) {
	images, err := g.Run(ctx, opts)
	if err != nil {
		return domain.ImageResource{}, fmt.Errorf("写真修復エラー: %w", err)
	}
	return images[0], nil
}

// GenerateIDPhoto は証明写真を opts.Count 枚生成します。
func (g *GeminiPhotoGenerator) GenerateIDPhoto(ctx context.Context, opts domain.IDPhoto) ([]domain.ImageResource, error) {
	images, err := g.Run(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("証明写真生成エラー: %w", err)
	}
	return images, nil
}

// GenerateProductShowcase は商品撮影画像を opts.Count 枚生成します。
func (g *GeminiPhotoGenerator) GenerateProductShowcase(ctx context.Context, opts domain.ProductShowcase) ([]domain.ImageResource, error) {
	images, err := g.Run(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("商品撮影画像生成エラー: %w", err)
	}
	return images, nil
}

// RemoveObject は画像から指定された物体を消去します。
func (g *GeminiPhotoGenerator) RemoveObject(ctx context.Context, opts domain.ObjectRemoval) (domain.ImageResource, error) {
	images, err := g.Run(ctx, opts)
	if err != nil {
		return domain.ImageResource{}, fmt.Errorf("物体消去エラー: %w", err)
	}
	return images[0], nil
}

// GenerateOfficeHeadshot はビジネス用ヘッドショットを opts.Count 枚生成します。
func (g *GeminiPhotoGenerator) GenerateOfficeHeadshot(ctx context.Context, opts domain.OfficeHeadshot) ([]domain.ImageResource, error) {
	images, err := g.Run(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ヘッドショット生成エラー: %w", err)
	}
	return images, nil
}
