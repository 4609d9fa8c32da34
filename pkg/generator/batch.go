package generator

import (
	"context"
	"log/slog"

	"github.com/shouni/gemini-photo-kit/pkg/domain"

	"golang.org/x/sync/errgroup"
)

// executeBatch は同一内容のリクエストを count 件同時に送信し、すべての完了を待ちます。
// 最初のエラーで共有コンテキストをキャンセルし、成功した結果も含めて破棄します。
// 実行中の他のリクエストは完了を待たずに打ち切られます。
// 結果はリクエストの枠番号順に並びます。
func (g *GeminiPhotoGenerator) executeBatch(ctx context.Context, req GenerationRequest, count int) ([]domain.ImageResource, error) {
	results := make([]domain.ImageResource, count)

	eg, egCtx := errgroup.WithContext(ctx)
	for i := range count {
		eg.Go(func() error {
			img, err := g.Execute(egCtx, req)
			if err != nil {
				return err
			}
			results[i] = img
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		slog.WarnContext(ctx, "一括生成に失敗したため結果を破棄します", "tool", req.Tool, "count", count, "error", err)
		return nil, err
	}
	return results, nil
}
