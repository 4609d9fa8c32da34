// Package prompt はツールごとにモデルへ渡す指示文を組み立てます。
//
// 各テンプレートには「顔を変えない」「編集後の画像のみを返す」など、モデルに必ず守らせる
// 制約文が含まれています。文言を変えるとモデルの挙動が変わるため、編集する際は
// prompt_test.go の必須フレーズも合わせて確認してください。
package prompt

import (
	"fmt"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

// Build はツールの設定から指示文を作成します。
func Build(tool domain.Tool) (string, error) {
	switch t := tool.(type) {
	case domain.Restoration:
		return Restoration(t), nil
	case domain.IDPhoto:
		return IDPhoto(t), nil
	case domain.ProductShowcase:
		return ProductShowcase(t), nil
	case domain.ObjectRemoval:
		return ObjectRemoval(t), nil
	case domain.OfficeHeadshot:
		return OfficeHeadshot(t), nil
	case nil:
		return "", fmt.Errorf("%w: tool is nil", domain.ErrInvalidOptions)
	default:
		return "", fmt.Errorf("%w: unsupported tool %T", domain.ErrInvalidOptions, tool)
	}
}
