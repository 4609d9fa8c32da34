package generator

import (
	"fmt"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/encoder"
	"github.com/shouni/gemini-photo-kit/pkg/prompt"

	"google.golang.org/genai"
)

// responseModalities はすべてのツールで要求する応答形式です。
// 画像が返らない場合の説明文を受け取れるよう TEXT も含めます。
var responseModalities = []string{string(genai.ModalityImage), string(genai.ModalityText)}

// GenerationRequest はモデルへの1往復分のリクエストです。作成後は変更しません。
type GenerationRequest struct {
	Tool        domain.ToolKind
	Parts       []encoder.EncodedPart
	Instruction string
	Modalities  []string
}

// NewRequest はツールの設定から指示文を組み立て、入力画像をエンコードして GenerationRequest を作成します。
func NewRequest(tool domain.Tool) (GenerationRequest, error) {
	instruction, err := prompt.Build(tool)
	if err != nil {
		return GenerationRequest{}, err
	}

	inputs := tool.Inputs()
	parts := make([]encoder.EncodedPart, 0, len(inputs))
	for i, img := range inputs {
		part, err := encoder.Encode(img)
		if err != nil {
			return GenerationRequest{}, fmt.Errorf("入力画像 %d のエンコードに失敗しました: %w", i, err)
		}
		parts = append(parts, part)
	}

	return GenerationRequest{
		Tool:        tool.Kind(),
		Parts:       parts,
		Instruction: instruction,
		Modalities:  append([]string(nil), responseModalities...),
	}, nil
}

// Contents は genai に渡す Content を新しく作成します。
// 画像パーツを送信順に並べ、最後に指示文を置きます。
func (r GenerationRequest) Contents() ([]*genai.Content, error) {
	parts := make([]*genai.Part, 0, len(r.Parts)+1)
	for _, p := range r.Parts {
		part, err := encoder.ToPart(p)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	parts = append(parts, genai.NewPartFromText(r.Instruction))

	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil
}

// Config は genai の生成設定を新しく作成します。
func (r GenerationRequest) Config() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseModalities: append([]string(nil), r.Modalities...),
	}
}
