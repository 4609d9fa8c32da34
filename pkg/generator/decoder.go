package generator

import (
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/domain"

	"google.golang.org/genai"
)

// OutcomeKind は1回のレスポンスの解析結果の種類です。
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeBlocked
	OutcomeRefused
	OutcomeEmptyResponse
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeRefused:
		return "refused"
	case OutcomeEmptyResponse:
		return "empty_response"
	default:
		return "unknown"
	}
}

// Outcome は Decode の結果です。Kind に対応するフィールドだけが設定されます。
type Outcome struct {
	Kind OutcomeKind

	Image domain.ImageResource // OutcomeSuccess

	BlockReason  string // OutcomeBlocked
	BlockMessage string // OutcomeBlocked

	FinishReason string // OutcomeRefused

	Text string // OutcomeEmptyResponse（空の場合あり）
}

// Err は失敗系の Outcome を対応するエラーに変換します。成功時は nil です。
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeSuccess:
		return nil
	case OutcomeBlocked:
		return &BlockedError{Reason: o.BlockReason, Message: o.BlockMessage}
	case OutcomeRefused:
		return &RefusedError{FinishReason: o.FinishReason}
	default:
		return &EmptyResponseError{Text: o.Text}
	}
}

// Decode はモデルのレスポンスを解析します。判定の優先順位は次のとおりです。
//  1. プロンプトフィードバックのブロック理由
//  2. 候補とパーツを順に走査して最初に見つかったインライン画像
//  3. 先頭候補の STOP 以外の FinishReason
//  4. レスポンスに含まれるテキスト
//  5. 何もない
func Decode(resp *genai.GenerateContentResponse) Outcome {
	if resp == nil {
		return Outcome{Kind: OutcomeEmptyResponse}
	}

	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return Outcome{
			Kind:         OutcomeBlocked,
			BlockReason:  string(fb.BlockReason),
			BlockMessage: fb.BlockReasonMessage,
		}
	}

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			return Outcome{
				Kind:  OutcomeSuccess,
				Image: domain.ImageResource{Data: part.InlineData.Data, MIMEType: part.InlineData.MIMEType},
			}
		}
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
		reason := resp.Candidates[0].FinishReason
		if reason != "" && reason != genai.FinishReasonStop {
			return Outcome{Kind: OutcomeRefused, FinishReason: string(reason)}
		}
	}

	return Outcome{Kind: OutcomeEmptyResponse, Text: strings.TrimSpace(responseText(resp))}
}

// responseText は先頭候補のテキストパーツを連結します。思考過程のパーツは含めません。
func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}
