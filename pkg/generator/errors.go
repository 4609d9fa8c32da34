package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/encoder"
)

var (
	// ErrBlocked はモデル側のポリシーによりリクエスト自体が拒否されたことを示します。
	ErrBlocked = errors.New("request blocked")
	// ErrRefused は画像が返らず、STOP 以外の理由で生成が終了したことを示します。
	ErrRefused = errors.New("generation stopped")
	// ErrEmptyResponse は正常終了したものの画像が含まれていなかったことを示します。
	ErrEmptyResponse = errors.New("no image returned")
	// ErrTransport は通信エラー、タイムアウト、API エラーなどモデル呼び出し自体の失敗を示します。
	ErrTransport = errors.New("model request failed")
	// ErrInvalidCount は要求枚数が許容範囲外であることを示します。
	ErrInvalidCount = errors.New("invalid number of images")
)

// BlockedError はプロンプトフィードバックのブロック理由を保持します。
type BlockedError struct {
	Reason  string
	Message string
}

func (e *BlockedError) Error() string {
	msg := fmt.Sprintf("リクエストがブロックされました。理由: %s。", e.Reason)
	if e.Message != "" {
		msg += " " + e.Message
	}
	return msg
}

func (e *BlockedError) Unwrap() error { return ErrBlocked }

// RefusedError は先頭候補の FinishReason を保持します。
type RefusedError struct {
	FinishReason string
}

func (e *RefusedError) Error() string {
	return fmt.Sprintf("画像生成が途中で停止しました。理由: %s。安全設定に関連している可能性があります。", e.FinishReason)
}

func (e *RefusedError) Unwrap() error { return ErrRefused }

// EmptyResponseError は画像の代わりに返されたテキストがあれば保持します。
type EmptyResponseError struct {
	Text string
}

func (e *EmptyResponseError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("AIモデルが画像を返しませんでした。モデルはテキストで応答しました: %q", e.Text)
	}
	return "AIモデルが画像を返しませんでした。安全フィルター、またはリクエストが複雑すぎることが原因の可能性があります。別の画像で試してください。"
}

func (e *EmptyResponseError) Unwrap() error { return ErrEmptyResponse }

// TransportError はモデル呼び出しで発生したエラーを包みます。
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("モデルへのリクエストに失敗しました: %v", e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{ErrTransport, e.Err} }

// ErrorKind は UI 層へ返すエラーの分類です。
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidInput
	KindMalformedResource
	KindBlocked
	KindRefused
	KindEmptyResponse
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindMalformedResource:
		return "malformed_resource"
	case KindBlocked:
		return "blocked"
	case KindRefused:
		return "refused"
	case KindEmptyResponse:
		return "empty_response"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Classify は err を ErrorKind に分類します。
// 生成結果に関する分類を入力エラーより優先します。
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrBlocked):
		return KindBlocked
	case errors.Is(err, ErrRefused):
		return KindRefused
	case errors.Is(err, ErrEmptyResponse):
		return KindEmptyResponse
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, encoder.ErrMalformedResource):
		return KindMalformedResource
	case errors.Is(err, domain.ErrInvalidOptions), errors.Is(err, ErrInvalidCount):
		return KindInvalidInput
	default:
		return KindUnknown
	}
}

// UserMessage は err を利用者に表示する1つの文字列に変換します。
// 呼び出し経路で付与されたラップ用の接頭辞は取り除きます。
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var blocked *BlockedError
	var refused *RefusedError
	var empty *EmptyResponseError
	var transport *TransportError
	switch {
	case errors.As(err, &blocked):
		return blocked.Error()
	case errors.As(err, &refused):
		return refused.Error()
	case errors.As(err, &empty):
		return empty.Error()
	case errors.As(err, &transport):
		return "モデルへのリクエストに失敗しました。時間をおいて再度お試しください。"
	}

	switch Classify(err) {
	case KindMalformedResource:
		return "画像を読み込めませんでした。別の画像ファイルを選択してください。"
	case KindInvalidInput:
		return "入力内容が正しくありません: " + strings.TrimSpace(err.Error())
	default:
		return "予期しないエラーが発生しました: " + err.Error()
	}
}
