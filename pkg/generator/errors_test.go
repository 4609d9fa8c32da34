package generator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/encoder"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"blocked", fmt.Errorf("wrap: %w", &BlockedError{Reason: "SAFETY"}), KindBlocked},
		{"refused", &RefusedError{FinishReason: "RECITATION"}, KindRefused},
		{"empty", &EmptyResponseError{}, KindEmptyResponse},
		{"transport", &TransportError{Err: errors.New("timeout")}, KindTransport},
		{"malformed", fmt.Errorf("x: %w", encoder.ErrMalformedResource), KindMalformedResource},
		{"invalid options", fmt.Errorf("%w: scene", domain.ErrInvalidOptions), KindInvalidInput},
		{"invalid count", ErrInvalidCount, KindInvalidInput},
		{"unknown", errors.New("boom"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	t.Run("ブロック理由とメッセージを含む", func(t *testing.T) {
		msg := UserMessage(fmt.Errorf("写真修復エラー: %w", &BlockedError{Reason: "SAFETY", Message: "policy"}))
		assert.Contains(t, msg, "SAFETY")
		assert.Contains(t, msg, "policy")
		assert.NotContains(t, msg, "写真修復エラー")
	})

	t.Run("FinishReason を含む", func(t *testing.T) {
		assert.Contains(t, UserMessage(&RefusedError{FinishReason: "SAFETY"}), "SAFETY")
	})

	t.Run("テキストがあればそれを表示し、なければ汎用の説明になる", func(t *testing.T) {
		assert.Contains(t, UserMessage(&EmptyResponseError{Text: "try another photo"}), "try another photo")
		assert.Contains(t, UserMessage(&EmptyResponseError{}), "別の画像で試してください")
	})

	t.Run("通信エラーは他の4種類と区別できる汎用メッセージになる", func(t *testing.T) {
		msg := UserMessage(&TransportError{Err: errors.New("dial tcp: i/o timeout")})
		assert.NotContains(t, msg, "dial tcp")
		for _, other := range []error{&BlockedError{}, &RefusedError{}, &EmptyResponseError{}, encoder.ErrMalformedResource} {
			assert.NotEqual(t, UserMessage(other), msg)
		}
	})

	t.Run("nil は空文字", func(t *testing.T) {
		assert.Empty(t, UserMessage(nil))
	})
}
