// Package encoder は画像リソースとモデルAPIへ送るインラインデータとの相互変換を行います。
package encoder

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/domain"

	"google.golang.org/genai"
)

// ErrMalformedResource は画像リソースを (メディアタイプ, ペイロード) に分解できない場合に返されます。
var ErrMalformedResource = errors.New("malformed image resource")

const base64Marker = ";base64"

// EncodedPart は転送用に base64 化された画像パーツです。
// 1リクエスト内で作成され、そのリクエストの完了とともに破棄されます。
type EncodedPart struct {
	MIMEType string
	Data     string
}

// Encode は ImageResource を data URL に変換し、メディアタイプとペイロードに分解します。
// MIMEType が image/* かどうかは検証しません。呼び出し側で確認してください。
func Encode(res domain.ImageResource) (EncodedPart, error) {
	return ParseDataURL(DataURL(res))
}

// DataURL は ImageResource を data URL 形式の文字列にします。
// 利用者側でそのまま表示できるインライン参照として使えます。
func DataURL(res domain.ImageResource) string {
	var b strings.Builder
	b.Grow(len("data:") + len(res.MIMEType) + len(base64Marker) + 1 + base64.StdEncoding.EncodedLen(len(res.Data)))
	b.WriteString("data:")
	b.WriteString(res.MIMEType)
	b.WriteString(base64Marker)
	b.WriteByte(',')
	b.WriteString(base64.StdEncoding.EncodeToString(res.Data))
	return b.String()
}

// ParseDataURL は "data:<mime>;base64,<payload>" 形式の文字列を分解します。
// 区切りの "," がない場合や、":" と ";" の間にメディアタイプがない場合は ErrMalformedResource を返します。
func ParseDataURL(s string) (EncodedPart, error) {
	header, payload, ok := strings.Cut(s, ",")
	if !ok {
		return EncodedPart{}, fmt.Errorf("%w: missing separator", ErrMalformedResource)
	}

	_, rest, ok := strings.Cut(header, ":")
	if !ok {
		return EncodedPart{}, fmt.Errorf("%w: missing media type", ErrMalformedResource)
	}
	mimeType, _, ok := strings.Cut(rest, ";")
	if !ok || mimeType == "" {
		return EncodedPart{}, fmt.Errorf("%w: missing media type", ErrMalformedResource)
	}

	return EncodedPart{MIMEType: mimeType, Data: payload}, nil
}

// Bytes はペイロードを元のバイト列に戻します。
func (p EncodedPart) Bytes() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(p.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResource, err)
	}
	return data, nil
}

// Decode は EncodedPart を ImageResource に戻します。
func Decode(p EncodedPart) (domain.ImageResource, error) {
	data, err := p.Bytes()
	if err != nil {
		return domain.ImageResource{}, err
	}
	return domain.ImageResource{Data: data, MIMEType: p.MIMEType}, nil
}

// ToPart は EncodedPart を genai の InlineData パーツに変換します。
func ToPart(p EncodedPart) (*genai.Part, error) {
	data, err := p.Bytes()
	if err != nil {
		return nil, err
	}
	return genai.NewPartFromBytes(data, p.MIMEType), nil
}
