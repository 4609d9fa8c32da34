package domain

import "strings"

// ImageResource は画像バイト列とそのメディアタイプを保持する値です。
// 利用者から受け取った入力画像と、モデルが返した生成画像の両方を表します。
// 生成後に変更してはいけません。
type ImageResource struct {
	Data     []byte
	MIMEType string
}

// NewImageResource は data と mimeType から ImageResource を作成します。
// data はコピーされるため、呼び出し元がスライスを再利用しても影響を受けません。
func NewImageResource(data []byte, mimeType string) ImageResource {
	buf := make([]byte, len(data))
	copy(buf, data)
	return ImageResource{Data: buf, MIMEType: mimeType}
}

// IsImage は MIMEType が image/* ファミリーかどうかを返します。
func (r ImageResource) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(r.MIMEType), "image/")
}

// IsEmpty はデータが空かどうかを返します。
func (r ImageResource) IsEmpty() bool {
	return len(r.Data) == 0
}
