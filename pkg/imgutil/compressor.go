package imgutil

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
)

const (
	// DefaultJPEGQuality は品質が指定されない場合に使う値です。
	DefaultJPEGQuality = 75
	jpegMIMEType       = "image/jpeg"
)

// CompressToJPEG は画像データ（PNG, GIF, JPEG）を JPEG に再エンコードします。
// JPEG は透過を扱えないため、透過部分は白で塗りつぶします。
// quality が 1..100 の範囲外なら DefaultJPEGQuality を使います。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	bounds := img.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Over)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, canvas, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ShrinkIfSmaller は JPEG 化したほうが小さくなる場合だけ変換後のデータを返します。
// 変換できない、または小さくならない場合は元のデータとその MIME タイプをそのまま返します。
func ShrinkIfSmaller(data []byte, mimeType string, quality int) ([]byte, string) {
	compressed, err := CompressToJPEG(data, quality)
	if err != nil || len(compressed) >= len(data) {
		return data, mimeType
	}
	return compressed, jpegMIMEType
}
