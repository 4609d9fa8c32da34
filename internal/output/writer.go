// Package output は生成された画像をディレクトリに保存します。
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/domain"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Writer は画像を Dir 以下に一意なファイル名で書き出します。
type Writer struct {
	Dir    string
	Prefix string
}

// NewWriter は Writer を生成します。prefix はファイル名の先頭に付与されます (例: "restoration")。
func NewWriter(dir, prefix string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{Dir: dir, Prefix: prefix}
}

// WriteAll は images を順番に保存し、書き出したパスを同じ順序で返します。
func (w *Writer) WriteAll(images []domain.ImageResource) ([]string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	paths := make([]string, 0, len(images))
	for i, img := range images {
		if img.IsEmpty() {
			return paths, fmt.Errorf("%d 枚目の画像が空です", i+1)
		}
		path := filepath.Join(w.Dir, w.fileName(i, img.MIMEType))
		if err := os.WriteFile(path, img.Data, 0o644); err != nil {
			return paths, fmt.Errorf("画像の保存に失敗しました (%s): %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (w *Writer) fileName(index int, mimeType string) string {
	id := strings.SplitN(uuid.New().String(), "-", 2)[0]
	name := fmt.Sprintf("%s-%02d%s", id, index+1, Extension(mimeType))
	if w.Prefix != "" {
		name = w.Prefix + "-" + name
	}
	return name
}

// Extension は MIME タイプに対応する拡張子を返します。不明な場合は ".bin" です。
func Extension(mimeType string) string {
	base, _, _ := strings.Cut(mimeType, ";")
	if m := mimetype.Lookup(strings.ToLower(strings.TrimSpace(base))); m != nil && m.Extension() != "" {
		return m.Extension()
	}
	return ".bin"
}
