package source

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/encoder"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()
	data := pngBytes(t)

	t.Run("ローカルファイルを読み込み MIME を判定すること", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.bin")
		require.NoError(t, os.WriteFile(path, data, 0o600))

		l := NewLoader(nil, nil, Config{})
		res, err := l.Load(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, "image/png", res.MIMEType)
		assert.Equal(t, data, res.Data)
	})

	t.Run("data URL を読み込めること", func(t *testing.T) {
		uri := encoder.DataURL(domain.ImageResource{Data: data, MIMEType: "image/png"})

		res, err := NewLoader(nil, nil, Config{}).Load(ctx, uri)

		require.NoError(t, err)
		assert.Equal(t, "image/png", res.MIMEType)
		assert.Equal(t, data, res.Data)
	})

	t.Run("画像以外の data URL は拒否されること", func(t *testing.T) {
		_, err := NewLoader(nil, nil, Config{}).Load(ctx, "data:text/plain;base64,SGVsbG8=")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotImage)
		assert.ErrorIs(t, err, domain.ErrInvalidOptions)
	})

	t.Run("画像以外のファイルは拒否されること", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o600))

		_, err := NewLoader(nil, nil, Config{}).Load(ctx, path)

		assert.True(t, IsNotImage(err))
	})

	t.Run("上限を超えるファイルは拒否されること", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.png")
		require.NoError(t, os.WriteFile(path, data, 0o600))

		_, err := NewLoader(nil, nil, Config{MaxBytes: 8}).Load(ctx, path)

		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("存在しないファイルはエラーになること", func(t *testing.T) {
		_, err := NewLoader(nil, nil, Config{}).Load(ctx, filepath.Join(t.TempDir(), "missing.png"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFetch)
		assert.Contains(t, err.Error(), "画像ファイルを開けませんでした")
	})

	t.Run("ダウンロード失敗は ErrFetch になること", func(t *testing.T) {
		client := &mockHTTPClient{err: errors.New("404 not found")}

		_, err := NewLoader(client, nil, Config{}).Load(ctx, "https://8.8.8.8/img.png")

		assert.ErrorIs(t, err, ErrFetch)
		assert.ErrorIs(t, err, domain.ErrInvalidOptions)
	})

	t.Run("HTTP クライアント経由でダウンロードできること", func(t *testing.T) {
		client := &mockHTTPClient{data: data}

		res, err := NewLoader(client, nil, Config{}).Load(ctx, "https://8.8.8.8/img.png")

		require.NoError(t, err)
		assert.Equal(t, 1, client.calls)
		assert.Equal(t, "image/png", res.MIMEType)
	})

	t.Run("安全でないと判定された URL にはアクセスしないこと", func(t *testing.T) {
		client := &mockHTTPClient{data: data, safeErr: errors.New("制限されたネットワークへのアクセスを検知")}

		_, err := NewLoader(client, nil, Config{}).Load(ctx, "http://10.0.0.5/img.png")

		assert.ErrorIs(t, err, ErrUnsafeURL)
		assert.Zero(t, client.calls)
	})

	t.Run("httpkit クライアントはループバックアドレスを拒否すること", func(t *testing.T) {
		for _, uri := range []string{"http://127.0.0.1/img.png", "http://[::1]/img.png", "http://169.254.169.254/latest"} {
			_, err := NewLoader(httpkit.New(time.Second), nil, Config{}).Load(ctx, uri)
			assert.ErrorIs(t, err, ErrUnsafeURL, uri)
		}
	})

	t.Run("上限を超えるレスポンスは読み切る前に拒否されること", func(t *testing.T) {
		body := &endlessReader{}
		client := &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: http.StatusOK, Body: body, ContentLength: -1}, nil
		}}

		_, err := NewLoader(client, nil, Config{MaxBytes: 1024}).Load(ctx, "https://8.8.8.8/huge.png")

		assert.ErrorIs(t, err, ErrTooLarge)
		assert.LessOrEqual(t, body.read, int64(1025))
	})

	t.Run("Content-Length が上限を超える場合は本文を読まないこと", func(t *testing.T) {
		body := &endlessReader{}
		client := &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: http.StatusOK, Body: body, ContentLength: 1 << 30}, nil
		}}

		_, err := NewLoader(client, nil, Config{MaxBytes: 1024}).Load(ctx, "https://8.8.8.8/huge.png")

		assert.ErrorIs(t, err, ErrTooLarge)
		assert.Zero(t, body.read)
	})

	t.Run("2xx 以外のステータスは ErrFetch になること", func(t *testing.T) {
		client := &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader("not found"))}, nil
		}}

		_, err := NewLoader(client, nil, Config{}).Load(ctx, "https://8.8.8.8/missing.png")

		assert.ErrorIs(t, err, ErrFetch)
	})

	t.Run("gs:// はリーダー経由で読み込むこと", func(t *testing.T) {
		reader := &mockReader{objects: map[string][]byte{"gs://bucket/photo.png": data}}

		res, err := NewLoader(nil, reader, Config{}).Load(ctx, "gs://bucket/photo.png")

		require.NoError(t, err)
		assert.Equal(t, data, res.Data)
	})

	t.Run("remoteio の UniversalInputReader をそのまま使えること", func(t *testing.T) {
		reader := remoteio.NewUniversalInputReader(nil, nil)

		_, err := NewLoader(nil, reader, Config{}).Load(ctx, "gs://bucket/photo.png")

		assert.ErrorIs(t, err, ErrFetch)
		assert.Contains(t, err.Error(), "GCSクライアントが未初期化です")
	})

	t.Run("リーダー未設定の gs:// は未対応として扱うこと", func(t *testing.T) {
		_, err := NewLoader(nil, nil, Config{}).Load(ctx, "gs://bucket/photo.png")

		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})

	t.Run("未知のスキームは未対応として扱うこと", func(t *testing.T) {
		_, err := NewLoader(nil, nil, Config{}).Load(ctx, "ftp://example.com/a.png")

		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})

	t.Run("空の指定はエラーになること", func(t *testing.T) {
		_, err := NewLoader(nil, nil, Config{}).Load(ctx, "  ")

		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})
}

func TestLoader_LoadRemote(t *testing.T) {
	t.Run("ローカルパスは拒否されること", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.png")
		require.NoError(t, os.WriteFile(path, pngBytes(t), 0o600))

		_, err := NewLoader(nil, nil, Config{}).LoadRemote(context.Background(), path)

		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})

	t.Run("data URL は許可されること", func(t *testing.T) {
		uri := encoder.DataURL(domain.ImageResource{Data: pngBytes(t), MIMEType: "image/png"})

		_, err := NewLoader(nil, nil, Config{}).LoadRemote(context.Background(), uri)

		assert.NoError(t, err)
	})
}

func TestLoader_Read(t *testing.T) {
	t.Run("ストリームから画像を読み込めること", func(t *testing.T) {
		data := pngBytes(t)

		res, err := NewLoader(nil, nil, Config{}).Read(bytes.NewReader(data))

		require.NoError(t, err)
		assert.Equal(t, "image/png", res.MIMEType)
	})

	t.Run("空のストリームは拒否されること", func(t *testing.T) {
		_, err := NewLoader(nil, nil, Config{}).Read(strings.NewReader(""))

		assert.ErrorIs(t, err, ErrNotImage)
	})
}
