// Package source は利用者が指定した画像を読み込み、ImageResource に変換します。
// ローカルファイル、data URL、http(s) URL、gs:// URI に対応します。
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/encoder"
	"github.com/shouni/gemini-photo-kit/pkg/imgutil"

	"github.com/gabriel-vasile/mimetype"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// DefaultMaxBytes は読み込む画像サイズの既定の上限です (20 MiB)。
const DefaultMaxBytes int64 = 20 << 20

var (
	ErrNotImage          = fmt.Errorf("%w: not an image", domain.ErrInvalidOptions)
	ErrTooLarge          = fmt.Errorf("%w: image exceeds size limit", domain.ErrInvalidOptions)
	ErrUnsupportedSource = fmt.Errorf("%w: unsupported image source", domain.ErrInvalidOptions)
	ErrUnsafeURL         = fmt.Errorf("%w: unsafe url", domain.ErrInvalidOptions)
	ErrFetch             = fmt.Errorf("%w: image could not be fetched", domain.ErrInvalidOptions)
)

// HTTPClient は、URLの検証と取得を行うためのインターフェースです。
// httpkit.Client がこれを満たします。
type HTTPClient interface {
	httpkit.Doer
	IsSafeURL(urlStr string) (bool, error)
}

var _ HTTPClient = (*httpkit.Client)(nil)

// Config は Loader の動作設定です。
type Config struct {
	MaxBytes    int64
	Compress    bool
	JPEGQuality int
}

// Loader は画像ソースの種類に応じて読み込み方法を切り替えます。
type Loader struct {
	httpClient HTTPClient
	reader     remoteio.InputReader
	cfg        Config
}

// NewLoader は Loader を初期化します。
// httpClient と reader は nil を許容し、その場合は対応するスキームを受け付けません。
func NewLoader(httpClient HTTPClient, reader remoteio.InputReader, cfg Config) *Loader {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.JPEGQuality <= 0 {
		cfg.JPEGQuality = imgutil.DefaultJPEGQuality
	}
	return &Loader{
		httpClient: httpClient,
		reader:     reader,
		cfg:        cfg,
	}
}

// Load は uri が示す画像を読み込みます。
func (l *Loader) Load(ctx context.Context, uri string) (domain.ImageResource, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return domain.ImageResource{}, fmt.Errorf("%w: empty location", ErrUnsupportedSource)
	}

	if strings.HasPrefix(uri, "data:") {
		return l.loadDataURL(uri)
	}

	data, err := l.fetch(ctx, uri)
	if err != nil {
		return domain.ImageResource{}, err
	}
	res, err := l.finish(data)
	if err != nil {
		return domain.ImageResource{}, fmt.Errorf("%s: %w", uri, err)
	}
	slog.DebugContext(ctx, "画像を読み込みました", "source", redact(uri), "mime_type", res.MIMEType, "bytes", len(res.Data))
	return res, nil
}

// LoadRemote は Load と同様ですが、ローカルファイルの読み込みを許可しません。
// 外部から受け取った指定を扱う場合に使います。
func (l *Loader) LoadRemote(ctx context.Context, uri string) (domain.ImageResource, error) {
	if !IsRemote(uri) {
		return domain.ImageResource{}, fmt.Errorf("%w: local paths are not accepted", ErrUnsupportedSource)
	}
	return l.Load(ctx, uri)
}

// IsRemote は uri がローカルファイル以外のソースを指しているかどうかを返します。
func IsRemote(uri string) bool {
	uri = strings.TrimSpace(uri)
	for _, prefix := range []string{"data:", "http://", "https://", "gs://"} {
		if strings.HasPrefix(uri, prefix) {
			return true
		}
	}
	return false
}

// Read は r から画像を読み込みます。HTTP のアップロードなど、すでにストリームがある場合に使います。
func (l *Loader) Read(r io.Reader) (domain.ImageResource, error) {
	data, err := readLimited(r, l.cfg.MaxBytes)
	if err != nil {
		return domain.ImageResource{}, err
	}
	return l.finish(data)
}

func (l *Loader) fetch(ctx context.Context, uri string) ([]byte, error) {
	switch {
	case remoteio.IsGCSURI(uri):
		if l.reader == nil {
			return nil, fmt.Errorf("%w: gs:// is not configured", ErrUnsupportedSource)
		}
		rc, err := l.reader.Open(ctx, uri)
		if err != nil {
			return nil, fmt.Errorf("%w: GCSからの画像取得に失敗しました: %w", ErrFetch, err)
		}
		defer rc.Close()
		return readLimited(rc, l.cfg.MaxBytes)

	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		if l.httpClient == nil {
			return nil, fmt.Errorf("%w: http is not configured", ErrUnsupportedSource)
		}
		if safe, err := l.httpClient.IsSafeURL(uri); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsafeURL, err)
		} else if !safe {
			return nil, ErrUnsafeURL
		}
		return l.download(ctx, uri)

	case strings.Contains(uri, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, uri)

	default:
		f, err := os.Open(uri)
		if err != nil {
			return nil, fmt.Errorf("%w: 画像ファイルを開けませんでした: %w", ErrFetch, err)
		}
		defer f.Close()
		return readLimited(f, l.cfg.MaxBytes)
	}
}

// download はレスポンスボディを上限 +1 バイトまでしか読み込みません。
// 上限を超える画像は全体をメモリに載せる前に拒否されます。
func (l *Loader) download(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedSource, err)
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: 画像のダウンロードに失敗しました: %w", ErrFetch, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: 画像のダウンロードに失敗しました: status %d", ErrFetch, resp.StatusCode)
	}
	if resp.ContentLength > l.cfg.MaxBytes {
		resp.Body.Close()
		return nil, ErrTooLarge
	}

	data, err := httpkit.HandleLimitedResponse(resp, l.cfg.MaxBytes+1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if int64(len(data)) > l.cfg.MaxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

func (l *Loader) loadDataURL(uri string) (domain.ImageResource, error) {
	part, err := encoder.ParseDataURL(uri)
	if err != nil {
		return domain.ImageResource{}, err
	}
	res, err := encoder.Decode(part)
	if err != nil {
		return domain.ImageResource{}, err
	}
	if int64(len(res.Data)) > l.cfg.MaxBytes {
		return domain.ImageResource{}, ErrTooLarge
	}
	if !res.IsImage() {
		return domain.ImageResource{}, fmt.Errorf("%w: declared %s", ErrNotImage, res.MIMEType)
	}
	return l.maybeCompress(res), nil
}

// finish は内容から MIME タイプを判定し、画像であることを確認します。
func (l *Loader) finish(data []byte) (domain.ImageResource, error) {
	if len(data) == 0 {
		return domain.ImageResource{}, fmt.Errorf("%w: empty data", ErrNotImage)
	}
	mimeType := mimetype.Detect(data).String()
	res := domain.ImageResource{Data: data, MIMEType: mimeType}
	if !res.IsImage() {
		return domain.ImageResource{}, fmt.Errorf("%w: detected %s", ErrNotImage, mimeType)
	}
	return l.maybeCompress(res), nil
}

func (l *Loader) maybeCompress(res domain.ImageResource) domain.ImageResource {
	if !l.cfg.Compress {
		return res
	}
	data, mimeType := imgutil.ShrinkIfSmaller(res.Data, res.MIMEType, l.cfg.JPEGQuality)
	return domain.ImageResource{Data: data, MIMEType: mimeType}
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("画像の読み込みに失敗しました: %w", err)
	}
	if n > maxBytes {
		return nil, ErrTooLarge
	}
	return buf.Bytes(), nil
}

// redact はログに data URL 全体が出力されないようにします。
func redact(uri string) string {
	if strings.HasPrefix(uri, "data:") {
		head, _, _ := strings.Cut(uri, ",")
		return head + ",..."
	}
	return uri
}

// IsNotImage は err が画像ではない入力によるものかどうかを返します。
func IsNotImage(err error) bool {
	return errors.Is(err, ErrNotImage)
}
