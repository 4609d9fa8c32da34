// Package httpapi は各写真ツールを JSON / multipart の HTTP API として公開します。
package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/generator"
	"github.com/shouni/gemini-photo-kit/pkg/source"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxUploadBytes は multipart リクエスト全体の既定の上限です。
const DefaultMaxUploadBytes int64 = 64 << 20

// ImageLoader は外部から指定された画像を読み込みます。*source.Loader がこれを満たします。
type ImageLoader interface {
	LoadRemote(ctx context.Context, uri string) (domain.ImageResource, error)
	Read(r io.Reader) (domain.ImageResource, error)
}

var _ ImageLoader = (*source.Loader)(nil)

// Handler は HTTP リクエストをツールの実行に変換します。
type Handler struct {
	gen            generator.PhotoGenerator
	loader         ImageLoader
	maxUploadBytes int64
}

// NewHandler は Handler を生成します。maxUploadBytes が 0 以下の場合は既定値を使います。
func NewHandler(gen generator.PhotoGenerator, loader ImageLoader, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Handler{gen: gen, loader: loader, maxUploadBytes: maxUploadBytes}
}

// Routes はルーティングを設定した http.Handler を返します。
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/tools", func(r chi.Router) {
			r.Get("/", h.ListTools)
			r.Post("/"+string(domain.ToolRestoration), h.Restore)
			r.Post("/"+string(domain.ToolIDPhoto), h.IDPhoto)
			r.Post("/"+string(domain.ToolProductShowcase), h.ProductShowcase)
			r.Post("/"+string(domain.ToolObjectRemoval), h.RemoveObject)
			r.Post("/"+string(domain.ToolOfficeHeadshot), h.OfficeHeadshot)
		})
	})
	return r
}

// NewServer は生成に時間がかかることを考慮したタイムアウト付きの http.Server を返します。
func NewServer(addr string, handler http.Handler, requestTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      requestTimeout + 30*time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
