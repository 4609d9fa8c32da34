package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/generator"
	"github.com/shouni/gemini-photo-kit/pkg/source"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"
)

// app はコマンド間で共有する依存関係をまとめたものです。
type app struct {
	gen    *generator.GeminiPhotoGenerator
	loader *source.Loader
	closer io.Closer
}

// newApp は Gemini クライアントと画像ローダーを初期化します。
// needGCS が true の場合のみ Cloud Storage クライアントを作成します。
func newApp(ctx context.Context, needGCS bool) (*app, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini クライアントの初期化に失敗しました: %w", err)
	}

	gen, err := generator.NewGeminiPhotoGenerator(client.Models, cfg.Model, cfg.MaxImages)
	if err != nil {
		return nil, err
	}

	a := &app{gen: gen}
	var reader remoteio.InputReader
	if needGCS {
		factory, err := gcsfactory.New(ctx)
		if err != nil {
			return nil, err
		}
		a.closer = factory
		if reader, err = factory.InputReader(); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.loader = source.NewLoader(httpkit.New(cfg.FetchTimeout), reader, source.Config{
		MaxBytes:    cfg.MaxInputBytes,
		Compress:    cfg.CompressInputs,
		JPEGQuality: cfg.JPEGQuality,
	})
	return a, nil
}

func (a *app) Close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		slog.Warn("クライアントの解放に失敗しました", "error", err)
	}
}

func anyGCS(uris ...string) bool {
	for _, uri := range uris {
		if remoteio.IsGCSURI(strings.TrimSpace(uri)) {
			return true
		}
	}
	return false
}
