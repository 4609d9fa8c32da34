package generator

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shouni/gemini-photo-kit/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func idPhoto(count int) domain.IDPhoto {
	return domain.IDPhoto{
		Image:       inputImage,
		Size:        domain.IDPhotoSize3x4,
		Background:  domain.IDBackgroundWhite,
		AspectRatio: domain.FramePortrait,
		Count:       count,
	}
}

func TestGeminiPhotoGenerator_Batch(t *testing.T) {
	t.Run("5枚要求すると同一内容のリクエストを5件同時に送る", func(t *testing.T) {
		const n = 5
		var (
			mu        sync.Mutex
			seen      [][]*genai.Content
			inFlight  atomic.Int32
			maxFlight atomic.Int32
		)
		arrived := make(chan struct{}, n)
		release := make(chan struct{})

		ai := &mockContentGenerator{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				mu.Lock()
				seen = append(seen, contents)
				mu.Unlock()

				cur := inFlight.Add(1)
				for {
					prev := maxFlight.Load()
					if cur <= prev || maxFlight.CompareAndSwap(prev, cur) {
						break
					}
				}
				arrived <- struct{}{}
				<-release
				inFlight.Add(-1)
				return imageResponse("image/png", []byte("OUT")), nil
			},
		}

		// 全リクエストが揃うまで応答を止める。揃わなければタイムアウトで解放する。
		go func() {
			defer close(release)
			timeout := time.After(2 * time.Second)
			for range n {
				select {
				case <-arrived:
				case <-timeout:
					return
				}
			}
		}()

		g, _ := NewGeminiPhotoGenerator(ai, "m", 10)
		images, err := g.GenerateIDPhoto(context.Background(), idPhoto(n))

		require.NoError(t, err)
		assert.Len(t, images, n)
		assert.Equal(t, int32(n), maxFlight.Load(), "リクエストが並行に送信されていない")

		require.Len(t, seen, n)
		for i := 1; i < n; i++ {
			assert.Equal(t, seen[0], seen[i], "リクエスト %d の内容が異なる", i)
		}
	})

	t.Run("3件目が失敗すると全体が失敗し、他の結果は返らない", func(t *testing.T) {
		var calls atomic.Int32
		ai := &mockContentGenerator{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				if calls.Add(1) == 3 {
					return textResponse("", genai.FinishReasonSafety), nil
				}
				return imageResponse("image/png", []byte("OUT")), nil
			},
		}
		g, _ := NewGeminiPhotoGenerator(ai, "m", 10)

		images, err := g.GenerateIDPhoto(context.Background(), idPhoto(5))

		assert.Nil(t, images)
		assert.ErrorIs(t, err, ErrRefused)
		assert.Equal(t, int32(5), calls.Load())
	})

	t.Run("最初の失敗で残りのリクエストのコンテキストがキャンセルされる", func(t *testing.T) {
		var calls atomic.Int32
		ai := &mockContentGenerator{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				if calls.Add(1) == 1 {
					return &genai.GenerateContentResponse{}, nil
				}
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(5 * time.Second):
					return imageResponse("image/png", []byte("late")), nil
				}
			},
		}
		g, _ := NewGeminiPhotoGenerator(ai, "m", 10)

		start := time.Now()
		_, err := g.GenerateOfficeHeadshot(context.Background(), domain.OfficeHeadshot{
			Image:       inputImage,
			Background:  domain.HeadshotModernOffice,
			AspectRatio: domain.FrameSquare,
			Count:       3,
		})

		assert.ErrorIs(t, err, ErrEmptyResponse)
		assert.Less(t, time.Since(start), 4*time.Second)
	})

	t.Run("結果は枠番号順に並ぶ", func(t *testing.T) {
		ai := &mockContentGenerator{}
		g, _ := NewGeminiPhotoGenerator(ai, "m", 10)

		images, err := g.GenerateProductShowcase(context.Background(), domain.ProductShowcase{
			Subject:     subjectImage,
			Product:     productImage,
			Scene:       "studio",
			AspectRatio: domain.ProductPortrait,
			Count:       4,
		})

		require.NoError(t, err)
		require.Len(t, images, 4)
		for _, img := range images {
			assert.Equal(t, []byte("fake"), img.Data)
		}
	})
}
