package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
	"github.com/shouni/gemini-photo-kit/pkg/encoder"
	"github.com/shouni/gemini-photo-kit/pkg/generator"
)

type imagesResponse struct {
	Tool   domain.ToolKind `json:"tool"`
	Images []string        `json:"images"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Health はサーバーの稼働確認用です。
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListTools は利用可能なツールの一覧を返します。
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tools": domain.Catalog()})
}

// Restore は写真修復を実行します。
// フィールド: image (または image_url), fix_damage, enhance_colors, sharpen_details
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	f, err := h.parseForm(w, r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	img, err := h.formImage(r, "image")
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	opts := domain.DefaultRestoration(img)
	if opts.FixDamage, err = f.boolValue("fix_damage", opts.FixDamage); err != nil {
		h.writeFailure(w, r, err)
		return
	}
	if opts.EnhanceColors, err = f.boolValue("enhance_colors", opts.EnhanceColors); err != nil {
		h.writeFailure(w, r, err)
		return
	}
	if opts.SharpenDetails, err = f.boolValue("sharpen_details", opts.SharpenDetails); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	out, err := h.gen.RestorePhoto(r.Context(), opts)
	h.writeResult(w, r, opts.Kind(), []domain.ImageResource{out}, err)
}

// IDPhoto は証明写真を生成します。
// フィールド: image (または image_url), size, background, aspect_ratio, count
func (h *Handler) IDPhoto(w http.ResponseWriter, r *http.Request) {
	f, err := h.parseForm(w, r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	img, err := h.formImage(r, "image")
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	opts := domain.DefaultIDPhoto(img)
	opts.Size = domain.IDPhotoSize(f.stringValue("size", string(opts.Size)))
	opts.Background = domain.IDPhotoBackground(f.stringValue("background", string(opts.Background)))
	opts.AspectRatio = domain.FrameRatio(f.stringValue("aspect_ratio", string(opts.AspectRatio)))
	if opts.Count, err = f.intValue("count", opts.Count); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	out, err := h.gen.GenerateIDPhoto(r.Context(), opts)
	h.writeResult(w, r, opts.Kind(), out, err)
}

// ProductShowcase は人物と商品を合成します。
// フィールド: subject, product (または *_url), scene, aspect_ratio, count
func (h *Handler) ProductShowcase(w http.ResponseWriter, r *http.Request) {
	f, err := h.parseForm(w, r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	subject, err := h.formImage(r, "subject")
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	product, err := h.formImage(r, "product")
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	opts := domain.DefaultProductShowcase(subject, product, f.stringValue("scene", ""))
	opts.AspectRatio = domain.ProductRatio(f.stringValue("aspect_ratio", string(opts.AspectRatio)))
	if opts.Count, err = f.intValue("count", opts.Count); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	out, err := h.gen.GenerateProductShowcase(r.Context(), opts)
	h.writeResult(w, r, opts.Kind(), out, err)
}

// RemoveObject は指定された物体を画像から消去します。
// フィールド: image (または image_url), target
func (h *Handler) RemoveObject(w http.ResponseWriter, r *http.Request) {
	f, err := h.parseForm(w, r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	img, err := h.formImage(r, "image")
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	opts := domain.ObjectRemoval{Image: img, Target: f.stringValue("target", "")}
	out, err := h.gen.RemoveObject(r.Context(), opts)
	h.writeResult(w, r, opts.Kind(), []domain.ImageResource{out}, err)
}

// OfficeHeadshot はビジネス用ヘッドショットを生成します。
// フィールド: image (または image_url), background, aspect_ratio, count
func (h *Handler) OfficeHeadshot(w http.ResponseWriter, r *http.Request) {
	f, err := h.parseForm(w, r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	img, err := h.formImage(r, "image")
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	opts := domain.DefaultOfficeHeadshot(img)
	opts.Background = domain.HeadshotBackground(f.stringValue("background", string(opts.Background)))
	opts.AspectRatio = domain.FrameRatio(f.stringValue("aspect_ratio", string(opts.AspectRatio)))
	if opts.Count, err = f.intValue("count", opts.Count); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	out, err := h.gen.GenerateOfficeHeadshot(r.Context(), opts)
	h.writeResult(w, r, opts.Kind(), out, err)
}

func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, kind domain.ToolKind, images []domain.ImageResource, err error) {
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	resp := imagesResponse{Tool: kind, Images: make([]string, 0, len(images))}
	for _, img := range images {
		resp.Images = append(resp.Images, encoder.DataURL(img))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	kind := generator.Classify(err)
	status := statusFor(kind)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "ツールの実行に失敗しました", "path", r.URL.Path, "kind", kind.String(), "error", err)
	} else {
		slog.WarnContext(r.Context(), "リクエストを処理できませんでした", "path", r.URL.Path, "kind", kind.String(), "error", err)
	}
	writeJSON(w, status, errorResponse{Error: generator.UserMessage(err), Kind: kind.String()})
}

func statusFor(kind generator.ErrorKind) int {
	switch kind {
	case generator.KindInvalidInput, generator.KindMalformedResource:
		return http.StatusBadRequest
	case generator.KindBlocked, generator.KindRefused, generator.KindEmptyResponse:
		return http.StatusUnprocessableEntity
	case generator.KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// form は multipart またはフォームの値を読み取るための補助です。
type form struct {
	r *http.Request
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) (form, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	err := r.ParseMultipartForm(h.maxUploadBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		return form{}, fmt.Errorf("%w: フォームを解析できません: %w", domain.ErrInvalidOptions, err)
	}
	return form{r: r}, nil
}

func (f form) stringValue(key, fallback string) string {
	if v := strings.TrimSpace(f.r.FormValue(key)); v != "" {
		return v
	}
	return fallback
}

func (f form) boolValue(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(f.r.FormValue(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %q", domain.ErrInvalidOptions, key, v)
	}
	return b, nil
}

func (f form) intValue(key string, fallback int) (int, error) {
	v := strings.TrimSpace(f.r.FormValue(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %q", domain.ErrInvalidOptions, key, v)
	}
	return n, nil
}

// formImage はアップロードされたファイル field、または field_url の指定から画像を読み込みます。
func (h *Handler) formImage(r *http.Request, field string) (domain.ImageResource, error) {
	if r.MultipartForm != nil {
		if files := r.MultipartForm.File[field]; len(files) > 0 {
			file, err := files[0].Open()
			if err != nil {
				return domain.ImageResource{}, fmt.Errorf("%w: %s を開けません: %w", domain.ErrInvalidOptions, field, err)
			}
			defer file.Close()
			img, err := h.loader.Read(file)
			if err != nil {
				return domain.ImageResource{}, fmt.Errorf("%s: %w", field, err)
			}
			return img, nil
		}
	}
	if uri := strings.TrimSpace(r.FormValue(field + "_url")); uri != "" {
		img, err := h.loader.LoadRemote(r.Context(), uri)
		if err != nil {
			return domain.ImageResource{}, fmt.Errorf("%s: %w", field, err)
		}
		return img, nil
	}
	return domain.ImageResource{}, fmt.Errorf("%w: %s is required", domain.ErrInvalidOptions, field)
}
