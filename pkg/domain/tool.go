package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOptions はツールの入力やオプションが不正な場合に返されます。
var ErrInvalidOptions = errors.New("invalid tool options")

// ToolKind はツールの識別子です。
type ToolKind string

const (
	ToolRestoration     ToolKind = "restoration"
	ToolIDPhoto         ToolKind = "id-photo"
	ToolProductShowcase ToolKind = "product"
	ToolObjectRemoval   ToolKind = "remove-object"
	ToolOfficeHeadshot  ToolKind = "office-photo"
)

// Tool は1回の生成呼び出しに必要な入力画像とオプションをまとめた設定レコードです。
// 実装はこのパッケージの5種類に限られます。
type Tool interface {
	Kind() ToolKind
	// Inputs はモデルに送る画像を送信順に返します。
	Inputs() []ImageResource
	// OutputCount は要求する出力画像の枚数です。
	OutputCount() int
	// Validate は入力画像とオプションを検証します。枚数の上限チェックは呼び出し側で行います。
	Validate() error

	sealed()
}

// Restoration は写真修復ツールの設定です。
type Restoration struct {
	Image          ImageResource
	FixDamage      bool
	EnhanceColors  bool
	SharpenDetails bool
}

func (Restoration) Kind() ToolKind            { return ToolRestoration }
func (t Restoration) Inputs() []ImageResource { return []ImageResource{t.Image} }
func (Restoration) OutputCount() int          { return 1 }
func (Restoration) sealed()                   {}

func (t Restoration) Validate() error {
	return validateImage("image", t.Image)
}

// IDPhoto は証明写真ツールの設定です。
type IDPhoto struct {
	Image       ImageResource
	Size        IDPhotoSize
	Background  IDPhotoBackground
	AspectRatio FrameRatio
	Count       int
}

func (IDPhoto) Kind() ToolKind            { return ToolIDPhoto }
func (t IDPhoto) Inputs() []ImageResource { return []ImageResource{t.Image} }
func (t IDPhoto) OutputCount() int        { return t.Count }
func (IDPhoto) sealed()                   {}

func (t IDPhoto) Validate() error {
	if err := validateImage("image", t.Image); err != nil {
		return err
	}
	if !t.Size.Valid() {
		return fmt.Errorf("%w: unknown size %q", ErrInvalidOptions, t.Size)
	}
	if !t.Background.Valid() {
		return fmt.Errorf("%w: unknown background %q", ErrInvalidOptions, t.Background)
	}
	if !t.AspectRatio.Valid() {
		return fmt.Errorf("%w: unknown aspect ratio %q", ErrInvalidOptions, t.AspectRatio)
	}
	return nil
}

// ProductShowcase は人物と商品を新しいシーンに合成するツールの設定です。
// Subject が1枚目、Product が2枚目の画像として送信されます。
type ProductShowcase struct {
	Subject     ImageResource
	Product     ImageResource
	Scene       string
	AspectRatio ProductRatio
	Count       int
}

func (ProductShowcase) Kind() ToolKind { return ToolProductShowcase }
func (t ProductShowcase) Inputs() []ImageResource {
	return []ImageResource{t.Subject, t.Product}
}
func (t ProductShowcase) OutputCount() int { return t.Count }
func (ProductShowcase) sealed()            {}

func (t ProductShowcase) Validate() error {
	if err := validateImage("subject", t.Subject); err != nil {
		return err
	}
	if err := validateImage("product", t.Product); err != nil {
		return err
	}
	if strings.TrimSpace(t.Scene) == "" {
		return fmt.Errorf("%w: scene description is required", ErrInvalidOptions)
	}
	if !t.AspectRatio.Valid() {
		return fmt.Errorf("%w: unknown aspect ratio %q", ErrInvalidOptions, t.AspectRatio)
	}
	return nil
}

// ObjectRemoval は画像から指定した物体を消去するツールの設定です。
type ObjectRemoval struct {
	Image  ImageResource
	Target string
}

func (ObjectRemoval) Kind() ToolKind            { return ToolObjectRemoval }
func (t ObjectRemoval) Inputs() []ImageResource { return []ImageResource{t.Image} }
func (ObjectRemoval) OutputCount() int          { return 1 }
func (ObjectRemoval) sealed()                   {}

func (t ObjectRemoval) Validate() error {
	if err := validateImage("image", t.Image); err != nil {
		return err
	}
	if strings.TrimSpace(t.Target) == "" {
		return fmt.Errorf("%w: target description is required", ErrInvalidOptions)
	}
	return nil
}

// OfficeHeadshot はビジネス用ヘッドショットを生成するツールの設定です。
type OfficeHeadshot struct {
	Image       ImageResource
	Background  HeadshotBackground
	AspectRatio FrameRatio
	Count       int
}

func (OfficeHeadshot) Kind() ToolKind            { return ToolOfficeHeadshot }
func (t OfficeHeadshot) Inputs() []ImageResource { return []ImageResource{t.Image} }
func (t OfficeHeadshot) OutputCount() int        { return t.Count }
func (OfficeHeadshot) sealed()                   {}

func (t OfficeHeadshot) Validate() error {
	if err := validateImage("image", t.Image); err != nil {
		return err
	}
	if !t.Background.Valid() {
		return fmt.Errorf("%w: unknown background %q", ErrInvalidOptions, t.Background)
	}
	if !t.AspectRatio.Valid() {
		return fmt.Errorf("%w: unknown aspect ratio %q", ErrInvalidOptions, t.AspectRatio)
	}
	return nil
}

func validateImage(name string, img ImageResource) error {
	if img.IsEmpty() {
		return fmt.Errorf("%w: %s is required", ErrInvalidOptions, name)
	}
	if !img.IsImage() {
		return fmt.Errorf("%w: %s has non-image media type %q", ErrInvalidOptions, name, img.MIMEType)
	}
	return nil
}
