package domain

import "slices"

// IDPhotoSize は証明写真の一般的なサイズです。
type IDPhotoSize string

const (
	IDPhotoSize3x4 IDPhotoSize = "3x4 cm"
	IDPhotoSize4x6 IDPhotoSize = "4x6 cm"
)

// IDPhotoSizes は選択可能なサイズの一覧です。
func IDPhotoSizes() []IDPhotoSize {
	return []IDPhotoSize{IDPhotoSize3x4, IDPhotoSize4x6}
}

func (s IDPhotoSize) Valid() bool { return slices.Contains(IDPhotoSizes(), s) }

// IDPhotoBackground は証明写真の背景色です。
type IDPhotoBackground string

const (
	IDBackgroundWhite     IDPhotoBackground = "White"
	IDBackgroundLightBlue IDPhotoBackground = "Light Blue"
	IDBackgroundGray      IDPhotoBackground = "Gray"
)

func IDPhotoBackgrounds() []IDPhotoBackground {
	return []IDPhotoBackground{IDBackgroundWhite, IDBackgroundLightBlue, IDBackgroundGray}
}

func (b IDPhotoBackground) Valid() bool { return slices.Contains(IDPhotoBackgrounds(), b) }

// FrameRatio は人物写真系ツールで使う、言葉で表したアスペクト比です。
type FrameRatio string

const (
	FramePortrait  FrameRatio = "Portrait"
	FrameSquare    FrameRatio = "Square"
	FrameLandscape FrameRatio = "Landscape"
)

func FrameRatios() []FrameRatio {
	return []FrameRatio{FramePortrait, FrameSquare, FrameLandscape}
}

func (r FrameRatio) Valid() bool { return slices.Contains(FrameRatios(), r) }

// ProductRatio は商品撮影ツールで使う数値のアスペクト比です。
type ProductRatio string

const (
	ProductPortrait  ProductRatio = "9:16"
	ProductSquare    ProductRatio = "1:1"
	ProductLandscape ProductRatio = "16:9"
)

func ProductRatios() []ProductRatio {
	return []ProductRatio{ProductPortrait, ProductSquare, ProductLandscape}
}

func (r ProductRatio) Valid() bool { return slices.Contains(ProductRatios(), r) }

// HeadshotBackground はオフィス用ヘッドショットの背景設定です。
type HeadshotBackground string

const (
	HeadshotModernOffice     HeadshotBackground = "Modern Office"
	HeadshotPlainWall        HeadshotBackground = "Plain Wall"
	HeadshotOutdoorCorporate HeadshotBackground = "Outdoor Corporate"
	HeadshotBookshelf        HeadshotBackground = "Elegant bookshelf"
	HeadshotOfficeWindow     HeadshotBackground = "Soft light from a large office window"
	HeadshotBrickWall        HeadshotBackground = "Modern exposed brick wall"
	HeadshotConferenceRoom   HeadshotBackground = "Blurred modern conference room"
	HeadshotHallway          HeadshotBackground = "Bright corporate hallway"
	HeadshotGradient         HeadshotBackground = "Subtle professional gradient"
	HeadshotMinimalist       HeadshotBackground = "Minimalist wall with a single plant"
	HeadshotCoffeeShop       HeadshotBackground = "Upscale coffee shop"
	HeadshotCoworking        HeadshotBackground = "Vibrant co-working space"
	HeadshotCityView         HeadshotBackground = "Skyscraper window view of a city"
)

func HeadshotBackgrounds() []HeadshotBackground {
	return []HeadshotBackground{
		HeadshotModernOffice, HeadshotPlainWall, HeadshotOutdoorCorporate, HeadshotBookshelf,
		HeadshotOfficeWindow, HeadshotBrickWall, HeadshotConferenceRoom, HeadshotHallway,
		HeadshotGradient, HeadshotMinimalist, HeadshotCoffeeShop, HeadshotCoworking, HeadshotCityView,
	}
}

func (b HeadshotBackground) Valid() bool { return slices.Contains(HeadshotBackgrounds(), b) }
