package domain

// 各ツールの既定値です。画面の初期選択と同じ値を使います。

// DefaultRestoration はすべての補正を有効にした Restoration を返します。
func DefaultRestoration(img ImageResource) Restoration {
	return Restoration{Image: img, FixDamage: true, EnhanceColors: true, SharpenDetails: true}
}

func DefaultIDPhoto(img ImageResource) IDPhoto {
	return IDPhoto{
		Image:       img,
		Size:        IDPhotoSize3x4,
		Background:  IDBackgroundWhite,
		AspectRatio: FramePortrait,
		Count:       1,
	}
}

func DefaultProductShowcase(subject, product ImageResource, scene string) ProductShowcase {
	return ProductShowcase{
		Subject:     subject,
		Product:     product,
		Scene:       scene,
		AspectRatio: ProductSquare,
		Count:       1,
	}
}

func DefaultOfficeHeadshot(img ImageResource) OfficeHeadshot {
	return OfficeHeadshot{
		Image:       img,
		Background:  HeadshotModernOffice,
		AspectRatio: FramePortrait,
		Count:       1,
	}
}
