package prompt

import (
	"fmt"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

// 1枚目が人物、2枚目が商品の画像として送られる前提の文面。
const productShowcaseTemplate = `You are an expert commercial photographer. Your task is to seamlessly combine a person and a product into a new scene.
- First, isolate the person from their background in the first image.
- Second, isolate the product from its background in the second image.
- Then, place both the isolated person and the product into a new, realistic, high-quality scene described as: "%s".
- Ensure the lighting, shadows, and reflections on both the person and the product look natural and consistent with the new scene.
- The final image should be a professional, appealing advertisement or product shot.
- The final image must have a %s aspect ratio.
- IMPORTANT: You MUST NOT alter or modify the person or the product themselves. Their appearance, shape, colors, and any text or logos must be preserved exactly as they are in the original images.
Return ONLY the final composite image.`

const objectRemovalTemplate = `You are an expert photo editor. Your task is to remove an object from the provided image based on the user's request.
User's request: "Remove %s".
Carefully identify the object described and remove it seamlessly. Fill in the background intelligently, ensuring the result looks natural and realistic. Do not alter any other part of the image.
Return ONLY the edited image with the object removed.`

// ProductShowcase は人物と商品を合成する指示文を作成します。
func ProductShowcase(opts domain.ProductShowcase) string {
	return fmt.Sprintf(productShowcaseTemplate, opts.Scene, opts.AspectRatio)
}

// ObjectRemoval は物体消去の指示文を作成します。
func ObjectRemoval(opts domain.ObjectRemoval) string {
	return fmt.Sprintf(objectRemovalTemplate, opts.Target)
}
