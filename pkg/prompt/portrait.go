package prompt

import (
	"fmt"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

// 顔の保持は証明写真とヘッドショットで共通の制約。
const preserveFaceConstraint = "- IMPORTANT: You MUST NOT alter, modify, or airbrush the person's face. " +
	"The facial features, skin texture, marks, and scars must be preserved exactly as they are in the original image."

const idPhotoTemplate = `You are an expert in creating professional ID photos. You will be given an image of a person. Your task is to transform it into a standard ID photo with the following specifications:
- Background Color: %s
- Attire: The person should be wearing professional business attire (e.g., a dark suit jacket over a light-colored collared shirt). You MUST replace their current clothing.
- Pose & Expression: Maintain the person's head and shoulders view. The expression should be neutral and forward-facing.
- Lighting: Ensure the lighting is even and without harsh shadows, typical of a studio setting.
- Output: The final image must have a %s aspect ratio. The common size for this photo is %s.
%s
Return ONLY the final, edited image.`

const officeHeadshotTemplate = `You are an expert in creating professional corporate headshots. Transform the provided image into a high-quality headshot.
- Background: Change the background to a professional '%s' setting.
- Attire: The person should be wearing professional business attire (e.g., a suit jacket or blazer). You MUST replace their current clothing.
- Pose & Expression: Maintain the person's head and shoulders view. The expression should be confident and professional.
- Lighting: Ensure the lighting is even, flattering, and studio-quality.
- Output: The final image must have a %s aspect ratio.
%s
Return ONLY the final, edited image.`

// IDPhoto は証明写真の指示文を作成します。
func IDPhoto(opts domain.IDPhoto) string {
	return fmt.Sprintf(idPhotoTemplate, opts.Background, opts.AspectRatio, opts.Size, preserveFaceConstraint)
}

// OfficeHeadshot はビジネス用ヘッドショットの指示文を作成します。
func OfficeHeadshot(opts domain.OfficeHeadshot) string {
	return fmt.Sprintf(officeHeadshotTemplate, opts.Background, opts.AspectRatio, preserveFaceConstraint)
}
