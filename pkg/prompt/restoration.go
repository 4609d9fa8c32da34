package prompt

import (
	"strings"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

const (
	restorationIntro = "You are an expert in photo restoration. Your task is to restore this old, blurry, or damaged photo. " +
		"The goal is a realistic restoration that preserves the original character of the photo."
	restorationActionsHeader = "Specifically, perform the following actions:"
	restorationGeneral       = "Perform a general-purpose restoration, improving clarity and quality."
	restorationOutro         = "Return ONLY the restored image."

	fixDamageInstruction      = "Fix physical damage such as scratches, tears, dust, and other blemishes."
	enhanceColorsInstruction  = "Correct color fading and discoloration. Restore natural and vibrant colors, and adjust the white balance if needed."
	sharpenDetailsInstruction = "Enhance the sharpness and clarity of blurry details. Pay special attention to faces, ensuring they are clear while remaining natural."
)

// Restoration は写真修復の指示文を作成します。
// 有効なオプションごとに1行ずつ指示を追加し、どれも有効でない場合は汎用的な修復を指示します。
func Restoration(opts domain.Restoration) string {
	var instructions []string
	if opts.FixDamage {
		instructions = append(instructions, fixDamageInstruction)
	}
	if opts.EnhanceColors {
		instructions = append(instructions, enhanceColorsInstruction)
	}
	if opts.SharpenDetails {
		instructions = append(instructions, sharpenDetailsInstruction)
	}

	var b strings.Builder
	b.WriteString(restorationIntro)
	if len(instructions) > 0 {
		b.WriteString("\n\n" + restorationActionsHeader + "\n- ")
		b.WriteString(strings.Join(instructions, "\n- "))
	} else {
		b.WriteString("\n\n" + restorationGeneral)
	}
	b.WriteString("\n\n" + restorationOutro)
	return b.String()
}
