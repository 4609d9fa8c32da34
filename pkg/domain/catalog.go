package domain

// ToolInfo はツール一覧に表示するメタデータです。
type ToolInfo struct {
	ID          ToolKind `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MultiOutput bool     `json:"multi_output"`
}

// Catalog は利用可能なツールを表示順に返します。
func Catalog() []ToolInfo {
	return []ToolInfo{
		{
			ID:          ToolRestoration,
			Name:        "Photo Restoration",
			Description: "Restore old, blurry, or damaged photos to their original state with AI-powered enhancement.",
		},
		{
			ID:          ToolIDPhoto,
			Name:        "Professional ID Photo",
			Description: "Create professional ID photos (3x4, 4x6) with proper lighting and attire.",
			MultiOutput: true,
		},
		{
			ID:          ToolProductShowcase,
			Name:        "Product Showcase",
			Description: "Create polished product shots for e-commerce and marketing.",
			MultiOutput: true,
		},
		{
			ID:          ToolObjectRemoval,
			Name:        "Object Removal",
			Description: "Remove unwanted objects, people, or text from any image.",
		},
		{
			ID:          ToolOfficeHeadshot,
			Name:        "Office Headshot",
			Description: "Turn everyday photos into professional portraits suitable for company profiles.",
			MultiOutput: true,
		},
	}
}

// LookupTool は id に対応する ToolInfo を返します。
func LookupTool(id ToolKind) (ToolInfo, bool) {
	for _, info := range Catalog() {
		if info.ID == id {
			return info, true
		}
	}
	return ToolInfo{}, false
}
