package dto

import "ats-api/internal/storage"

// UpdateStageConfigRequest changes how a stage is displayed.
type UpdateStageConfigRequest struct {
	Label     *string `json:"label,omitempty" validate:"omitempty,min=1"`
	Color     *string `json:"color,omitempty" validate:"omitempty,min=1"`
	SortOrder *int    `json:"sortOrder,omitempty" validate:"omitempty,min=0"`
}

func (r *UpdateStageConfigRequest) ToPatch() *storage.StageConfigPatch {
	return &storage.StageConfigPatch{
		Label:     r.Label,
		Color:     r.Color,
		SortOrder: r.SortOrder,
	}
}

// UploadImageResponse is returned after a candidate picture is stored.
type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
