package dto

// VisualRequest corpo de PUT /api/visual/logo e /api/visual/favicon.
type VisualRequest struct {
	DataURL string `json:"data_url" validate:"required,datauri"`
}
