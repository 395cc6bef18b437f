package dto

// CategorizeRequest defines the payload for AI-assisted categorization.
type CategorizeRequest struct {
	Description string `json:"description" binding:"required"`
}

// CategorizeResponse carries the proposed category label.
type CategorizeResponse struct {
	Category string `json:"category"`
}
