package models

// SignageItem is one slide of the storefront signage rotation.
type SignageItem struct {
	URL      *string `json:"url" validate:"required"`
	Duration int     `json:"duration"`
	Order    int     `json:"order"`
}

// SignageConfigKey is the reserved document key inside the signage
// collection that holds rotation settings instead of a slide.
const SignageConfigKey = "--config--"

// DefaultSignageSettings is served when no config document exists yet.
func DefaultSignageSettings() map[string]any {
	return map[string]any{"fade_duration": 1.5}
}
