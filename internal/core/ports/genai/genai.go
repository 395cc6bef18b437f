package genai

import "context"

// TextGenerator is the application's view of an external generative text
// capability. Implementations send a prompt and return the trimmed textual
// reply. Failures wrap apperrors.ErrUpstream; callers are expected to
// recover with a fallback value rather than propagate them.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
