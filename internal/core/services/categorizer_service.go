package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/fintrackr/finance_tracker_app/internal/core/ports/genai"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
)

// categorizerService implements the CategorizerSvcFacade by delegating the
// semantic decision to a generative text capability while owning the
// contract: fixed vocabulary, single-label reply, safe fallback.
type categorizerService struct {
	BaseService
	generator genai.TextGenerator
}

// NewCategorizerService creates a new categorizer service.
func NewCategorizerService(generator genai.TextGenerator) portssvc.CategorizerSvcFacade {
	return &categorizerService{generator: generator}
}

var _ portssvc.CategorizerSvcFacade = (*categorizerService)(nil)

// CategorizeDescription proposes a category for the description. The returned
// label is always usable: on upstream failure it is CategoryMiscellaneous and
// the wrapped error is returned alongside for logging.
func (s *categorizerService) CategorizeDescription(ctx context.Context, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	prompt := buildCategorizePrompt(description)

	reply, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.LogError(ctx, err, "Categorization request to generative service failed")
		return domain.CategoryMiscellaneous, fmt.Errorf("%w: categorize: %s", apperrors.ErrUpstream, err)
	}

	label := strings.TrimSpace(reply)
	if label == "" {
		s.LogWarn(ctx, "Generative service returned an empty category")
		return domain.CategoryMiscellaneous, fmt.Errorf("%w: categorize: empty reply", apperrors.ErrUpstream)
	}

	if !domain.IsKnownCategory(label) {
		// The model strayed outside the vocabulary; coerce rather than
		// pass an arbitrary label through.
		s.LogWarn(ctx, "Generative service returned an out-of-vocabulary category",
			slog.String("reply", label))
		return domain.CategoryMiscellaneous, nil
	}

	return label, nil
}

func buildCategorizePrompt(description string) string {
	return fmt.Sprintf(
		`Based on the following transaction description, pick the single most appropriate category from this list: [%s]. The description is: %q. Only return the category name and nothing else.`,
		strings.Join(domain.Categories, ", "),
		description,
	)
}
