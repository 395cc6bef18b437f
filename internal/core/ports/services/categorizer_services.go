package services

import "context"

// CategorizerSvcFacade proposes a category for a free-text description.
type CategorizerSvcFacade interface {
	// CategorizeDescription returns a label from the fixed vocabulary.
	// An empty description yields apperrors.ErrValidation. When the
	// generative capability fails, the label is CategoryMiscellaneous and
	// the wrapped upstream error is returned alongside it so callers can
	// log it; the label is always usable.
	CategorizeDescription(ctx context.Context, description string) (string, error)
}
