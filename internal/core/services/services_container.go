package services

import (
	"github.com/fintrackr/finance_tracker_app/internal/core/ports/genai"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, generator genai.TextGenerator) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Insights = NewInsightsService(repos.TransactionRepo, generator, cfg.SummaryWindow)
	container.Categorizer = NewCategorizerService(generator)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Compile time interface implementation checks.
var (
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.InsightsSvcFacade    = (*insightsService)(nil)
	_ portssvc.CategorizerSvcFacade = (*categorizerService)(nil)
)
