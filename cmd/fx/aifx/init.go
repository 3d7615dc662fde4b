package aifx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"routescout/internal/services"
	"routescout/pkg/utils"
)

var Module = fx.Provide(
	provideCompletionClient,
	provideEmbeddingClient,
	providePlannerService,
)

func provideCompletionClient() utils.CompletionClientInterface {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	apiKey := os.Getenv("AI_API_KEY")
	if apiKey == "" {
		log.Println("AI_API_KEY is empty, AI planner runs on static fallbacks")
		return nil
	}

	client, err := utils.NewCompletionClient(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Printf("Completion client unavailable, AI planner runs on static fallbacks: %v", err)
		return nil
	}
	return client
}

func provideEmbeddingClient(completion utils.CompletionClientInterface) utils.EmbeddingClientInterface {
	if embedder, ok := completion.(utils.EmbeddingClientInterface); ok {
		return embedder
	}
	return nil
}

func providePlannerService(completion utils.CompletionClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(completion)
}
