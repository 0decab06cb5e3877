package services_test

import (
	"time"

	"github.com/rce-newyear/greetings-api/config"
	"github.com/rce-newyear/greetings-api/internal/cache"
	"github.com/rce-newyear/greetings-api/internal/models"
	"github.com/rce-newyear/greetings-api/pkg/logger"
)

func init() {
	logger.InitializeForTests()
}

func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			AppEnv:  "development",
			BaseURL: "https://wishes.example.com",
		},
		AIGateway: config.AIGatewayConfig{
			Endpoint:       "https://gateway.example.com/v1/chat/completions",
			Model:          "test-model",
			Temperature:    0.8,
			TimeoutSeconds: 8,
		},
	}
}

func newTestCache() *cache.GreetingCache {
	return cache.NewGreetingCache(time.Minute)
}

func validRequest() *models.GenerateGreetingRequest {
	return &models.GenerateGreetingRequest{
		Name:     "Asha Reddy",
		Branch:   "CSE",
		Year:     "3",
		Language: models.LanguageEnglish,
	}
}
