package bootstrap

import (
	"log/slog"
	"time"

	"shopfront/internal/client"
	"shopfront/internal/config"
)

func BuildTransport(profile *config.Config, log *slog.Logger) (client.Transport, error) {
	log.Info("profile",
		"env", profile.Env,
		"base_url", profile.Shop.BaseURL,
		"retries", profile.HTTP.Retries,
	)

	httpClient := client.NewHTTPClient(
		time.Duration(profile.HTTP.TimeoutSeconds) * time.Second,
	)

	return client.Build(client.Options{
		HTTPClient: httpClient,
		Retries:    profile.HTTP.Retries,
		Logger:     log,
	})
}
