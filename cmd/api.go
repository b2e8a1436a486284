package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aquamon.dev/aquamon/internal/api"
	"aquamon.dev/aquamon/pkg/metrics"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP API server that:
- Handles account registration and login
- Manages aquariums, fish and categories
- Serves chart and card aggregations of water-quality data`,
	RunE: runAPI,
}

func init() {
	rootCmd.AddCommand(apiCmd)

	// API-specific flags
	apiCmd.Flags().Int("http-port", 8080, "HTTP server port")
	apiCmd.Flags().String("db-host", "localhost", "PostgreSQL host")
	apiCmd.Flags().Int("db-port", 5432, "PostgreSQL port")
	apiCmd.Flags().String("db-user", "postgres", "PostgreSQL user")
	apiCmd.Flags().String("db-password", "", "PostgreSQL password")
	apiCmd.Flags().String("db-name", "aquamon", "PostgreSQL database name")
	apiCmd.Flags().String("db-sslmode", "disable", "PostgreSQL SSL mode")
	apiCmd.Flags().String("token-secret", "", "JWT signing secret")
	apiCmd.Flags().Duration("token-ttl", 24*time.Hour, "JWT lifetime")
	apiCmd.Flags().Int("chart-window-days", 9, "Trailing window for chart data")

	// Bind flags to viper
	_ = viper.BindPFlag("api.http.port", apiCmd.Flags().Lookup("http-port"))
	_ = viper.BindPFlag("api.db.host", apiCmd.Flags().Lookup("db-host"))
	_ = viper.BindPFlag("api.db.port", apiCmd.Flags().Lookup("db-port"))
	_ = viper.BindPFlag("api.db.user", apiCmd.Flags().Lookup("db-user"))
	_ = viper.BindPFlag("api.db.password", apiCmd.Flags().Lookup("db-password"))
	_ = viper.BindPFlag("api.db.name", apiCmd.Flags().Lookup("db-name"))
	_ = viper.BindPFlag("api.db.sslmode", apiCmd.Flags().Lookup("db-sslmode"))
	_ = viper.BindPFlag("api.token.secret", apiCmd.Flags().Lookup("token-secret"))
	_ = viper.BindPFlag("api.token.ttl", apiCmd.Flags().Lookup("token-ttl"))
	_ = viper.BindPFlag("api.chart.window_days", apiCmd.Flags().Lookup("chart-window-days"))
}

func runAPI(_ *cobra.Command, _ []string) error {
	logger := GetLogger()
	logger.Info("starting api service")

	// Create API configuration from viper
	config := &api.ServerConfig{
		Logger:          logger,
		HTTPPort:        viper.GetInt("api.http.port"),
		DBHost:          viper.GetString("api.db.host"),
		DBPort:          viper.GetInt("api.db.port"),
		DBUser:          viper.GetString("api.db.user"),
		DBPassword:      viper.GetString("api.db.password"),
		DBName:          viper.GetString("api.db.name"),
		DBSSLMode:       viper.GetString("api.db.sslmode"),
		TokenSecret:     viper.GetString("api.token.secret"),
		TokenTTL:        viper.GetDuration("api.token.ttl"),
		ChartWindowDays: viper.GetInt("api.chart.window_days"),
		Metrics:         metrics.NewAPIMetrics("aquamon"),
	}

	// Create and run server
	server, err := api.NewServer(config)
	if err != nil {
		logger.Error("failed to create api server", "error", err)
		return err
	}

	logger.Info("api server configuration",
		"http_port", config.HTTPPort,
		"db_host", config.DBHost,
		"db_port", config.DBPort,
		"db_name", config.DBName,
		"token_ttl", config.TokenTTL,
		"chart_window_days", config.ChartWindowDays,
	)

	if err := server.Run(context.Background()); err != nil {
		logger.Error("api server error", "error", err)
		return err
	}

	logger.Info("api server stopped")
	return nil
}
