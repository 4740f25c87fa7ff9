package main

import (
	"github.com/sirupsen/logrus"
)

// @title Incident Map Dashboard API
// @version 1.0
// @description Retail security incident map: webhook ingestion, map data, admin tools and PDF reports.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("Command failed: %v", err)
	}
}
