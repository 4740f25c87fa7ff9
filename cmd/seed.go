package main

import (
	"time"

	"github.com/shenikar/incident_map_dashboard/internal/repository"
	"github.com/shenikar/incident_map_dashboard/internal/seed"
	"github.com/shenikar/incident_map_dashboard/internal/service"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo locations and incidents into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}

		dbpool, err := openDatabase(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer dbpool.Close()

		locationRepo := repository.NewLocationRepository(dbpool)
		incidentRepo := repository.NewIncidentRepository(dbpool)
		cache := repository.NewNoopLocationCache()
		adminService := service.NewAdminService(incidentRepo, locationRepo, cache, seed.ExampleIncidents(time.Now()), log)

		seeded, err := seed.NewSeeder(locationRepo, incidentRepo, adminService, log).Run(ctx)
		if err != nil {
			return err
		}
		if !seeded {
			log.Info("Database already has data, nothing to seed")
		}
		return nil
	},
}
