package main

import (
	"github.com/gin-gonic/gin"

	"foodchef/configs"
	"foodchef/pkg/logging"
	"foodchef/pkg/notify"
	"foodchef/routes"
)

func main() {
	cfg := configs.LoadConfig()
	log := logging.New(cfg.LogLevel)

	if err := configs.ConnectionDB(cfg); err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := configs.SetupDatabase(); err != nil {
		log.WithError(err).Fatal("database migration failed")
	}
	if err := configs.SeedAdmin(cfg); err != nil {
		log.WithError(err).Fatal("admin seed failed")
	}
	if err := configs.SeedLookups(); err != nil {
		log.WithError(err).Fatal("lookup seed failed")
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.SMTPHost != "" {
		notifier = notify.NewSMTP(notify.SMTPConfig{
			Host:      cfg.SMTPHost,
			Port:      cfg.SMTPPort,
			Username:  cfg.SMTPUser,
			Password:  cfg.SMTPPass,
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		})
	}

	r := routes.NewEngine()
	r.Use(gin.Logger())
	routes.RegisterRoutes(r, configs.DB(), cfg, log, notifier)

	log.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
