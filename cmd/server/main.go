package main

import (
	"log"

	"coachlab.fr/suivicoach/internal/bootstrap"
	"coachlab.fr/suivicoach/internal/config"
	"coachlab.fr/suivicoach/internal/server"
	"coachlab.fr/suivicoach/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(database.Config{
		Host:     cfg.DBHost,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		Port:     cfg.DBPort,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedCoachUser(db); err != nil {
		log.Fatalf("failed to seed coach user: %v", err)
	}
	if err := bootstrap.SeedExerciseBank(db); err != nil {
		log.Fatalf("failed to seed exercise bank: %v", err)
	}

	srv := server.NewServer(db, cfg)

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
