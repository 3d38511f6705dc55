package main

import (
	"context"
	"flag"
	"time"

	"github.com/kennelhouse/kennel-backend/internal/config"
	"github.com/kennelhouse/kennel-backend/internal/database"
	"github.com/kennelhouse/kennel-backend/internal/logger"
	"github.com/kennelhouse/kennel-backend/internal/repository"
	"github.com/kennelhouse/kennel-backend/internal/seed"
	"github.com/kennelhouse/kennel-backend/internal/service"
)

func main() {
	var counts seed.Counts
	var fakerSeed uint64
	flag.IntVar(&counts.Dogs, "dogs", 6, "Number of dogs to create")
	flag.IntVar(&counts.Litters, "litters", 3, "Number of litters to create")
	flag.IntVar(&counts.Photos, "photos", 12, "Number of gallery photos to create")
	flag.IntVar(&counts.Messages, "messages", 0, "Number of contact messages to create")
	flag.Uint64Var(&fakerSeed, "seed", 1, "Faker seed")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	repos := repository.NewPostgres(pool)
	services := seed.Services{
		Dogs:     service.NewDogService(repos.Dogs, log),
		Litters:  service.NewLitterService(repos.Litters, log),
		Gallery:  service.NewGalleryService(repos.Gallery, log),
		Messages: service.NewMessageService(repos.Messages, log),
	}

	done, err := seed.Populate(ctx, services, seed.NewGenerator(fakerSeed), counts)
	if err != nil {
		log.Fatal().Err(err).
			Int("dogs", done.Dogs).
			Int("litters", done.Litters).
			Int("photos", done.Photos).
			Int("messages", done.Messages).
			Msg("Seed stopped early")
	}

	log.Info().
		Int("dogs", done.Dogs).
		Int("litters", done.Litters).
		Int("photos", done.Photos).
		Int("messages", done.Messages).
		Msg("Seed completed")
}
