package main

import (
	"context"
	"flag"
	"log"

	"soundkey-be/internal/config"
	"soundkey-be/internal/pkg/logger"
	"soundkey-be/internal/repository/unitofwork"
	"soundkey-be/internal/service"
	"soundkey-be/pkg/corpus"
	"soundkey-be/pkg/database"
	"soundkey-be/pkg/notation"

	"github.com/fatih/color"
)

func main() {
	file := flag.String("file", "", "YAML corpus to load instead of the generated one")
	dump := flag.String("dump", "", "write the generated corpus to this YAML file and exit")
	flag.Parse()

	c, err := loadCorpus(*file)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if *dump != "" {
		if err := c.Save(*dump); err != nil {
			log.Fatalf("Error: %v", err)
		}
		color.Green("Corpus written to %s", *dump)
		return
	}

	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.PoolConfig{})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seeder := service.NewCorpusSeeder(
		unitofwork.NewRepositoryFactory(db, 0),
		logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction()),
	)

	color.Cyan("Seeding corpus...")
	res, err := seeder.Seed(context.Background(), c)
	if err != nil {
		color.Red("Seeding failed: %v", err)
		log.Fatal(err)
	}

	color.Green("Seeded %d scale groups, %d scales, %d chords", res.ScaleGroups, res.Scales, res.Chords)
}

func loadCorpus(path string) (*corpus.Corpus, error) {
	if path != "" {
		return corpus.Load(path)
	}
	return corpus.Generate(notation.NewParser())
}
