package main

import (
	"log"

	"soundkey-be/internal/config"
	"soundkey-be/internal/model"
	"soundkey-be/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.PoolConfig{Verbose: true})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running AutoMigrate for corpus tables...")

	// groups first, scales reference them
	models := []interface{}{
		&model.ScaleGroup{},
		&model.Scale{},
		&model.ScaleNote{},
		&model.Chord{},
		&model.ChordNote{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Migration completed!")
}
