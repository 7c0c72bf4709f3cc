package main

import (
	"log"
	"time"

	"github.com/cli/browser"
	"github.com/joho/godotenv"
	"github.com/ritujane78/web-mapping-assignment2/models"
	"github.com/ritujane78/web-mapping-assignment2/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	cfg := models.ConfigFromEnv()

	if err := models.PopulateDataStore(cfg); err != nil {
		log.Fatal("Failed to populate data store:", err)
	}
	log.Printf("Loaded %d states", len(models.Store.Table.Rows))

	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := browser.OpenURL("http://localhost:" + cfg.Port); err != nil {
			log.Println("Failed to open browser:", err)
		}
	}()

	server.Serve(cfg.Port)
}
