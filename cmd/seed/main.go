package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Seeds the demo providers and clients. Safe to run repeatedly.
func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	providers := []string{"Dr. Jekyll", "Dr. Hyde"}
	for _, name := range providers {
		if _, err := db.Exec(
			`INSERT INTO providers (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name,
		); err != nil {
			log.Fatalf("Failed to seed provider %s: %v", name, err)
		}
	}

	clients := []struct{ name, email string }{
		{"John Doe", "john@example.com"},
		{"Jane Doe", "jane@example.com"},
	}
	for _, c := range clients {
		if _, err := db.Exec(
			`INSERT INTO clients (name, email) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`,
			c.name, c.email,
		); err != nil {
			log.Fatalf("Failed to seed client %s: %v", c.email, err)
		}
	}

	log.Printf("Seeded %d providers and %d clients", len(providers), len(clients))
}
