package main

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"contentnav/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// Drops every collection table with the environment's prefix from a Postgres
// database, including tables of collections no longer listed in the config.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}
	if cfg.Environment == "prod" {
		log.Fatal("Refusing to drop tables in production environment")
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }() // Error ignored: script exiting

	pattern := strings.NewReplacer("_", `\_`).Replace(config.TableName(cfg.TablePrefix, "")) + "%"
	rows, err := db.Query(
		`SELECT table_name FROM information_schema.tables WHERE table_schema = current_schema() AND table_name LIKE $1`,
		pattern,
	)
	if err != nil {
		log.Fatalf("Failed to list tables: %v", err)
	}

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Fatalf("Failed to read table name: %v", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Failed to list tables: %v", err)
	}
	_ = rows.Close()

	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %q CASCADE`, table)); err != nil {
			log.Fatalf("Failed to drop %s: %v", table, err)
		}
		fmt.Printf("Dropped %s\n", table)
	}

	fmt.Printf("All content tables dropped successfully (prefix: %s, count: %d)\n", cfg.TablePrefix, len(tables))
}
