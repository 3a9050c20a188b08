package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"contentnav/internal/config"
	models "contentnav/internal/domain/models/content"
	"contentnav/internal/repository"
	"contentnav/internal/service/importer"
	"contentnav/internal/service/importer/converter"
	"contentnav/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop collection tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't import content")
	clearData := flag.Bool("clear-data", false, "Clear all entries (keep schema)")
	collectionName := flag.String("collection", "", "Only seed this collection (default: all)")
	contentDir := flag.String("dir", "", "Import root; defaults to each collection's source, then CONTENT_DIR/<name>")
	archivePath := flag.String("archive", "", "Write the -collection source as a zip for POST /api/collections/{name}/import, then exit")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("🚫 BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	logOutput, closeLog, err := config.LogWriter(cfg, "seed")
	if err != nil {
		log.Fatalf("Failed to set up log file: %v", err)
	}
	defer closeLog()
	logger := config.NewLogger(cfg, logOutput)

	if *clearData {
		log.Printf("🧹 Clearing data only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding content (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	collections, err := config.LoadCollections(cfg.ContentConfig, cfg.TablePrefix)
	if err != nil {
		log.Fatalf("Failed to load collections: %v", err)
	}

	targets, err := selectCollections(collections, *collectionName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *archivePath != "" {
		if len(targets) != 1 {
			log.Fatalf("-archive needs a single -collection")
		}
		dir := sourceDir(targets[0], *contentDir, cfg.ContentDir)
		if err := writeArchive(dir, *archivePath); err != nil {
			log.Fatalf("Failed to write archive: %v", err)
		}
		log.Printf("📦 Wrote %s from %s", *archivePath, dir)
		return
	}

	ctx := context.Background()
	db := repository.NewContentDatabase(cfg, collections, logger)
	defer db.Close()

	contentRepo := repository.NewContentRepository(db, collections)
	store := repository.NewContentStore(db, logger)

	// Drop tables if requested
	if *dropTables {
		log.Println("🗑️  Dropping collection tables...")
		for _, c := range targets {
			if err := store.Drop(ctx, c); err != nil {
				log.Fatalf("Failed to drop %s: %v", c.Table, err)
			}
		}
		log.Println("✅ Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("📋 Ensuring collection tables exist...")
	for _, c := range targets {
		if err := store.EnsureSchema(ctx, c); err != nil {
			log.Fatalf("Failed to create %s: %v", c.Table, err)
		}
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	if *clearData {
		for _, c := range targets {
			if err := store.Clear(ctx, c); err != nil {
				log.Fatalf("Failed to clear %s: %v", c.Name, err)
			}
		}
		log.Println("✅ Data cleared successfully")
		return
	}

	importService := importer.NewImportService(contentRepo, store, converter.NewConverterRegistry(), logger)

	for _, c := range targets {
		dir := sourceDir(c, *contentDir, cfg.ContentDir)
		log.Printf("📝 Importing %s from %s...", c.Name, dir)

		result, err := importService.ImportDir(ctx, c.Name, dir)
		if err != nil {
			log.Printf("❌ Failed to import %s: %v", c.Name, err)
			continue
		}
		for _, e := range result.Errors {
			log.Printf("❌ %s: %s", e.File, e.Error)
		}
		log.Printf("✅ %s: %d created, %d skipped, %d failed",
			c.Name, result.Summary.Created, result.Summary.Skipped, result.Summary.Failed)
	}

	log.Println("🎉 Seeding complete!")
}

// selectCollections returns every collection, or only the named one
func selectCollections(collections []models.Collection, name string) ([]*models.Collection, error) {
	var targets []*models.Collection
	for i := range collections {
		if name == "" || collections[i].Name == name {
			targets = append(targets, &collections[i])
		}
	}
	if name != "" && len(targets) == 0 {
		return nil, fmt.Errorf("unknown collection: %s", name)
	}
	return targets, nil
}

// writeArchive zips every importable file under dir into path
func writeArchive(dir, path string) error {
	buf, err := utils.CreateZipFromDirectory(dir, converter.NewConverterRegistry().SupportedExtensions()...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// sourceDir resolves the import root of a collection
func sourceDir(c *models.Collection, override, contentRoot string) string {
	switch {
	case override != "":
		return override
	case c.Source != "":
		return c.Source
	default:
		return filepath.Join(contentRoot, c.Name)
	}
}
