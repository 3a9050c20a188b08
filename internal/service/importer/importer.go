package importer

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"contentnav/internal/config"
	"contentnav/internal/domain"
	models "contentnav/internal/domain/models/content"
	contentRepo "contentnav/internal/domain/repositories/content"
	importSvc "contentnav/internal/domain/services/importer"
	"contentnav/internal/service/importer/converter"
	"contentnav/internal/service/navigation"
	"contentnav/internal/utils"
)

// sourceFile is one file read from a directory or archive
type sourceFile struct {
	name    string // slash-separated path relative to the import root
	content []byte
}

// importService implements the ImportService interface
type importService struct {
	repo     contentRepo.ContentRepository
	store    contentRepo.ContentStore
	registry *converter.ConverterRegistry
	logger   *slog.Logger
}

// NewImportService creates a new import service
func NewImportService(
	repo contentRepo.ContentRepository,
	store contentRepo.ContentStore,
	registry *converter.ConverterRegistry,
	logger *slog.Logger,
) importSvc.ImportService {
	return &importService{
		repo:     repo,
		store:    store,
		registry: registry,
		logger:   logger,
	}
}

// ImportDir replaces the collection's entries with the files under dir
func (s *importService) ImportDir(ctx context.Context, collection, dir string) (*importSvc.ImportResult, error) {
	target, err := s.repo.Collection(collection)
	if err != nil {
		return nil, err
	}

	var files []sourceFile
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rel, err)
		}
		files = append(files, sourceFile{name: filepath.ToSlash(rel), content: content})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	return s.importFiles(ctx, target, files)
}

// ImportZip replaces the collection's entries with the files in a zip archive
func (s *importService) ImportZip(ctx context.Context, collection string, archive io.Reader) (*importSvc.ImportResult, error) {
	target, err := s.repo.Collection(collection)
	if err != nil {
		return nil, err
	}

	// Read zip file into memory, one byte past the limit to detect oversize uploads
	zipData, err := io.ReadAll(io.LimitReader(archive, config.MaxImportSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}
	if len(zipData) > config.MaxImportSize {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("archive exceeds %d bytes", config.MaxImportSize)}
	}

	// Insecure member names are rejected per file below
	zipFile, err := zip.NewReader(bytes.NewReader(zipData), int64(len(zipData)))
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("%w: invalid zip archive: %v", domain.ErrValidation, err)
	}

	result := newResult()
	var files []sourceFile
	for _, file := range zipFile.File {
		// Skip directories
		if file.FileInfo().IsDir() {
			continue
		}

		if err := utils.ValidateSourcePath(file.Name); err != nil {
			result.Summary.TotalFiles++
			s.addError(result, file.Name, err.Error())
			continue
		}

		content, err := readZipFile(file)
		if err != nil {
			result.Summary.TotalFiles++
			s.addError(result, file.Name, err.Error())
			continue
		}
		files = append(files, sourceFile{name: file.Name, content: content})
	}

	return s.importInto(ctx, target, files, result)
}

func (s *importService) importFiles(ctx context.Context, collection *models.Collection, files []sourceFile) (*importSvc.ImportResult, error) {
	return s.importInto(ctx, collection, files, newResult())
}

// importInto converts files to entries and swaps them into the collection table
func (s *importService) importInto(
	ctx context.Context,
	collection *models.Collection,
	files []sourceFile,
	result *importSvc.ImportResult,
) (*importSvc.ImportResult, error) {
	slices.SortFunc(files, func(a, b sourceFile) int { return strings.Compare(a.name, b.name) })

	now := time.Now().UTC()
	seen := make(map[string]string) // stem -> source file
	entries := make([]models.Entry, 0, len(files))

	for _, file := range files {
		result.Summary.TotalFiles++

		if isHidden(file.name) {
			s.logger.Debug("skipping hidden file", "file", file.name)
			result.Summary.Skipped++
			continue
		}
		if s.registry.GetConverter(path.Ext(file.name)) == nil {
			s.logger.Debug("skipping unsupported file", "file", file.name)
			result.Summary.Skipped++
			continue
		}

		entry, err := s.buildEntry(ctx, file, now)
		if err != nil {
			s.addError(result, file.name, err.Error())
			continue
		}
		if other, ok := seen[entry.Stem]; ok {
			s.addError(result, file.name, fmt.Sprintf("stem %q already provided by %s", entry.Stem, other))
			continue
		}
		seen[entry.Stem] = file.name
		entries = append(entries, *entry)
	}

	if err := s.store.EnsureSchema(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to prepare collection %s: %w", collection.Name, err)
	}
	if err := s.store.Replace(ctx, collection, entries); err != nil {
		s.logger.Error("failed to store entries",
			"collection", collection.Name,
			"count", len(entries),
			"error", err,
		)
		return nil, fmt.Errorf("failed to store entries: %w", err)
	}

	for _, entry := range entries {
		result.Summary.Created++
		result.Entries = append(result.Entries, importSvc.ImportedEntry{
			ID:   entry.ID,
			Path: entry.Path,
			Stem: entry.Stem,
		})
	}

	s.logger.Info("import complete",
		"collection", collection.Name,
		"created", result.Summary.Created,
		"skipped", result.Summary.Skipped,
		"failed", result.Summary.Failed,
		"total", result.Summary.TotalFiles,
	)

	return result, nil
}

// buildEntry parses one source file into a content entry
func (s *importService) buildEntry(ctx context.Context, file sourceFile, now time.Time) (*models.Entry, error) {
	parsed, err := s.registry.Parse(ctx, file.name, file.content)
	if err != nil {
		return nil, err
	}

	stem := Stem(file.name)
	entry := &models.Entry{
		ID:          uuid.NewString(),
		Path:        ContentPath(stem),
		Stem:        stem,
		Extension:   Extension(file.name),
		Title:       parsed.Title,
		Description: parsed.Description,
		Navigation:  parsed.Navigation,
		Body:        parsed.Body,
		Meta:        parsed.Meta,
		UpdatedAt:   now,
	}

	// Directory configs only carry the title they declare
	if entry.Title == "" && !entry.IsDirectoryConfig() {
		entry.Title = navigation.GenerateTitle(titleSegment(entry.Path, stem))
	}
	return entry, nil
}

// titleSegment returns the segment a fallback title is generated from
func titleSegment(contentPath, stem string) string {
	if segment := path.Base(contentPath); segment != "/" {
		return segment
	}
	return orderPrefix.ReplaceAllString(path.Base(stem), "")
}

// readZipFile reads a single archive member, bounded by the import size limit
func readZipFile(file *zip.File) ([]byte, error) {
	reader, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer reader.Close()

	content, err := io.ReadAll(io.LimitReader(reader, config.MaxImportSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(content) > config.MaxImportSize {
		return nil, fmt.Errorf("file exceeds %d bytes", config.MaxImportSize)
	}
	return content, nil
}

func newResult() *importSvc.ImportResult {
	return &importSvc.ImportResult{
		Errors:  []importSvc.ImportError{},
		Entries: []importSvc.ImportedEntry{},
	}
}

// addError adds an error to the result
func (s *importService) addError(result *importSvc.ImportResult, file string, errorMsg string) {
	result.Summary.Failed++
	result.Errors = append(result.Errors, importSvc.ImportError{
		File:  file,
		Error: errorMsg,
	})

	s.logger.Warn("file processing failed",
		"file", file,
		"error", errorMsg,
	)
}
