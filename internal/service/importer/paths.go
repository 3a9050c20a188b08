package importer

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	models "contentnav/internal/domain/models/content"
)

// orderPrefix matches the `1.` ordering prefix of a file or directory name
var orderPrefix = regexp.MustCompile(`^\d+\.`)

// Stem returns the source path without its extension, e.g.
// "1.guide/2.install.md" -> "1.guide/2.install".
func Stem(relPath string) string {
	return strings.TrimSuffix(relPath, path.Ext(relPath))
}

// Extension returns the lowercase extension without the leading dot
func Extension(relPath string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(relPath), "."))
}

// ContentPath derives the public path of a stem. Ordering prefixes are
// dropped, a trailing index segment is removed and every other segment is
// slugified. The `.navigation` marker survives as the last segment.
//
//	"1.guide/2.install"   -> "/guide/install"
//	"1.guide/index"       -> "/guide"
//	"1.guide/.navigation" -> "/guide/.navigation"
//	"index"               -> "/"
func ContentPath(stem string) string {
	segments := strings.Split(stem, "/")
	out := make([]string, 0, len(segments))
	for i, segment := range segments {
		if segment == models.MarkerSegment {
			out = append(out, segment)
			continue
		}
		segment = orderPrefix.ReplaceAllString(segment, "")
		if i == len(segments)-1 && segment == "index" {
			break
		}
		if slug := Slugify(segment); slug != "" {
			out = append(out, slug)
		}
	}
	return "/" + strings.Join(out, "/")
}

// Slugify lowercases a segment, strips diacritics and joins words with hyphens
func Slugify(segment string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, segment)
	if err != nil {
		ascii = segment
	}
	return strcase.ToKebab(strings.TrimSpace(ascii))
}

// isHidden reports whether a source file should be ignored. Dotfiles and
// dot-directories are skipped except for `.navigation` config files.
func isHidden(relPath string) bool {
	segments := strings.Split(relPath, "/")
	for i, segment := range segments {
		if !strings.HasPrefix(segment, ".") {
			continue
		}
		if i == len(segments)-1 && Stem(segment) == models.MarkerSegment {
			continue
		}
		return true
	}
	return false
}
