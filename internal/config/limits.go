package config

const (
	// MaxSurroundWindow is the largest before/after count a surround request may ask for.
	MaxSurroundWindow = 50

	// MaxExtraFields caps how many extra fields a request may project into nodes.
	MaxExtraFields = 32

	// MaxFieldNameLength is the maximum length of a projected field name.
	MaxFieldNameLength = 64

	// MaxPathLength is the maximum length of a content path.
	// Paths like "/a/b/c/d/e/page" with segments of up to 100 characters fit.
	MaxPathLength = 500

	// MaxImportSize limits uploaded zip archives to 50MB.
	MaxImportSize = 50 << 20
)
