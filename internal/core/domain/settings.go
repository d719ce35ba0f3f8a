package domain

const unknownDescription = "Unknown"

// CatalogFormat identifies where the investor catalog is loaded from.
type CatalogFormat string

// Available catalog formats.
const (
	// CatalogFormatEmbedded uses the catalog compiled into the binary.
	CatalogFormatEmbedded CatalogFormat = "embedded"

	// CatalogFormatYAML reads investors from a YAML file.
	CatalogFormatYAML CatalogFormat = "yaml"

	// CatalogFormatSQLite reads investors from a SQLite database.
	CatalogFormatSQLite CatalogFormat = "sqlite"
)

// IsValid returns true if the catalog format is recognised.
func (f CatalogFormat) IsValid() bool {
	switch f {
	case CatalogFormatEmbedded, CatalogFormatYAML, CatalogFormatSQLite:
		return true
	default:
		return false
	}
}

// RequiresPath returns true if the format reads from a file on disk.
func (f CatalogFormat) RequiresPath() bool {
	return f == CatalogFormatYAML || f == CatalogFormatSQLite
}

// String returns the string representation.
func (f CatalogFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f CatalogFormat) Description() string {
	switch f {
	case CatalogFormatEmbedded:
		return "Embedded (built-in investors)"
	case CatalogFormatYAML:
		return "YAML file"
	case CatalogFormatSQLite:
		return "SQLite database"
	default:
		return unknownDescription
	}
}

// LatencySettings controls the simulated processing delays.
type LatencySettings struct {
	// Enabled turns simulated delays on. When false operations return immediately.
	Enabled bool

	// Scale multiplies every delay. 1.0 reproduces the nominal durations.
	Scale float64
}

// RateLimitSettings paces delayed operations.
type RateLimitSettings struct {
	// PerSecond is the sustained number of delayed operations per second.
	// Zero disables pacing.
	PerSecond float64

	// Burst is the number of operations allowed at once.
	Burst int
}

// CatalogSettings selects the investor catalog source.
type CatalogSettings struct {
	// Format is the catalog source type.
	Format CatalogFormat

	// Path is the catalog file for yaml and sqlite formats.
	Path string

	// Watch reloads the catalog when the file changes (mcp serve only).
	Watch bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// FounderName signs generated messages. Empty uses the default signature.
	FounderName string

	// Latency holds simulated delay settings.
	Latency LatencySettings

	// RateLimit holds pacing settings for delayed operations.
	RateLimit RateLimitSettings

	// Catalog holds investor catalog settings.
	Catalog CatalogSettings

	// Seed fixes the random source when non-zero, making runs reproducible.
	Seed int64
}

// DefaultFounderName signs messages when no founder name is known.
const DefaultFounderName = "Alex Morgan"

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Latency: LatencySettings{
			Enabled: true,
			Scale:   1.0,
		},
		RateLimit: RateLimitSettings{
			PerSecond: 0,
			Burst:     1,
		},
		Catalog: CatalogSettings{
			Format: CatalogFormatEmbedded,
		},
	}
}

// AllCatalogFormats returns all available catalog formats.
func AllCatalogFormats() []CatalogFormat {
	return []CatalogFormat{
		CatalogFormatEmbedded,
		CatalogFormatYAML,
		CatalogFormatSQLite,
	}
}
