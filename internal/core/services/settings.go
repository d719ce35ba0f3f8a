package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyFounderName    = "founder.name"
	keyLatencyEnabled = "latency.enabled"
	keyLatencyScale   = "latency.scale"
	keyRatePerSecond  = "rate_limit.per_second"
	keyRateBurst      = "rate_limit.burst"
	keyCatalogFormat  = "catalog.format"
	keyCatalogPath    = "catalog.path"
	keyCatalogWatch   = "catalog.watch"
	keySeed           = "seed"
)

var settingKeys = []string{
	keyFounderName,
	keyLatencyEnabled,
	keyLatencyScale,
	keyRatePerSecond,
	keyRateBurst,
	keyCatalogFormat,
	keyCatalogPath,
	keyCatalogWatch,
	keySeed,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		FounderName: s.getString(keyFounderName, defaults.FounderName),
		Latency: domain.LatencySettings{
			Enabled: s.getBool(keyLatencyEnabled, defaults.Latency.Enabled),
			Scale:   s.getFloat(keyLatencyScale, defaults.Latency.Scale),
		},
		RateLimit: domain.RateLimitSettings{
			PerSecond: s.getFloat(keyRatePerSecond, defaults.RateLimit.PerSecond),
			Burst:     s.getInt(keyRateBurst, defaults.RateLimit.Burst),
		},
		Catalog: domain.CatalogSettings{
			Format: s.getCatalogFormat(defaults.Catalog.Format),
			Path:   s.configStore.GetString(keyCatalogPath),
			Watch:  s.getBool(keyCatalogWatch, defaults.Catalog.Watch),
		},
		Seed: int64(s.configStore.GetInt(keySeed)),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	values := []struct {
		key   string
		value any
	}{
		{keyFounderName, settings.FounderName},
		{keyLatencyEnabled, settings.Latency.Enabled},
		{keyLatencyScale, settings.Latency.Scale},
		{keyRatePerSecond, settings.RateLimit.PerSecond},
		{keyRateBurst, settings.RateLimit.Burst},
		{keyCatalogFormat, settings.Catalog.Format.String()},
		{keyCatalogPath, settings.Catalog.Path},
		{keyCatalogWatch, settings.Catalog.Watch},
		{keySeed, settings.Seed},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates one setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	value = strings.TrimSpace(value)

	switch key {
	case keyFounderName:
		settings.FounderName = value
	case keyLatencyEnabled:
		settings.Latency.Enabled, err = strconv.ParseBool(value)
	case keyLatencyScale:
		settings.Latency.Scale, err = strconv.ParseFloat(value, 64)
	case keyRatePerSecond:
		settings.RateLimit.PerSecond, err = strconv.ParseFloat(value, 64)
	case keyRateBurst:
		settings.RateLimit.Burst, err = strconv.Atoi(value)
	case keyCatalogFormat:
		settings.Catalog.Format = domain.CatalogFormat(value)
	case keyCatalogPath:
		settings.Catalog.Path = value
	case keyCatalogWatch:
		settings.Catalog.Watch, err = strconv.ParseBool(value)
	case keySeed:
		settings.Seed, err = strconv.ParseInt(value, 10, 64)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
	}

	if err := validateSettings(settings); err != nil {
		return err
	}
	return s.Save(settings)
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// Validate checks that the current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return validateSettings(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func validateSettings(settings *domain.AppSettings) error {
	var errs []error
	if settings.Latency.Scale < 0 {
		errs = append(errs, fmt.Errorf("%w: latency scale must not be negative", domain.ErrInvalidInput))
	}
	if settings.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("%w: rate limit must not be negative", domain.ErrInvalidInput))
	}
	if settings.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("%w: rate limit burst must be at least 1", domain.ErrInvalidInput))
	}
	if !settings.Catalog.Format.IsValid() {
		errs = append(errs, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, settings.Catalog.Format))
	} else if settings.Catalog.Format.RequiresPath() && settings.Catalog.Path == "" {
		errs = append(errs, fmt.Errorf("%w: catalog format %q requires a path",
			domain.ErrInvalidInput, settings.Catalog.Format.Description()))
	}
	return errors.Join(errs...)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getCatalogFormat(defaultVal domain.CatalogFormat) domain.CatalogFormat {
	val := s.configStore.GetString(keyCatalogFormat)
	if val == "" {
		return defaultVal
	}
	format := domain.CatalogFormat(val)
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
