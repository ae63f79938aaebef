package settings

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const settingsFileName = "settings"
const settingsFileType = "env"
const defaultContextTimeout = 31 * time.Second
const defaultRequestTimeout = 60 * time.Second

const (
	VariantListing = "listing"
	VariantContent = "content"
)

type variantDefaults struct {
	fetchContent bool
	rateLimit    time.Duration
	outputDir    string
	outputFile   string
}

var defaultsByVariant = map[string]variantDefaults{
	VariantListing: {fetchContent: false, rateLimit: time.Second, outputDir: "data/ohio", outputFile: "ohio_legislation.json"},
	VariantContent: {fetchContent: true, rateLimit: 100 * time.Millisecond, outputDir: "data/ohio_a", outputFile: "ohio_legislation_with_content.json"},
}

type Settings struct {
	Variant          string        `mapstructure:"VARIANT"`
	BaseURL          string        `mapstructure:"BASE_URL"`
	RootPath         string        `mapstructure:"ROOT_PATH"`
	FetchContent     bool          `mapstructure:"FETCH_CONTENT"`
	RateLimit        time.Duration `mapstructure:"RATE_LIMIT"`
	OutputDir        string        `mapstructure:"OUTPUT_DIR"`
	OutputFile       string        `mapstructure:"OUTPUT_FILE"`
	RequestTimeout   time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ContextTimeout   time.Duration `mapstructure:"CONTEXT_TIMEOUT"`
	DoLogToStdout    bool          `mapstructure:"LOG_TO_STDOUT"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	BucketName       string        `mapstructure:"BUCKET_NAME"`
	OutputPathPrefix string        `mapstructure:"OUTPUT_PATH_PREFIX"`
	LocalEndpoint    *string       `mapstructure:"LOCAL_ENDPOINT"`
}

var settingsKeys = []string{
	"VARIANT", "BASE_URL", "ROOT_PATH", "FETCH_CONTENT", "RATE_LIMIT", "OUTPUT_DIR", "OUTPUT_FILE",
	"REQUEST_TIMEOUT", "CONTEXT_TIMEOUT", "LOG_TO_STDOUT", "LOG_LEVEL", "BUCKET_NAME",
	"OUTPUT_PATH_PREFIX", "LOCAL_ENDPOINT",
}

// GetSettings reads settings.env from the working directory or the nearest
// parent that has one. Environment variables override the file, and the file is
// optional.
func GetSettings() (*Settings, error) {
	configPath, err := getSettingsConfigPath()
	if err != nil {
		return nil, fmt.Errorf("error on getSettingsConfigPath: %v", err)
	}
	return GetSettingsFromDir(configPath)
}

func GetSettingsFromDir(configPath string) (*Settings, error) {
	v := viper.New()
	if configPath != "" {
		v.AddConfigPath(configPath)
		v.SetConfigName(settingsFileName)
		v.SetConfigType(settingsFileType)
	}

	v.AutomaticEnv()
	for _, key := range settingsKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error on binding env key='%s': %v", key, err)
		}
	}
	v.SetDefault("VARIANT", VariantListing)
	v.SetDefault("BASE_URL", "https://codes.ohio.gov")
	v.SetDefault("ROOT_PATH", "/ohio-revised-code")
	v.SetDefault("REQUEST_TIMEOUT", defaultRequestTimeout)
	v.SetDefault("CONTEXT_TIMEOUT", defaultContextTimeout)
	v.SetDefault("LOG_TO_STDOUT", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OUTPUT_PATH_PREFIX", "legislation")

	if configPath != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading in config: %v", err)
			}
		}
	}

	variant := strings.ToLower(strings.TrimSpace(v.GetString("VARIANT")))
	defaults, ok := defaultsByVariant[variant]
	if !ok {
		return nil, fmt.Errorf("unknown variant='%s', expected '%s' or '%s'", variant, VariantListing, VariantContent)
	}
	v.Set("VARIANT", variant)
	v.SetDefault("FETCH_CONTENT", defaults.fetchContent)
	v.SetDefault("RATE_LIMIT", defaults.rateLimit)
	v.SetDefault("OUTPUT_DIR", defaults.outputDir)
	v.SetDefault("OUTPUT_FILE", defaults.outputFile)

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("error unmarshalling settings: %v", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &settings, nil
}

func (settings *Settings) Validate() error {
	baseURL, err := url.Parse(settings.BaseURL)
	if err != nil {
		return fmt.Errorf("error on parsing BASE_URL='%s': %v", settings.BaseURL, err)
	}
	if (baseURL.Scheme != "http" && baseURL.Scheme != "https") || baseURL.Host == "" {
		return fmt.Errorf("BASE_URL='%s' must be an absolute http(s) url", settings.BaseURL)
	}
	if settings.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT must not be negative, got %v", settings.RateLimit)
	}
	if strings.TrimSpace(settings.OutputFile) == "" {
		return errors.New("OUTPUT_FILE must not be empty")
	}
	if strings.TrimSpace(settings.OutputDir) == "" {
		return errors.New("OUTPUT_DIR must not be empty")
	}
	return nil
}

func (settings *Settings) OutputPath() string {
	return filepath.Join(settings.OutputDir, settings.OutputFile)
}

func getSettingsConfigPath() (string, error) {
	initialCwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("error on os.Getwd: %v", err)
	}
	cwd := initialCwd
	for {
		settingsPath := filepath.Join(cwd, settingsFileName+"."+settingsFileType)
		if _, err := os.Stat(settingsPath); err == nil {
			return cwd, nil
		}
		parent := filepath.Dir(cwd)
		if parent == cwd {
			return "", nil
		}
		cwd = parent
	}
}
