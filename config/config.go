package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	// EnvPrefix marks environment variables that override config keys.
	EnvPrefix = "KAMPUSKART_"

	defaultPath               = "."
	defaultMaxRequestBodySize = "20MB"
	defaultMaxUploadSize      = "5MB"
	defaultBucketName         = "uploads"
	defaultPageSize           = 12
	defaultMaxPageSize        = 50
	defaultAdminPageSize      = 10
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
	defaultQRCodeBaseURL      = "http://localhost:5173"
)

const (
	DatabaseDriverMongo    = "mongo"
	DatabaseDriverPostgres = "postgres"

	BlobDriverGridFS = "gridfs"
	BlobDriverBucket = "bucket"

	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Database struct {
		// Driver selects the persistence backend: "mongo" (default) or "postgres".
		Driver string `json:"driver" yaml:"driver"`
		// SlowQueryThreshold is the duration above which queries are logged as slow.
		SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	} `json:"database" yaml:"database"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Blob *BlobConfig `json:"blob" yaml:"blob"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Marketplace *MarketplaceConfig `json:"marketplace" yaml:"marketplace"`

	// QRCode configuration for shop share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig throttles the unauthenticated auth endpoints per client IP.
type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	ExpiresIn         time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// MongoConfig configures the document store.
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	MaxPoolSize    uint64        `json:"maxPoolSize" yaml:"maxPoolSize"`
	MinPoolSize    uint64        `json:"minPoolSize" yaml:"minPoolSize"`
	// Transactions enables multi-document transactions for cascading deletes.
	// It requires a replica set.
	Transactions bool `json:"transactions" yaml:"transactions"`
}

// BlobConfig configures image storage.
type BlobConfig struct {
	// Driver is "gridfs" (stored next to the documents) or "bucket" (gocloud URL).
	Driver string `json:"driver" yaml:"driver"`
	// BucketName is the GridFS bucket name.
	BucketName string `json:"bucketName" yaml:"bucketName"`
	// URL is the gocloud bucket URL, e.g. file:///var/lib/kampuskart, mem://, s3://bucket?region=...
	URL string `json:"url" yaml:"url"`
	// MaxUploadSize is a human readable limit such as "5MB".
	MaxUploadSize string `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// MaxUploadBytes parses MaxUploadSize.
func (b *BlobConfig) MaxUploadBytes() int64 {
	size, err := bytes.Parse(b.MaxUploadSize)
	if err != nil || size <= 0 {
		size, _ = bytes.Parse(defaultMaxUploadSize)
	}

	return size
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
}

// MarketplaceConfig bounds paginated listings.
type MarketplaceConfig struct {
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize"`
	AdminPageSize   int `json:"adminPageSize" yaml:"adminPageSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// BaseURL is the public frontend origin shop pages live under.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads <currEnv>.yaml through koanf and overlays KAMPUSKART_*
// environment variables, optionally read from a .env file first.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// KAMPUSKART_MONGO_MAXPOOLSIZE -> mongo.maxPoolSize
			key := canonicalizeEnvKey(strings.TrimPrefix(k, EnvPrefix), existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads config.yaml from the working directory, ./config, or the directory
// named by KAMPUSKART_CONFIG_DIR, then fills defaults.
func New() (*Config, error) {
	paths := []string{"config", "../config", "../../config"}
	if dir := os.Getenv(EnvPrefix + "CONFIG_DIR"); dir != "" {
		paths = append([]string{dir}, paths...)
	}

	cfg, err := LoadWithEnv[Config]("config", paths...)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// Replicas come from KAMPUSKART_POSTGRES_REPLICAS_{index}_{field}.
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DatabaseDriverMongo
	}

	if cfg.Blob == nil {
		cfg.Blob = &BlobConfig{}
	}
	if cfg.Blob.Driver == "" {
		// GridFS lives next to the documents; a relational deployment needs a bucket URL.
		cfg.Blob.Driver = BlobDriverGridFS
		if cfg.Database.Driver != DatabaseDriverMongo {
			cfg.Blob.Driver = BlobDriverBucket
		}
	}
	if cfg.Blob.BucketName == "" {
		cfg.Blob.BucketName = defaultBucketName
	}
	if cfg.Blob.MaxUploadSize == "" {
		cfg.Blob.MaxUploadSize = defaultMaxUploadSize
	}

	if cfg.Marketplace == nil {
		cfg.Marketplace = &MarketplaceConfig{}
	}
	if cfg.Marketplace.DefaultPageSize <= 0 {
		cfg.Marketplace.DefaultPageSize = defaultPageSize
	}
	if cfg.Marketplace.MaxPageSize <= 0 {
		cfg.Marketplace.MaxPageSize = defaultMaxPageSize
	}
	if cfg.Marketplace.AdminPageSize <= 0 {
		cfg.Marketplace.AdminPageSize = defaultAdminPageSize
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}
	if cfg.QRCode.BaseURL == "" {
		cfg.QRCode.BaseURL = defaultQRCodeBaseURL
	}
}

func loadDotEnv() error {
	envFile := os.Getenv(EnvPrefix + "ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	if _, err := os.Stat(envFile); err != nil {
		return nil //nolint:nilerr // a missing .env file is normal outside development
	}

	if err := godotenv.Load(envFile); err != nil {
		return errors.Wrapf(err, "load %s", envFile)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads read replicas from
// KAMPUSKART_POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := EnvPrefix + "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
