// api/config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Store         StoreConfiguration
	Neo4j         DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Log           LogConfiguration
	Catalog       CatalogConfiguration
	RateLimit     RateLimitConfiguration
	Engine        EngineConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// StoreConfiguration selects the persistence backend: "neo4j" or "memory"
type StoreConfiguration struct {
	Driver string
}

// DatabaseConfiguration stores data for database connection
type DatabaseConfiguration struct {
	URI      string
	Username string
	Password string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Enabled         bool
	Addr            string
	Password        string
	DB              int
	DefaultCacheTTL time.Duration
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	Enabled bool
	URL     string
	Index   string
}

type LogConfiguration struct {
	Dir string
}

// CatalogConfiguration points at an optional YAML file of observation and
// mitigation catalog entries loaded at startup
type CatalogConfiguration struct {
	SeedFile string
}

type RateLimitConfiguration struct {
	Requests int
	Window   time.Duration
}

// EngineConfiguration holds the rule engine policies
type EngineConfiguration struct {
	DedupeOpenVulnerabilities bool
	EnforceStatusTransitions  bool
	RuleDeletePolicy          string
	LockTTL                   time.Duration
	LockWait                  time.Duration
	BatchConcurrency          int
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaults()

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	loaded := &Configuration{}
	if err := viper.Unmarshal(loaded); err != nil {
		return err
	}
	config = loaded

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("store.driver", "neo4j")
	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("neo4j.username", "neo4j")
	viper.SetDefault("neo4j.password", "")
	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("elasticsearch.enabled", true)
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("elasticsearch.index", "hazard-audit-logs")
	viper.SetDefault("log.dir", "logging")
	viper.SetDefault("catalog.seedFile", "")
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", "1m")
	viper.SetDefault("engine.dedupeOpenVulnerabilities", true)
	viper.SetDefault("engine.enforceStatusTransitions", true)
	viper.SetDefault("engine.ruleDeletePolicy", "orphan")
	viper.SetDefault("engine.lockTTL", "30s")
	viper.SetDefault("engine.lockWait", "10s")
	viper.SetDefault("engine.batchConcurrency", 10)
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// EngineOptions returns the engine policies, or their defaults when
// InitConfig has not run.
func EngineOptions() EngineConfiguration {
	if config != nil {
		return config.Engine
	}
	return EngineConfiguration{
		DedupeOpenVulnerabilities: true,
		EnforceStatusTransitions:  true,
		RuleDeletePolicy:          "orphan",
		LockTTL:                   30 * time.Second,
		LockWait:                  10 * time.Second,
		BatchConcurrency:          10,
	}
}
