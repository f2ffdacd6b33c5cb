package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"costera/internal/pkg/models"
)

// InitConfig loads configuration from an optional env file plus environment
// variables. Environment variables use the section prefix, e.g. DATABASE_HOST.
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("config file not loaded, using environment:", err)
		}
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "costera")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.database", "costera")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.enabled", true)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 60*24)
	v.SetDefault("jwt.issuer", "costera")

	v.SetDefault("rides.compact_sequence", false)
	v.SetDefault("auth.reset_token_ttl", 30)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
}
