package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerAddr string `yaml:"server_addr"`

	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`

	JWTSecret string `yaml:"jwt_secret"`

	MinIOEndpoint  string `yaml:"minio_endpoint"`
	MinIOAccessKey string `yaml:"minio_access_key"`
	MinIOSecretKey string `yaml:"minio_secret_key"`
	MinIOBucket    string `yaml:"minio_bucket"`
}

// LoadConfig reads configuration from the environment. A .env file is
// loaded first if present, then an optional config.yaml overlay fills
// any field the environment left empty.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		ServerAddr:     getEnv("SERVER_ADDR", ":8000"),
		DBUser:         getEnv("DB_USER", ""),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBHost:         getEnv("DB_HOST", ""),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "warbler"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:    getEnv("MINIO_BUCKET", "warbler-media"),
	}

	if data, err := os.ReadFile("config.yaml"); err == nil {
		var file Config
		if err := yaml.Unmarshal(data, &file); err == nil {
			cfg.merge(file)
		}
	}

	return cfg
}

// merge fills empty fields from the yaml overlay; the environment wins.
func (c *Config) merge(file Config) {
	setIfEmpty(&c.ServerAddr, file.ServerAddr)
	setIfEmpty(&c.DBUser, file.DBUser)
	setIfEmpty(&c.DBPassword, file.DBPassword)
	setIfEmpty(&c.DBHost, file.DBHost)
	setIfEmpty(&c.DBPort, file.DBPort)
	setIfEmpty(&c.DBName, file.DBName)
	setIfEmpty(&c.RedisAddr, file.RedisAddr)
	setIfEmpty(&c.RedisPassword, file.RedisPassword)
	setIfEmpty(&c.JWTSecret, file.JWTSecret)
	setIfEmpty(&c.MinIOEndpoint, file.MinIOEndpoint)
	setIfEmpty(&c.MinIOAccessKey, file.MinIOAccessKey)
	setIfEmpty(&c.MinIOSecretKey, file.MinIOSecretKey)
	setIfEmpty(&c.MinIOBucket, file.MinIOBucket)
}

func setIfEmpty(dst *string, val string) {
	if *dst == "" && val != "" {
		*dst = val
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
