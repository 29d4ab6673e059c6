package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Admin     AdminConfig
	Assistant AssistantConfig
	Shop      ShopConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

type StorageConfig struct {
	Dir string
}

type AdminConfig struct {
	Password string
}

type AssistantConfig struct {
	Endpoint       string
	APIKey         string
	Model          string
	TimeoutSeconds int
}

type ShopConfig struct {
	WhatsApp string
	Location string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("SERVER_ALLOWED_ORIGINS", "")
	viper.SetDefault("STORAGE_DIR", "data")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("ASSISTANT_ENDPOINT", "")
	viper.SetDefault("ASSISTANT_API_KEY", "")
	viper.SetDefault("ASSISTANT_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("ASSISTANT_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SHOP_WHATSAPP", "6287825194034")
	viper.SetDefault("SHOP_LOCATION", "Jakarta, Indonesia")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			Env:            viper.GetString("SERVER_ENV"),
			AllowedOrigins: splitOrigins(viper.GetString("SERVER_ALLOWED_ORIGINS")),
		},
		Storage: StorageConfig{
			Dir: viper.GetString("STORAGE_DIR"),
		},
		Admin: AdminConfig{
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Assistant: AssistantConfig{
			Endpoint:       viper.GetString("ASSISTANT_ENDPOINT"),
			APIKey:         viper.GetString("ASSISTANT_API_KEY"),
			Model:          viper.GetString("ASSISTANT_MODEL"),
			TimeoutSeconds: viper.GetInt("ASSISTANT_TIMEOUT_SECONDS"),
		},
		Shop: ShopConfig{
			WhatsApp: viper.GetString("SHOP_WHATSAPP"),
			Location: viper.GetString("SHOP_LOCATION"),
		},
	}
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
