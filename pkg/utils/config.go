package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Session    SessionConfig
	Classifier ClassifierConfig
	Notify     NotifyConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type ClassifierConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	TimeoutSeconds int
}

type NotifyConfig struct {
	ResendAPIKey string
	FromAddress  string
	ClinicInbox  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("CLASSIFIER_MODEL", "gpt-4o-mini")
	viper.SetDefault("CLASSIFIER_TIMEOUT_SECONDS", 10)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Classifier: ClassifierConfig{
			BaseURL:        viper.GetString("CLASSIFIER_BASE_URL"),
			APIKey:         viper.GetString("CLASSIFIER_API_KEY"),
			Model:          viper.GetString("CLASSIFIER_MODEL"),
			TimeoutSeconds: viper.GetInt("CLASSIFIER_TIMEOUT_SECONDS"),
		},
		Notify: NotifyConfig{
			ResendAPIKey: viper.GetString("RESEND_API_KEY"),
			FromAddress:  viper.GetString("NOTIFY_FROM"),
			ClinicInbox:  viper.GetString("NOTIFY_CLINIC_INBOX"),
		},
	}

	return config, nil
}
