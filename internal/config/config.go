package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverMongo = "mongo"
	DriverMySQL = "mysql"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	StoreDriver string `mapstructure:"STORE_DRIVER"`
	MongoURL    string `mapstructure:"MONGO_URL"`
	DBName      string `mapstructure:"DB_NAME"`
	MySQL       MySQL  `mapstructure:",squash"`

	AdminPin string `mapstructure:"ADMIN_PIN"`

	WhatsAppPhone   string `mapstructure:"WHATSAPP_PHONE"`
	WhatsAppAPIKey  string `mapstructure:"WHATSAPP_API_KEY"`
	WhatsAppBaseURL string `mapstructure:"WHATSAPP_BASE_URL"`

	CORSOrigins  string `mapstructure:"CORS_ORIGINS"`
	UploadDir    string `mapstructure:"UPLOAD_DIR"`
	OrderLogFile string `mapstructure:"ORDER_LOG_FILE"`

	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RabbitMQURL      string `mapstructure:"RABBITMQ_URL"`
	RabbitMQExchange string `mapstructure:"RABBITMQ_EXCHANGE"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

type MySQL struct {
	User     string `mapstructure:"MYSQL_USER"`
	Password string `mapstructure:"MYSQL_PASSWORD"`
	Host     string `mapstructure:"MYSQL_HOST"`
	Port     string `mapstructure:"MYSQL_PORT"`
	Database string `mapstructure:"MYSQL_DATABASE"`
}

func (m MySQL) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", m.User, m.Password, m.Host, m.Port, m.Database)
}

var defaults = map[string]any{
	"PORT":              "8001",
	"STORE_DRIVER":      DriverMongo,
	"MONGO_URL":         "mongodb://localhost:27017",
	"DB_NAME":           "test_database",
	"MYSQL_USER":        "root",
	"MYSQL_PASSWORD":    "",
	"MYSQL_HOST":        "localhost",
	"MYSQL_PORT":        "3306",
	"MYSQL_DATABASE":    "chicken_shop",
	"ADMIN_PIN":         "4242",
	"WHATSAPP_PHONE":    "+919999999999",
	"WHATSAPP_API_KEY":  "API_KEY_HERE",
	"WHATSAPP_BASE_URL": "https://api.callmebot.com/whatsapp.php",
	"CORS_ORIGINS":      "*",
	"UPLOAD_DIR":        "uploads",
	"ORDER_LOG_FILE":    "logs/orders.txt",
	"REDIS_ADDR":        "",
	"REDIS_PASSWORD":    "",
	"RABBITMQ_URL":      "",
	"RABBITMQ_EXCHANGE": "order.exchange",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "json",
}

// Load reads configuration from the environment, layered over an optional
// dotenv-style file. A missing file is not an error; the environment wins
// over the file.
func Load(file string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", file, err)
			}
		}
	}

	cf := &Config{}
	if err := v.Unmarshal(cf); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cf.StoreDriver != DriverMongo && cf.StoreDriver != DriverMySQL {
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cf.StoreDriver)
	}
	return cf, nil
}

// AllowedOrigins splits CORS_ORIGINS. A single "*" allows every origin.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
