package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type BotConfig struct {
	TelegramToken  string
	DatabaseURL    string
	ManagerChatIDs []int64
	SeedEmployees  []string
	LogLevel       logrus.Level
	BotDebug       bool
}

var instance *BotConfig
var once sync.Once

// GetBotConfig loads the configuration once and exits on invalid settings.
func GetBotConfig() *BotConfig {
	once.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			logrus.Fatalf("error loading env variables: %s", err.Error())
		}

		cfg, err := Load()
		if err != nil {
			logrus.Fatal(err)
		}
		instance = cfg
	})

	return instance
}

// Load reads the configuration from the process environment.
func Load() (*BotConfig, error) {
	cfg := &BotConfig{}

	cfg.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
	if cfg.TelegramToken == "" {
		return nil, errors.New("could not get bot token")
	}

	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "vacations.db"
	}

	ids, err := getEnvAsInt64List("MANAGER_CHAT_IDS")
	if err != nil {
		return nil, fmt.Errorf("could not parse manager chat ids: %w", err)
	}
	cfg.ManagerChatIDs = ids

	cfg.SeedEmployees = getEnvAsList("SEED_EMPLOYEES")

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("could not parse log level: %w", err)
	}
	cfg.LogLevel = level

	cfg.BotDebug = getEnvAsBool("BOT_DEBUG", false)

	return cfg, nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsList(name string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(name, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnvAsInt64List(name string) ([]int64, error) {
	var out []int64
	for _, item := range getEnvAsList(name) {
		val, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, val)
	}
	return out, nil
}
