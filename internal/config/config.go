package config

import (
	"bufio"
	"os"
	"strings"
)

// Config содержит конфигурацию приложения
type Config struct {
	// Chat-completions API для обзоров и режима модели
	AIBaseURL string // OpenAI-совместимый endpoint
	AIModel   string
	AIAPIKey  string // Пустой ключ = обзоры отключены
}

// Load загружает конфигурацию из переменных окружения или .env файла.
// Все параметры опциональные: без ключа API генератор работает,
// отключаются только обзоры и режим модели.
func Load() *Config {
	env, err := loadEnvFile(".env")
	if err != nil {
		env = make(map[string]string)
	}

	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value, ok := env[key]; ok && value != "" {
			return value
		}
		return defaultValue
	}

	return &Config{
		AIBaseURL: getEnv("AI_BASE_URL", ""),
		AIModel:   getEnv("AI_MODEL", ""),
		AIAPIKey:  getEnv("AI_API_KEY", ""),
	}
}

// ReviewEnabled сообщает, настроен ли доступ к модели
func (c *Config) ReviewEnabled() bool {
	return c.AIAPIKey != ""
}

// loadEnvFile читает .env файл
func loadEnvFile(filename string) (map[string]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	env := make(map[string]string)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		env[key] = value
	}

	return env, scanner.Err()
}
