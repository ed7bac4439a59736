package engine

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config хранит параметры запуска сервера сессии.
type Config struct {
	// Port - порт HTTP/WebSocket сервера.
	Port string `env:"TS_PORT" envDefault:"8080"`

	// WebhookURL - адрес нарративного движка. Пустое значение допустимо:
	// сервер работает, но сетевые действия возвращают ошибку конфигурации.
	WebhookURL string `env:"TS_WEBHOOK_URL"`

	// SaveDir - каталог для блоба сессии.
	SaveDir string `env:"TS_SAVE_DIR" envDefault:"data"`

	// ScenePromptTimeout - срок жизни предложения смены сцены.
	ScenePromptTimeout time.Duration `env:"TS_SCENE_PROMPT_TIMEOUT" envDefault:"30s"`
}

// NewConfig читает конфиг из окружения.
func NewConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
