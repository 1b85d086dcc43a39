package config_test

import (
	"testing"

	"smart-task-input/config"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("SMART_INPUT_TIMEZONE", "Asia/Ho_Chi_Minh")
	t.Setenv("TELEGRAM_BOT_TOKEN", "tg-token")
	t.Setenv("HTTP_SERVER_PORT", "9090")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SmartInput.Timezone != "Asia/Ho_Chi_Minh" {
		t.Errorf("Timezone = %q", cfg.SmartInput.Timezone)
	}
	if cfg.Telegram.BotToken != "tg-token" {
		t.Errorf("BotToken = %q", cfg.Telegram.BotToken)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("Port = %d", cfg.HTTPServer.Port)
	}
	if cfg.SmartInput.MaxInputLength != 500 || cfg.SmartInput.CacheSize != 4096 || !cfg.SmartInput.NotesEnabled {
		t.Errorf("unexpected smart input defaults: %+v", cfg.SmartInput)
	}
	if cfg.RateLimit.PerMin != 600 {
		t.Errorf("RateLimit.PerMin = %d", cfg.RateLimit.PerMin)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("SMART_INPUT_MAX_INPUT_LENGTH", "0")

	if _, err := config.Load(); err == nil {
		t.Fatal("Load() error = nil, want validation error")
	}
}
