package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Путь к файлу БД (если db_connection.txt не переопределяет его)
	DBPath string `env:"NOTES_DB_PATH"`
	// Файл с параметрами подключения для внешних инструментов
	ConnInfoFile string `env:"NOTES_CONN_INFO"`
	// Каталог просмотрщика, куда пишется sqlite.env
	EnvDir string `env:"NOTES_ENV_DIR"`

	Version bool `env:"-"` // show version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "путь к файлу SQLite")
	flag.StringVar(&cfg.ConnInfoFile, "conn-info", cfg.ConnInfoFile, "путь к db_connection.txt")
	flag.StringVar(&cfg.EnvDir, "env-dir", cfg.EnvDir, "каталог для sqlite.env")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	// повторный разбор env: непустые переменные окружения имеют
	// приоритет над флагами
	_ = env.Parse(cfg)

	// Defaults
	if cfg.DBPath == "" {
		cfg.DBPath = "myapp.db"
	}
	if cfg.ConnInfoFile == "" {
		cfg.ConnInfoFile = "db_connection.txt"
	}
	if cfg.EnvDir == "" {
		cfg.EnvDir = "db_visualizer"
	}

	return cfg
}
