package config

type App struct {
	Addr         string `env:"APP_ADDR" default:"127.0.0.1:8080"`
	DBPath       string `env:"DB_PATH" default:"CarGoOwner.db"`
	DeletePolicy string `env:"DELETE_POLICY" default:"atomic"`
	SeedOnStart  bool   `env:"SEED_ON_START" default:"true"`
	LogLevel     string `env:"LOG_LEVEL" default:"info"`
	Env          string `env:"APP_ENV" default:"dev"`
}
