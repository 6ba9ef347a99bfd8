package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	Port        string `envconfig:"PORT" default:"8080"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	// SweepSchedule is the expiry sweep cadence in robfig/cron syntax.
	SweepSchedule string `envconfig:"SWEEP_SCHEDULE" default:"@every 10m"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
