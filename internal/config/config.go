package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken   string   `env:"DISCORD_TOKEN,required"`
	SelfieChannels []string `env:"SELFIE_CHANNELS" envSeparator:","`
	DataDir        string   `env:"DATA_DIR" envDefault:"data"`

	AIProvider    string `env:"AI_PROVIDER" envDefault:"pollinations"`
	ScheduleModel string `env:"SCHEDULE_MODEL"`
	CaptionModel  string `env:"CAPTION_MODEL"`
	ImageModel    string `env:"IMAGE_MODEL" envDefault:"flux"`

	TriggerTimes []string `env:"TRIGGER_TIMES" envSeparator:"," envDefault:"08:00,12:00,20:00"`
	Weather      string   `env:"WEATHER"`
	Holiday      bool     `env:"HOLIDAY"`

	PersonaEnabled   bool   `env:"PERSONA_ENABLED" envDefault:"true"`
	PersonaText      string `env:"PERSONA_TEXT"`
	PersonaLifestyle string `env:"PERSONA_LIFESTYLE"`

	SupplementEnabled         bool    `env:"SUPPLEMENT_ENABLED" envDefault:"true"`
	SupplementIntervalMinutes int     `env:"SUPPLEMENT_INTERVAL_MINUTES" envDefault:"120"`
	SupplementProbability     float64 `env:"SUPPLEMENT_PROBABILITY" envDefault:"0.3"`

	ScheduleRetentionDays int `env:"SCHEDULE_RETENTION_DAYS" envDefault:"7"`
	TickMinutes           int `env:"TICK_MINUTES" envDefault:"5"`

	SleepStart string `env:"SLEEP_START" envDefault:"23:00"`
	SleepEnd   string `env:"SLEEP_END" envDefault:"07:00"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	if !cfg.PersonaEnabled {
		cfg.PersonaText = ""
		cfg.PersonaLifestyle = ""
	}
	return cfg
}

func (c *Config) SupplementInterval() time.Duration {
	return time.Duration(c.SupplementIntervalMinutes) * time.Minute
}

func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMinutes) * time.Minute
}
