package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type mongoEnv struct {
	Host      string `env:"MONGO_HOST" envDefault:"localhost"`
	Port      int    `env:"MONGO_PORT" envDefault:"27017"`
	User      string `env:"MONGO_USER" envDefault:""`
	Password  string `env:"MONGO_PASSWORD" envDefault:""`
	Database  string `env:"MONGO_DATABASE" envDefault:"reznico_parts"`
	PartsColl string `env:"MONGO_PARTS_COLLECTION" envDefault:"parts"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) DatabaseName() string    { return cfg.raw.Database }
func (cfg *mongo) PartsCollection() string { return cfg.raw.PartsColl }

func (cfg *mongo) DSN() string {
	if cfg.raw.User == "" {
		return fmt.Sprintf("mongodb://%s:%d", cfg.raw.Host, cfg.raw.Port)
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%d",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
	)
}
