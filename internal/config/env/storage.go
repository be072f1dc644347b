package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Storage backends. Memory is the default and needs no external
// infrastructure; mongo/postgres persist parts and purchase orders.
const (
	BackendMemory   = "memory"
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

type storageEnv struct {
	PartsBackend  string `env:"PARTS_STORAGE" envDefault:"memory"`
	OrdersBackend string `env:"ORDER_STORAGE" envDefault:"memory"`
	SeedDemoData  bool   `env:"SEED_DEMO_DATA" envDefault:"true"`
}

type storage struct {
	raw storageEnv
}

func NewStorageConfig() (*storage, error) {
	var raw storageEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.PartsBackend {
	case BackendMemory, BackendMongo:
	default:
		return nil, fmt.Errorf("unsupported PARTS_STORAGE %q", raw.PartsBackend)
	}
	switch raw.OrdersBackend {
	case BackendMemory, BackendPostgres:
	default:
		return nil, fmt.Errorf("unsupported ORDER_STORAGE %q", raw.OrdersBackend)
	}

	return &storage{raw: raw}, nil
}

func (cfg *storage) PartsBackend() string  { return cfg.raw.PartsBackend }
func (cfg *storage) OrdersBackend() string { return cfg.raw.OrdersBackend }
func (cfg *storage) SeedDemoData() bool    { return cfg.raw.SeedDemoData }
