package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type monitorEnv struct {
	SweepInterval time.Duration `env:"MONITOR_SWEEP_INTERVAL" envDefault:"1m"`
	Autostart     bool          `env:"MONITOR_AUTOSTART" envDefault:"true"`
}

type monitor struct {
	raw monitorEnv
}

func NewMonitorConfig() (*monitor, error) {
	var raw monitorEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &monitor{raw: raw}, nil
}

func (cfg *monitor) SweepInterval() time.Duration { return cfg.raw.SweepInterval }
func (cfg *monitor) Autostart() bool              { return cfg.raw.Autostart }
