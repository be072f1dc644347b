package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Monitor interface {
	SweepInterval() time.Duration
	Autostart() bool
}

type Storage interface {
	PartsBackend() string
	OrdersBackend() string
	SeedDemoData() bool
}

type Mongo interface {
	DatabaseName() string
	PartsCollection() string
	DSN() string
}

type Postgres interface {
	MigrationDirectory() string
	DSN() string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	ReorderEventsTopic() string
	SupplierUpdatesTopic() string
	ConsumerGroupID() string
	SupplierUpdatesConsumerConfig() *sarama.Config
	ReorderEventsProducerConfig() *sarama.Config
}
