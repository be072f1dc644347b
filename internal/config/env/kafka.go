package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled                  bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers                  []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ReorderEventsTopicName   string   `env:"REORDER_EVENTS_TOPIC_NAME" envDefault:"reorder.events"`
	SupplierUpdatesTopicName string   `env:"SUPPLIER_UPDATES_TOPIC_NAME" envDefault:"supplier.updates"`
	ConsumerGroupID          string   `env:"SUPPLIER_UPDATES_CONSUMER_GROUP_ID" envDefault:"parts-supplier-updates"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool                { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string            { return cfg.raw.Brokers }
func (cfg *kafka) ReorderEventsTopic() string   { return cfg.raw.ReorderEventsTopicName }
func (cfg *kafka) SupplierUpdatesTopic() string { return cfg.raw.SupplierUpdatesTopicName }
func (cfg *kafka) ConsumerGroupID() string      { return cfg.raw.ConsumerGroupID }

func (cfg *kafka) SupplierUpdatesConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

func (cfg *kafka) ReorderEventsProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true

	return config
}
