package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	mongodrv "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/RollNo21-crypto/reznico-parts/internal/config"
	envconfig "github.com/RollNo21-crypto/reznico-parts/internal/config/env"
	"github.com/RollNo21-crypto/reznico-parts/internal/converter"
	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/closer"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/db/migrator"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/kafka"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/kafka/consumer"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/kafka/middleware"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/kafka/producer"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/logger"
	notifmem "github.com/RollNo21-crypto/reznico-parts/internal/repository/notification/memory"
	ordmem "github.com/RollNo21-crypto/reznico-parts/internal/repository/order/memory"
	ordpg "github.com/RollNo21-crypto/reznico-parts/internal/repository/order/postgres"
	partmem "github.com/RollNo21-crypto/reznico-parts/internal/repository/part/memory"
	partmongo "github.com/RollNo21-crypto/reznico-parts/internal/repository/part/mongo"
	rulemem "github.com/RollNo21-crypto/reznico-parts/internal/repository/rule/memory"
	supmem "github.com/RollNo21-crypto/reznico-parts/internal/repository/supplier/memory"
	usagemem "github.com/RollNo21-crypto/reznico-parts/internal/repository/usage/memory"
	analyticssvc "github.com/RollNo21-crypto/reznico-parts/internal/service/analytics"
	supconsumer "github.com/RollNo21-crypto/reznico-parts/internal/service/consumer/supplier"
	invsvc "github.com/RollNo21-crypto/reznico-parts/internal/service/inventory"
	monitorsvc "github.com/RollNo21-crypto/reznico-parts/internal/service/monitor"
	notifsvc "github.com/RollNo21-crypto/reznico-parts/internal/service/notification"
	ordsvc "github.com/RollNo21-crypto/reznico-parts/internal/service/order"
	pricingsvc "github.com/RollNo21-crypto/reznico-parts/internal/service/pricing"
	evtproducer "github.com/RollNo21-crypto/reznico-parts/internal/service/producer/events"
	rulessvc "github.com/RollNo21-crypto/reznico-parts/internal/service/rules"
	usagesvc "github.com/RollNo21-crypto/reznico-parts/internal/service/usage"
	invhttp "github.com/RollNo21-crypto/reznico-parts/internal/transport/http/inventory/v1"
	monhttp "github.com/RollNo21-crypto/reznico-parts/internal/transport/http/monitor/v1"
	notifhttp "github.com/RollNo21-crypto/reznico-parts/internal/transport/http/notification/v1"
	ordhttp "github.com/RollNo21-crypto/reznico-parts/internal/transport/http/order/v1"
	prchttp "github.com/RollNo21-crypto/reznico-parts/internal/transport/http/pricing/v1"
	reporthttp "github.com/RollNo21-crypto/reznico-parts/internal/transport/http/reports/v1"
	ruleshttp "github.com/RollNo21-crypto/reznico-parts/internal/transport/http/rules/v1"
	suphttp "github.com/RollNo21-crypto/reznico-parts/internal/transport/http/supplier/v1"
	usagehttp "github.com/RollNo21-crypto/reznico-parts/internal/transport/http/usage/v1"
)

type Converter interface {
	NotificationToBytes(n model.Notification) ([]byte, error)
	SupplierUpdateToModel(data []byte) (model.SupplierUpdate, error)
}

type SupplierConsumer interface {
	RunSupplierUpdatesConsume(ctx context.Context) error
}

type PartRepository interface {
	invsvc.PartRepository
	CreateBatch(ctx context.Context, parts []*model.Part) error
}

type SupplierRepository interface {
	SupplierByID(ctx context.Context, id string) (*model.Supplier, error)
	List(ctx context.Context, activeOnly bool) ([]model.Supplier, error)
	CreateBatch(ctx context.Context, suppliers []model.Supplier) error
}

type InventoryService interface {
	invhttp.InventoryService
	RestockFromDelivery(ctx context.Context, partID string, qty, unitCostCents int64) (*model.Part, error)
}

type OrderService interface {
	ordhttp.OrderService
	Outstanding(ctx context.Context, partID string) (bool, error)
}

type NotificationService interface {
	notifhttp.NotificationService
	Notify(ctx context.Context, typ model.NotificationType, message string, payload map[string]any) (*model.Notification, error)
}

type MonitorService interface {
	monhttp.MonitorService
	Report(ctx context.Context) (*model.ReorderingReport, error)
}

type Handler interface {
	Routes() chi.Router
}

type di struct {
	mongoClient *mongodrv.Client
	dbPool      *pgxpool.Pool
	migrator    *migrator.Migrator

	partRepository         PartRepository
	supplierRepository     SupplierRepository
	ruleRepository         rulessvc.RuleRepository
	orderRepository        ordsvc.OrderRepository
	usageRepository        usagesvc.UsageRepository
	notificationRepository notifsvc.NotificationRepository

	conv Converter

	consumerGroup           sarama.ConsumerGroup
	supplierUpdatesConsumer kafka.Consumer
	supplierConsumer        SupplierConsumer

	syncProducer          sarama.SyncProducer
	reorderEventsProducer kafka.Producer
	eventsProducer        notifsvc.EventPublisher

	inventoryService    InventoryService
	pricingService      prchttp.PricingService
	rulesService        ruleshttp.RulesService
	notificationService NotificationService
	orderService        OrderService
	usageService        usagehttp.UsageService
	monitorService      MonitorService
	analyticsService    reporthttp.AnalyticsService

	inventoryHandler    Handler
	supplierHandler     Handler
	pricingHandler      Handler
	orderHandler        Handler
	rulesHandler        Handler
	usageHandler        Handler
	reportsHandler      Handler
	notificationHandler Handler
	monitorHandler      Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoClient(ctx context.Context) *mongodrv.Client {
	if d.mongoClient == nil {
		cfg := config.C()

		client, err := mongodrv.Connect(options.Client().ApplyURI(cfg.Mongo.DSN()))
		if err != nil {
			panic(fmt.Sprintf("failed to connect to mongo: %v\n", err))
		}

		closer.AddNamed("Mongo client",
			func(ctx context.Context) error {
				return client.Disconnect(ctx)
			})

		if err := client.Ping(ctx, nil); err != nil {
			panic(fmt.Sprintf("failed to ping mongo: %v\n", err))
		}

		d.mongoClient = client
	}

	return d.mongoClient
}

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) PartRepository(ctx context.Context) PartRepository {
	if d.partRepository == nil {
		cfg := config.C()

		switch cfg.Storage.PartsBackend() {
		case envconfig.BackendMongo:
			coll := d.MongoClient(ctx).
				Database(cfg.Mongo.DatabaseName()).
				Collection(cfg.Mongo.PartsCollection())

			if err := partmongo.EnsureIndexes(ctx, coll); err != nil {
				panic(fmt.Sprintf("failed to ensure part indexes: %v\n", err))
			}

			d.partRepository = partmongo.NewPartRepository(coll)
		default:
			d.partRepository = partmem.NewPartRepository()
		}
	}

	return d.partRepository
}

func (d *di) SupplierRepository(_ context.Context) SupplierRepository {
	if d.supplierRepository == nil {
		d.supplierRepository = supmem.NewSupplierRepository()
	}

	return d.supplierRepository
}

func (d *di) RuleRepository(_ context.Context) rulessvc.RuleRepository {
	if d.ruleRepository == nil {
		d.ruleRepository = rulemem.NewRuleRepository()
	}

	return d.ruleRepository
}

func (d *di) OrderRepository(ctx context.Context) ordsvc.OrderRepository {
	if d.orderRepository == nil {
		switch config.C().Storage.OrdersBackend() {
		case envconfig.BackendPostgres:
			d.orderRepository = ordpg.NewOrderRepository(d.DBPool(ctx))
		default:
			d.orderRepository = ordmem.NewOrderRepository()
		}
	}

	return d.orderRepository
}

func (d *di) UsageRepository(_ context.Context) usagesvc.UsageRepository {
	if d.usageRepository == nil {
		d.usageRepository = usagemem.NewUsageRepository()
	}

	return d.usageRepository
}

func (d *di) NotificationRepository(_ context.Context) notifsvc.NotificationRepository {
	if d.notificationRepository == nil {
		d.notificationRepository = notifmem.NewNotificationRepository()
	}

	return d.notificationRepository
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.SupplierUpdatesConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return d.consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) SupplierUpdatesConsumer(ctx context.Context) kafka.Consumer {
	if d.supplierUpdatesConsumer == nil {
		d.supplierUpdatesConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.SupplierUpdatesTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.supplierUpdatesConsumer
}

func (d *di) SupplierConsumer(ctx context.Context) SupplierConsumer {
	if d.supplierConsumer == nil {
		d.supplierConsumer = supconsumer.NewSupplierConsumer(
			d.SupplierUpdatesConsumer(ctx),
			d.KafkaConverter(ctx),
			d.OrderService(ctx),
		)
	}

	return d.supplierConsumer
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ReorderEventsProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) ReorderEventsProducer(ctx context.Context) kafka.Producer {
	if d.reorderEventsProducer == nil {
		d.reorderEventsProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.ReorderEventsTopic(),
			logger.L(),
		)
	}

	return d.reorderEventsProducer
}

func (d *di) EventsProducer(ctx context.Context) notifsvc.EventPublisher {
	if d.eventsProducer == nil {
		d.eventsProducer = evtproducer.NewEventsProducer(
			d.ReorderEventsProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.eventsProducer
}

func (d *di) InventoryService(ctx context.Context) InventoryService {
	if d.inventoryService == nil {
		d.inventoryService = invsvc.NewInventoryService(
			d.PartRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.inventoryService
}

func (d *di) PricingService(ctx context.Context) prchttp.PricingService {
	if d.pricingService == nil {
		d.pricingService = pricingsvc.NewPricingService(
			d.PartRepository(ctx),
			d.SupplierRepository(ctx),
			nil,
		)
	}

	return d.pricingService
}

func (d *di) RulesService(ctx context.Context) ruleshttp.RulesService {
	if d.rulesService == nil {
		d.rulesService = rulessvc.NewRulesService(
			d.RuleRepository(ctx),
			d.PartRepository(ctx),
			d.SupplierRepository(ctx),
		)
	}

	return d.rulesService
}

func (d *di) NotificationService(ctx context.Context) NotificationService {
	if d.notificationService == nil {
		var publisher notifsvc.EventPublisher
		if config.C().Kafka.Enabled() {
			publisher = d.EventsProducer(ctx)
		}

		d.notificationService = notifsvc.NewNotificationService(
			d.NotificationRepository(ctx),
			publisher,
		)
	}

	return d.notificationService
}

func (d *di) OrderService(ctx context.Context) OrderService {
	if d.orderService == nil {
		d.orderService = ordsvc.NewOrderService(
			d.OrderRepository(ctx),
			d.InventoryService(ctx),
			d.SupplierRepository(ctx),
			d.PricingService(ctx),
			d.RuleRepository(ctx),
			d.NotificationService(ctx),
		)
	}

	return d.orderService
}

func (d *di) UsageService(ctx context.Context) usagehttp.UsageService {
	if d.usageService == nil {
		d.usageService = usagesvc.NewUsageService(
			d.UsageRepository(ctx),
			d.InventoryService(ctx),
		)
	}

	return d.usageService
}

func (d *di) MonitorService(ctx context.Context) MonitorService {
	if d.monitorService == nil {
		d.monitorService = monitorsvc.NewMonitorService(
			d.InventoryService(ctx),
			d.RulesService(ctx),
			d.OrderService(ctx),
			d.PricingService(ctx),
			d.NotificationService(ctx),
			config.C().Monitor.SweepInterval(),
		)
	}

	return d.monitorService
}

func (d *di) AnalyticsService(ctx context.Context) reporthttp.AnalyticsService {
	if d.analyticsService == nil {
		d.analyticsService = analyticssvc.NewAnalyticsService(
			d.UsageRepository(ctx),
			d.OrderRepository(ctx),
		)
	}

	return d.analyticsService
}

func (d *di) InventoryHandler(ctx context.Context) Handler {
	if d.inventoryHandler == nil {
		d.inventoryHandler = invhttp.NewInventoryHandler(d.InventoryService(ctx))
	}

	return d.inventoryHandler
}

func (d *di) SupplierHandler(ctx context.Context) Handler {
	if d.supplierHandler == nil {
		d.supplierHandler = suphttp.NewSupplierHandler(d.SupplierRepository(ctx))
	}

	return d.supplierHandler
}

func (d *di) PricingHandler(ctx context.Context) Handler {
	if d.pricingHandler == nil {
		d.pricingHandler = prchttp.NewPricingHandler(d.PricingService(ctx))
	}

	return d.pricingHandler
}

func (d *di) OrderHandler(ctx context.Context) Handler {
	if d.orderHandler == nil {
		d.orderHandler = ordhttp.NewOrderHandler(d.OrderService(ctx))
	}

	return d.orderHandler
}

func (d *di) RulesHandler(ctx context.Context) Handler {
	if d.rulesHandler == nil {
		d.rulesHandler = ruleshttp.NewRulesHandler(d.RulesService(ctx))
	}

	return d.rulesHandler
}

func (d *di) UsageHandler(ctx context.Context) Handler {
	if d.usageHandler == nil {
		d.usageHandler = usagehttp.NewUsageHandler(d.UsageService(ctx))
	}

	return d.usageHandler
}

func (d *di) ReportsHandler(ctx context.Context) Handler {
	if d.reportsHandler == nil {
		d.reportsHandler = reporthttp.NewReportsHandler(
			d.MonitorService(ctx),
			d.AnalyticsService(ctx),
		)
	}

	return d.reportsHandler
}

func (d *di) NotificationHandler(ctx context.Context) Handler {
	if d.notificationHandler == nil {
		d.notificationHandler = notifhttp.NewNotificationHandler(d.NotificationService(ctx))
	}

	return d.notificationHandler
}

func (d *di) MonitorHandler(ctx context.Context) Handler {
	if d.monitorHandler == nil {
		d.monitorHandler = monhttp.NewMonitorHandler(d.MonitorService(ctx))
	}

	return d.monitorHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
