package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/warehublabs/warehub-backend/api/routes"
	"github.com/warehublabs/warehub-backend/internal/inventories"
	"github.com/warehublabs/warehub-backend/internal/resources"
	"github.com/warehublabs/warehub-backend/internal/storage"
	"github.com/warehublabs/warehub-backend/internal/transfers"
	"github.com/warehublabs/warehub-backend/pkg/config"
	"github.com/warehublabs/warehub-backend/pkg/enums"
	"github.com/warehublabs/warehub-backend/pkg/instance"
	"github.com/warehublabs/warehub-backend/pkg/logger"
	"github.com/warehublabs/warehub-backend/pkg/metrics"
	"github.com/warehublabs/warehub-backend/pkg/models"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "warehub-api-" + instance.GetID(),
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	handler, err := buildServer(cfg, logg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logg.Info(logg.WithField(context.Background(), "port", cfg.App.Port), "server starting")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server: %v", err)
	}
}

func buildServer(cfg *config.Config, logg *logger.Logger) (http.Handler, error) {
	dataDir := cfg.Storage.DataDir

	warehouseStore, err := storage.Open[models.Warehouse, *models.Warehouse]("warehouse", snapshotFor(dataDir, "warehouses"))
	if err != nil {
		return nil, err
	}
	locationStore, err := storage.Open[models.Location, *models.Location]("location", snapshotFor(dataDir, "locations"))
	if err != nil {
		return nil, err
	}
	clientStore, err := storage.Open[models.Client, *models.Client]("client", snapshotFor(dataDir, "clients"))
	if err != nil {
		return nil, err
	}
	supplierStore, err := storage.Open[models.Supplier, *models.Supplier]("supplier", snapshotFor(dataDir, "suppliers"))
	if err != nil {
		return nil, err
	}
	itemStore, err := storage.Open[models.Item, *models.Item]("item", snapshotFor(dataDir, "items"))
	if err != nil {
		return nil, err
	}
	itemLineStore, err := storage.Open[models.ItemLine, *models.ItemLine]("item line", snapshotFor(dataDir, "item_lines"))
	if err != nil {
		return nil, err
	}
	itemGroupStore, err := storage.Open[models.ItemGroup, *models.ItemGroup]("item group", snapshotFor(dataDir, "item_groups"))
	if err != nil {
		return nil, err
	}
	itemTypeStore, err := storage.Open[models.ItemType, *models.ItemType]("item type", snapshotFor(dataDir, "item_types"))
	if err != nil {
		return nil, err
	}
	inventoryStore, err := storage.Open[models.Inventory, *models.Inventory]("inventory", snapshotFor(dataDir, "inventories"))
	if err != nil {
		return nil, err
	}
	orderStore, err := storage.Open[models.Order, *models.Order]("order", snapshotFor(dataDir, "orders"))
	if err != nil {
		return nil, err
	}
	shipmentStore, err := storage.Open[models.Shipment, *models.Shipment]("shipment", snapshotFor(dataDir, "shipments"))
	if err != nil {
		return nil, err
	}
	transferStore, err := storage.Open[models.Transfer, *models.Transfer]("transfer", snapshotFor(dataDir, "transfers"))
	if err != nil {
		return nil, err
	}

	warehouseSvc, err := resources.NewService(warehouseStore, logg)
	if err != nil {
		return nil, err
	}
	locationSvc, err := resources.NewService(locationStore, logg)
	if err != nil {
		return nil, err
	}
	clientSvc, err := resources.NewService(clientStore, logg)
	if err != nil {
		return nil, err
	}
	supplierSvc, err := resources.NewService(supplierStore, logg)
	if err != nil {
		return nil, err
	}
	itemSvc, err := resources.NewService(itemStore, logg)
	if err != nil {
		return nil, err
	}
	itemLineSvc, err := resources.NewService(itemLineStore, logg)
	if err != nil {
		return nil, err
	}
	itemGroupSvc, err := resources.NewService(itemGroupStore, logg)
	if err != nil {
		return nil, err
	}
	itemTypeSvc, err := resources.NewService(itemTypeStore, logg)
	if err != nil {
		return nil, err
	}
	orderSvc, err := resources.NewService(
		orderStore,
		logg,
		resources.WithOnCreate[models.Order, *models.Order](func(o *models.Order) {
			if o.OrderStatus == "" {
				o.OrderStatus = enums.OrderStatusPending
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	shipmentSvc, err := resources.NewService(
		shipmentStore,
		logg,
		resources.WithOnCreate[models.Shipment, *models.Shipment](func(s *models.Shipment) {
			if s.ShipmentStatus == "" {
				s.ShipmentStatus = enums.ShipmentStatusPending
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	ledger, err := inventories.NewService(inventoryStore, logg)
	if err != nil {
		return nil, err
	}
	transferSvc, err := transfers.NewResource(transferStore, logg)
	if err != nil {
		return nil, err
	}
	commitSvc, err := transfers.NewService(transferStore, ledger, logg)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	return routes.NewRouter(routes.Params{
		Config:         cfg,
		Logger:         logg,
		Metrics:        httpMetrics,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		ReadyChecks:    []func() error{dataDirCheck(dataDir)},

		Warehouses: warehouseSvc,
		Locations:  locationSvc,
		Clients:    clientSvc,
		Suppliers:  supplierSvc,
		Items:      itemSvc,
		ItemLines:  itemLineSvc,
		ItemGroups: itemGroupSvc,
		ItemTypes:  itemTypeSvc,
		Orders:     orderSvc,
		Shipments:  shipmentSvc,
		Transfers:  transferSvc,

		Inventories: ledger,
		Commits:     commitSvc,
	})
}

func snapshotFor(dataDir, resource string) *storage.FileSnapshot {
	return storage.NewFileSnapshot(filepath.Join(dataDir, resource+".json"))
}

// dataDirCheck probes that the snapshot directory exists and is writable, so
// readiness flips before the first write fails instead of after.
func dataDirCheck(dataDir string) func() error {
	return func() error {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return fmt.Errorf("data dir: %w", err)
		}
		probe, err := os.CreateTemp(dataDir, ".ready-*")
		if err != nil {
			return fmt.Errorf("data dir not writable: %w", err)
		}
		probe.Close()
		return os.Remove(probe.Name())
	}
}
