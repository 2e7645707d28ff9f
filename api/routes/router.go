package routes

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/warehublabs/warehub-backend/api/controllers"
	"github.com/warehublabs/warehub-backend/api/middleware"
	"github.com/warehublabs/warehub-backend/internal/inventories"
	"github.com/warehublabs/warehub-backend/internal/transfers"
	"github.com/warehublabs/warehub-backend/pkg/config"
	"github.com/warehublabs/warehub-backend/pkg/logger"
	"github.com/warehublabs/warehub-backend/pkg/metrics"
	"github.com/warehublabs/warehub-backend/pkg/models"
)

// Params collects everything the router mounts. Every resource service must
// be set; NewRouter fails fast on a missing one instead of serving a surface
// with holes.
type Params struct {
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.HTTPMetrics

	MetricsHandler http.Handler

	ReadyChecks []func() error

	Warehouses controllers.ResourceService[models.Warehouse]
	Locations  controllers.ResourceService[models.Location]
	Clients    controllers.ResourceService[models.Client]
	Suppliers  controllers.ResourceService[models.Supplier]
	Items      controllers.ResourceService[models.Item]
	ItemLines  controllers.ResourceService[models.ItemLine]
	ItemGroups controllers.ResourceService[models.ItemGroup]
	ItemTypes  controllers.ResourceService[models.ItemType]
	Orders     controllers.ResourceService[models.Order]
	Shipments  controllers.ResourceService[models.Shipment]
	Transfers  controllers.ResourceService[models.Transfer]

	Inventories *inventories.Service
	Commits     *transfers.Service
}

func (p Params) validate() error {
	if p.Config == nil {
		return fmt.Errorf("config required")
	}
	if p.Logger == nil {
		return fmt.Errorf("logger required")
	}
	missing := ""
	switch {
	case p.Warehouses == nil:
		missing = "warehouses"
	case p.Locations == nil:
		missing = "locations"
	case p.Clients == nil:
		missing = "clients"
	case p.Suppliers == nil:
		missing = "suppliers"
	case p.Items == nil:
		missing = "items"
	case p.ItemLines == nil:
		missing = "item lines"
	case p.ItemGroups == nil:
		missing = "item groups"
	case p.ItemTypes == nil:
		missing = "item types"
	case p.Orders == nil:
		missing = "orders"
	case p.Shipments == nil:
		missing = "shipments"
	case p.Transfers == nil:
		missing = "transfers"
	case p.Inventories == nil:
		missing = "inventories"
	case p.Commits == nil:
		missing = "transfer commits"
	}
	if missing != "" {
		return fmt.Errorf("%s service required", missing)
	}
	return nil
}

// NewRouter wires the full HTTP surface: open health and metrics endpoints,
// then the keyed /api/v1 resource tree.
func NewRouter(p Params) (http.Handler, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	logg := p.Logger

	r := chi.NewRouter()
	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg))
	if p.Metrics != nil {
		r.Use(middleware.Metrics(p.Metrics))
	}

	r.Get("/health/live", controllers.HealthLive())
	r.Get("/health/ready", controllers.HealthReady(p.ReadyChecks...))
	if p.MetricsHandler != nil {
		r.Handle("/metrics", p.MetricsHandler)
	} else {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.APIKey(p.Config.Auth, logg))

		r.Route("/warehouses", func(r chi.Router) {
			mountArchivable(r, p.Warehouses, logg)
			r.Get("/{id}/locations", controllers.WarehouseLocations(p.Warehouses, p.Locations, logg))
		})
		r.Route("/locations", func(r chi.Router) {
			mountArchivable(r, p.Locations, logg)
		})
		r.Route("/clients", func(r chi.Router) {
			mountArchivable(r, p.Clients, logg)
		})
		r.Route("/suppliers", func(r chi.Router) {
			mountArchivable(r, p.Suppliers, logg)
		})
		r.Route("/items", func(r chi.Router) {
			mountArchivable(r, p.Items, logg)
			r.Get("/{id}/inventories", controllers.ItemInventories(p.Items, p.Inventories, logg))
		})
		r.Route("/item_lines", func(r chi.Router) {
			mountReference(r, p.ItemLines, logg)
		})
		r.Route("/item_groups", func(r chi.Router) {
			mountReference(r, p.ItemGroups, logg)
		})
		r.Route("/item_types", func(r chi.Router) {
			mountReference(r, p.ItemTypes, logg)
		})
		r.Route("/inventories", func(r chi.Router) {
			mountArchivable[models.Inventory](r, p.Inventories, logg)
		})
		r.Route("/orders", func(r chi.Router) {
			mountArchivable(r, p.Orders, logg)
		})
		r.Route("/shipments", func(r chi.Router) {
			mountReference(r, p.Shipments, logg)
		})
		r.Route("/transfers", func(r chi.Router) {
			mountArchivable(r, p.Transfers, logg)
			r.Put("/{id}/commit", controllers.TransferCommit(p.Commits, logg))
		})
	})

	return r, nil
}

// mountArchivable registers the CRUD surface for soft-deleting resources.
func mountArchivable[T any](r chi.Router, svc controllers.ResourceService[T], logg *logger.Logger) {
	r.Get("/", controllers.ResourceList(svc, logg))
	r.Post("/", controllers.ResourceCreate(svc, logg))
	r.Get("/{id}", controllers.ResourceGet(svc, logg))
	r.Put("/{id}", controllers.ResourceReplace(svc, logg))
	r.Patch("/{id}", controllers.ResourcePatch(svc, logg))
	r.Put("/{id}/archive", controllers.ResourceArchive(svc, logg))
	r.Put("/{id}/unarchive", controllers.ResourceUnarchive(svc, logg))
}

// mountReference registers the CRUD surface for hard-deleting resources.
func mountReference[T any](r chi.Router, svc controllers.ResourceService[T], logg *logger.Logger) {
	r.Get("/", controllers.ResourceList(svc, logg))
	r.Post("/", controllers.ResourceCreate(svc, logg))
	r.Get("/{id}", controllers.ResourceGet(svc, logg))
	r.Put("/{id}", controllers.ResourceReplace(svc, logg))
	r.Patch("/{id}", controllers.ResourcePatch(svc, logg))
	r.Delete("/{id}", controllers.ResourceDelete(svc, logg))
}
