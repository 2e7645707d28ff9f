package controllers

import (
	"net/http"

	"github.com/warehublabs/warehub-backend/api/responses"
	"github.com/warehublabs/warehub-backend/api/validators"
	"github.com/warehublabs/warehub-backend/internal/inventories"
	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/logger"
	"github.com/warehublabs/warehub-backend/pkg/models"
	"github.com/warehublabs/warehub-backend/pkg/pagination"
)

// ItemInventories lists every inventory record referencing an item. The item
// must exist; archived items still expose their stock.
func ItemInventories(items ResourceService[models.Item], ledger *inventories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if items == nil || ledger == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "resource service unavailable"))
			return
		}

		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := items.Get(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records := ledger.ForItem(r.Context(), id)
		responses.WritePage(w, pagination.Paginate(records, params))
	}
}

// WarehouseLocations lists every location inside a warehouse.
func WarehouseLocations(warehouses ResourceService[models.Warehouse], locations ResourceService[models.Location], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if warehouses == nil || locations == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "resource service unavailable"))
			return
		}

		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := warehouses.Get(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records := locations.Filter(r.Context(), func(loc models.Location) bool {
			return loc.WarehouseID == id
		})
		responses.WritePage(w, pagination.Paginate(records, params))
	}
}
