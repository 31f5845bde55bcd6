package jobs

import (
	"context"
	"encoding/json"

	"storefront/internal/app/pkg/errorutil"
	"storefront/internal/common/model"
)

// Reconciler settles an order against its payment
type Reconciler interface {
	Reconcile(ctx context.Context, data model.OrderReconcileData) error
}

// NewReconcileHandler handles model.ActionOrderReconcile
func NewReconcileHandler(r Reconciler) Handler {
	return func(ctx context.Context, job *model.Job) error {
		var data model.OrderReconcileData
		if err := json.Unmarshal(job.Data, &data); err != nil {
			return errorutil.NonRetriable("decode reconcile data failed", err)
		}
		if data.OrderID == "" {
			data.OrderID = job.ID
		}
		if data.OrderID == "" {
			return errorutil.NonRetriable("reconcile job without order id", nil)
		}
		return r.Reconcile(ctx, data)
	}
}

// Handlers action type routing table of the order worker
func Handlers(r Reconciler) map[string]Handler {
	return map[string]Handler{
		model.ActionOrderReconcile: NewReconcileHandler(r),
	}
}
