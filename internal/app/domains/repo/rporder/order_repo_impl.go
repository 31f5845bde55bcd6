package rporder

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"storefront/internal/app/domains/entity/etorder"
	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/pkg/errorx"
	"storefront/internal/common/entity"
)

// OrderRepositoryImpl MySQL implementation
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository creates the repository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create stores the domain order as a GORM row
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *etorder.Order) error {
	po, err := toGormModel(order)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(po).Error
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	var po entity.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&po).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorx.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainModel(&po)
}

func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, orderID string, from, to etorder.Status) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, string(from)).
		Updates(map[string]interface{}{
			"status":     string(to),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *OrderRepositoryImpl) SetPaymentIntent(ctx context.Context, orderID, intentID string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_intent_id": intentID,
			"updated_at":        time.Now(),
		}).Error
}

// List pages through orders, newest first. An empty status lists all.
func (r *OrderRepositoryImpl) List(ctx context.Context, status etorder.Status, page, limit int) ([]*etorder.Order, int64, error) {
	var total int64
	var pos []entity.Order

	query := r.db.WithContext(ctx).Model(&entity.Order{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		order, err := toDomainModel(&pos[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, total, nil
}

func toGormModel(order *etorder.Order) (*entity.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}
	customer, err := json.Marshal(order.Customer)
	if err != nil {
		return nil, err
	}
	shipTo, err := json.Marshal(order.ShipTo)
	if err != nil {
		return nil, err
	}

	po := &entity.Order{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		Email:           order.Customer.Email,
		Status:          string(order.Status),
		SubtotalCents:   order.SubtotalCents,
		ShippingCents:   order.ShippingCents,
		TotalCents:      order.TotalCents,
		Currency:        order.Currency,
		PaymentIntentID: order.PaymentIntentID,
		Items:           items,
		Customer:        customer,
		ShipTo:          shipTo,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}

	if order.ShippingQuote != nil {
		quote, err := json.Marshal(order.ShippingQuote)
		if err != nil {
			return nil, err
		}
		po.ShippingQuote = quote
	}

	return po, nil
}

func toDomainModel(po *entity.Order) (*etorder.Order, error) {
	order := &etorder.Order{
		ID:              po.ID,
		OrderNumber:     po.OrderNumber,
		SubtotalCents:   po.SubtotalCents,
		ShippingCents:   po.ShippingCents,
		TotalCents:      po.TotalCents,
		Currency:        po.Currency,
		PaymentIntentID: po.PaymentIntentID,
		Status:          etorder.Status(po.Status),
		CreatedAt:       po.CreatedAt,
		UpdatedAt:       po.UpdatedAt,
	}

	if err := json.Unmarshal(po.Items, &order.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(po.Customer, &order.Customer); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(po.ShipTo, &order.ShipTo); err != nil {
		return nil, err
	}
	if len(po.ShippingQuote) > 0 {
		var quote etshipping.Quote
		if err := json.Unmarshal(po.ShippingQuote, &quote); err != nil {
			return nil, err
		}
		order.ShippingQuote = &quote
	}

	return order, nil
}
