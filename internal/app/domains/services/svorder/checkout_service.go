package svorder

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/app/domains/entity/etorder"
	"storefront/internal/app/domains/entity/etproduct"
	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/domains/modules/mdcatalog"
	"storefront/internal/app/domains/modules/mdorder"
	"storefront/internal/app/infra/payment"
	"storefront/internal/app/pkg/errorx"
	"storefront/internal/app/pkg/logger"
)

// Quoter prices the parcel of an order
type Quoter interface {
	Quote(ctx context.Context, req etshipping.QuoteRequest) (*etshipping.Quote, error)
}

// OrderNumberer issues customer facing order numbers
type OrderNumberer interface {
	OrderNumber() string
}

// CheckoutItem requested line
type CheckoutItem struct {
	ProductID string
	Quantity  int
	Size      string
}

// CheckoutInput cart submitted by the customer
type CheckoutInput struct {
	Items    []CheckoutItem
	Customer etorder.Customer
	ShipTo   etorder.Address
}

// CheckoutResult created order plus the secret the browser confirms the payment with
type CheckoutResult struct {
	Order        *etorder.Order
	ClientSecret string
}

// CheckoutService turns a cart into a pending order with a payment intent
type CheckoutService struct {
	catalogModule   *mdcatalog.CatalogModule
	orderModule     *mdorder.OrderModule
	reconcileModule *mdorder.ReconcileModule
	quoter          Quoter
	payments        payment.Client
	numbers         OrderNumberer
	log             logger.Logger
	now             func() time.Time
}

// NewCheckoutService creates the checkout service
func NewCheckoutService(
	catalogModule *mdcatalog.CatalogModule,
	orderModule *mdorder.OrderModule,
	reconcileModule *mdorder.ReconcileModule,
	quoter Quoter,
	payments payment.Client,
	numbers OrderNumberer,
	log logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		catalogModule:   catalogModule,
		orderModule:     orderModule,
		reconcileModule: reconcileModule,
		quoter:          quoter,
		payments:        payments,
		numbers:         numbers,
		log:             log,
		now:             time.Now,
	}
}

// Checkout places an order
// 1. validate the cart
// 2. load products, reject inactive, unknown sizes and short stock
// 3. quote shipping for the total parcel weight
// 4. persist the order as PENDING_PAYMENT
// 5. create the payment intent, keyed by order id
// 6. publish the reconcile job
func (s *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if err := validateCheckout(in); err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	weight := etorder.TotalWeight(items)
	quote, err := s.quoter.Quote(ctx, etshipping.QuoteRequest{
		DestinationPostalCode: in.ShipTo.PostalCode,
		DestinationCountry:    in.ShipTo.Country,
		WeightLbs:             &weight,
	})
	if err != nil {
		return nil, err
	}

	order, err := etorder.NewOrder(uuid.New().String(), s.numbers.OrderNumber(), in.Customer, in.ShipTo, items, quote, s.now())
	if err != nil {
		return nil, fmt.Errorf("create order entity failed: %w", err)
	}
	if err := s.orderModule.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}

	intent, err := s.payments.CreateIntent(ctx, payment.CreateIntentRequest{
		AmountCents:    order.TotalCents,
		Currency:       order.Currency,
		OrderID:        order.ID,
		ReceiptEmail:   order.Customer.Email,
		IdempotencyKey: order.ID,
	})
	if err != nil {
		if _, settleErr := s.orderModule.SettleOrder(ctx, order.ID, etorder.StatusPaymentFailed); settleErr != nil {
			s.log.Errorf(ctx, "mark order failed: order_id=%s, error=%v", order.ID, settleErr)
		}
		return nil, err
	}

	order.PaymentIntentID = intent.ID
	if err := s.orderModule.SetPaymentIntent(ctx, order.ID, intent.ID); err != nil {
		// the reconcile job still carries the intent id
		s.log.Errorf(ctx, "save payment intent failed: order_id=%s, intent_id=%s, error=%v", order.ID, intent.ID, err)
	}

	// the order stays pending until reconciled; a lost job is recovered by the admin listing
	if _, err := s.reconcileModule.PublishReconcileJob(ctx, logger.TraceID(ctx), order); err != nil {
		s.log.Warnf(ctx, "publish reconcile job failed: order_id=%s, error=%v", order.ID, err)
	}

	s.log.Infof(ctx, "order placed: order_id=%s, number=%s, total_cents=%d", order.ID, order.OrderNumber, order.TotalCents)
	return &CheckoutResult{Order: order, ClientSecret: intent.ClientSecret}, nil
}

func (s *CheckoutService) buildItems(ctx context.Context, lines []CheckoutItem) ([]etorder.Item, error) {
	ids := make([]string, 0, len(lines))
	wanted := make(map[string]int, len(lines))
	for _, l := range lines {
		if _, seen := wanted[l.ProductID]; !seen {
			ids = append(ids, l.ProductID)
		}
		wanted[l.ProductID] += l.Quantity
	}

	products, err := s.catalogModule.LoadProducts(ctx, ids)
	if err != nil {
		if errors.Is(err, errorx.ErrProductNotFound) {
			return nil, errorx.NewValidationError("items", err.Error())
		}
		return nil, err
	}

	items := make([]etorder.Item, 0, len(lines))
	for i, l := range lines {
		p := products[l.ProductID]
		if err := checkLine(p, l, wanted[l.ProductID], i); err != nil {
			return nil, err
		}
		items = append(items, etorder.Item{
			ProductID:      p.ID,
			Slug:           p.Slug,
			Name:           p.Name,
			Size:           l.Size,
			Quantity:       l.Quantity,
			UnitPriceCents: p.PriceCents,
			WeightLbs:      p.ShippingWeight(),
		})
	}
	return items, nil
}

func checkLine(p *etproduct.Product, l CheckoutItem, totalQty, i int) error {
	if err := p.CheckAvailable(totalQty); err != nil {
		return fmt.Errorf("%s: %w", p.Slug, err)
	}
	if !p.HasSize(l.Size) {
		return errorx.NewValidationError(fmt.Sprintf("items[%d].size", i), fmt.Sprintf("%q is not offered for %s", l.Size, p.Slug))
	}
	if !strings.EqualFold(p.Currency, etshipping.Currency) {
		return errorx.NewValidationError(fmt.Sprintf("items[%d].product_id", i), "is not sold in "+etshipping.Currency)
	}
	return nil
}

func validateCheckout(in CheckoutInput) error {
	if len(in.Items) == 0 {
		return errorx.NewValidationError("items", "must not be empty")
	}
	for i, l := range in.Items {
		if strings.TrimSpace(l.ProductID) == "" {
			return errorx.NewValidationError(fmt.Sprintf("items[%d].product_id", i), "is required")
		}
		if l.Quantity <= 0 {
			return errorx.NewValidationError(fmt.Sprintf("items[%d].quantity", i), "must be greater than 0")
		}
	}
	if strings.TrimSpace(in.Customer.Name) == "" {
		return errorx.NewValidationError("customer.name", "is required")
	}
	if _, err := mail.ParseAddress(in.Customer.Email); err != nil {
		return errorx.NewValidationError("customer.email", "must be a valid email address")
	}
	switch {
	case strings.TrimSpace(in.ShipTo.Street1) == "":
		return errorx.NewValidationError("ship_to.street1", "is required")
	case strings.TrimSpace(in.ShipTo.City) == "":
		return errorx.NewValidationError("ship_to.city", "is required")
	case strings.TrimSpace(in.ShipTo.State) == "":
		return errorx.NewValidationError("ship_to.state", "is required")
	}
	return nil
}
