package svorder

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront/internal/app/domains/entity/etorder"
	"storefront/internal/app/domains/entity/etproduct"
	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/domains/repo/rpproduct"
	"storefront/internal/app/infra/payment"
	"storefront/internal/app/infra/persistence/redis"
	"storefront/internal/app/pkg/errorx"
)

type fakeProducts struct {
	items map[string]*etproduct.Product
}

func (f *fakeProducts) Create(_ context.Context, p *etproduct.Product) error {
	f.items[p.ID] = p
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*etproduct.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, errorx.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProducts) GetBySlug(_ context.Context, slug string) (*etproduct.Product, error) {
	for _, p := range f.items {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, errorx.ErrProductNotFound
}

func (f *fakeProducts) GetByIDs(_ context.Context, ids []string) ([]*etproduct.Product, error) {
	var out []*etproduct.Product
	for _, id := range ids {
		if p, ok := f.items[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProducts) Update(_ context.Context, p *etproduct.Product) error {
	f.items[p.ID] = p
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeProducts) List(_ context.Context, _ rpproduct.ListFilter) ([]*etproduct.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProducts) DecrementStock(_ context.Context, id string, qty int) error {
	p, ok := f.items[id]
	if !ok {
		return errorx.ErrProductNotFound
	}
	if p.Stock < qty {
		return errorx.ErrOutOfStock
	}
	p.Stock -= qty
	return nil
}

type fakeOrders struct {
	mu    sync.Mutex
	items map[string]*etorder.Order
	gets  int
	// onGet runs after the n-th GetByID took its copy
	onGet func(n int)
	// setIntentErr fails SetPaymentIntent
	setIntentErr error
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{items: map[string]*etorder.Order{}}
}

func (f *fakeOrders) Create(_ context.Context, o *etorder.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *o
	f.items[o.ID] = &cp
	return nil
}

func (f *fakeOrders) GetByID(_ context.Context, id string) (*etorder.Order, error) {
	f.mu.Lock()
	f.gets++
	n := f.gets
	o, ok := f.items[id]
	var cp etorder.Order
	if ok {
		cp = *o
	}
	onGet := f.onGet
	f.mu.Unlock()

	if onGet != nil {
		onGet(n)
	}
	if !ok {
		return nil, errorx.ErrOrderNotFound
	}
	return &cp, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id string, from, to etorder.Status) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.items[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

func (f *fakeOrders) SetPaymentIntent(_ context.Context, id, intentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setIntentErr != nil {
		return f.setIntentErr
	}
	o, ok := f.items[id]
	if !ok {
		return errorx.ErrOrderNotFound
	}
	o.PaymentIntentID = intentID
	return nil
}

func (f *fakeOrders) List(_ context.Context, status etorder.Status, _, _ int) ([]*etorder.Order, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*etorder.Order
	for _, o := range f.items {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

type fakeQuoter struct {
	quote etshipping.Quote
	err   error
	last  etshipping.QuoteRequest
}

func (f *fakeQuoter) Quote(_ context.Context, req etshipping.QuoteRequest) (*etshipping.Quote, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	q := f.quote
	return &q, nil
}

type fakePayments struct {
	createErr error
	created   []payment.CreateIntentRequest
	intents   map[string]payment.Intent
	getErr    error
}

func (f *fakePayments) CreateIntent(_ context.Context, req payment.CreateIntentRequest) (payment.Intent, error) {
	if f.createErr != nil {
		return payment.Intent{}, f.createErr
	}
	f.created = append(f.created, req)
	return payment.Intent{ID: "pi_1", Amount: req.AmountCents, Currency: "usd", Status: payment.StatusRequiresPaymentMethod, ClientSecret: "pi_1_secret"}, nil
}

func (f *fakePayments) GetIntent(_ context.Context, id string) (payment.Intent, error) {
	if f.getErr != nil {
		return payment.Intent{}, f.getErr
	}
	intent, ok := f.intents[id]
	if !ok {
		return payment.Intent{}, errorx.NewUpstreamError("payment", errors.New("no such intent"))
	}
	return intent, nil
}

type publishedJob struct {
	queue string
	data  interface{}
	delay time.Duration
}

type fakePublisher struct {
	jobs []publishedJob
	err  error
}

func (f *fakePublisher) Publish(queue string, data interface{}, delay time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.jobs = append(f.jobs, publishedJob{queue: queue, data: data, delay: delay})
	return "job-1", nil
}

// fakeChannel in-memory pub/sub: a message reaches only the subscribers
// listening when it is published, like redis.
type fakeChannel struct {
	mu        sync.Mutex
	published map[string]string
	listeners map[string][]chan string
	listens   int
	listenErr error
	waited    time.Duration
	onListen  func()
}

func (f *fakeChannel) Publish(_ context.Context, channel, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.published == nil {
		f.published = map[string]string{}
	}
	f.published[channel] = message
	for _, ch := range f.listeners[channel] {
		select {
		case ch <- message:
		default:
		}
	}
	return nil
}

func (f *fakeChannel) Listen(_ context.Context, channel string) (redis.StatusSubscription, error) {
	f.mu.Lock()
	f.listens++
	if f.listenErr != nil {
		f.mu.Unlock()
		return nil, f.listenErr
	}
	if f.listeners == nil {
		f.listeners = map[string][]chan string{}
	}
	ch := make(chan string, 1)
	f.listeners[channel] = append(f.listeners[channel], ch)
	onListen := f.onListen
	f.mu.Unlock()

	if onListen != nil {
		onListen()
	}
	return &fakeSubscription{owner: f, channel: channel, ch: ch}, nil
}

func (f *fakeChannel) listenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listens
}

func (f *fakeChannel) waitedFor() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.waited
}

type fakeSubscription struct {
	owner   *fakeChannel
	channel string
	ch      chan string
}

func (s *fakeSubscription) Next(ctx context.Context, timeout time.Duration) (string, error) {
	s.owner.mu.Lock()
	s.owner.waited = timeout
	s.owner.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case msg := <-s.ch:
		return msg, nil
	case <-timer.C:
		return "", context.DeadlineExceeded
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *fakeSubscription) Close() error {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	subs := s.owner.listeners[s.channel]
	for i, ch := range subs {
		if ch == s.ch {
			s.owner.listeners[s.channel] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	return nil
}

type fixedNumbers string

func (n fixedNumbers) OrderNumber() string { return string(n) }
