package mdcontent

import (
	"context"
	"time"

	"storefront/internal/app/domains/entity/etcontent"
	"storefront/internal/app/domains/repo/rpcontent"
)

// ContentModule site document data access
type ContentModule struct {
	contentRepo rpcontent.ContentRepository
	now         func() time.Time
}

// NewContentModule creates the content module
func NewContentModule(contentRepo rpcontent.ContentRepository) *ContentModule {
	return &ContentModule{contentRepo: contentRepo, now: time.Now}
}

func (m *ContentModule) Create(ctx context.Context, c *etcontent.Content) error {
	return m.contentRepo.Create(ctx, c)
}

func (m *ContentModule) Update(ctx context.Context, c *etcontent.Content) error {
	return m.contentRepo.Update(ctx, c)
}

func (m *ContentModule) Delete(ctx context.Context, id string) error {
	return m.contentRepo.Delete(ctx, id)
}

func (m *ContentModule) Get(ctx context.Context, kind etcontent.Kind, slug string) (*etcontent.Content, error) {
	return m.contentRepo.Get(ctx, kind, slug)
}

func (m *ContentModule) GetByID(ctx context.Context, id string) (*etcontent.Content, error) {
	return m.contentRepo.GetByID(ctx, id)
}

func (m *ContentModule) List(ctx context.Context, filter rpcontent.ListFilter) ([]*etcontent.Content, int64, error) {
	return m.contentRepo.List(ctx, filter)
}

// Latest newest published documents of kind
func (m *ContentModule) Latest(ctx context.Context, kind etcontent.Kind, limit int) ([]*etcontent.Content, error) {
	items, _, err := m.contentRepo.List(ctx, rpcontent.ListFilter{
		Kind:          kind,
		PublishedOnly: true,
		Page:          1,
		Limit:         limit,
	})
	return items, err
}

// Upcoming published schedule items starting from now, soonest first
func (m *ContentModule) Upcoming(ctx context.Context, limit int) ([]*etcontent.Content, error) {
	now := m.now()
	items, _, err := m.contentRepo.List(ctx, rpcontent.ListFilter{
		Kind:          etcontent.KindSchedule,
		PublishedOnly: true,
		StartsAfter:   &now,
		Page:          1,
		Limit:         limit,
	})
	return items, err
}
