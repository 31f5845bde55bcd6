package svcontent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"storefront/internal/app/domains/entity/etcontent"
	"storefront/internal/app/domains/modules/mdcontent"
	"storefront/internal/app/domains/repo/rpcontent"
	"storefront/internal/app/pkg/errorx"
)

const (
	homeNewsLimit     = 5
	homeRosterLimit   = 10
	homeScheduleLimit = 5
)

// Home landing page sections
type Home struct {
	News     []*etcontent.Content
	Roster   []*etcontent.Content
	Schedule []*etcontent.Content
}

// ContentService news, roster and schedule use cases
type ContentService struct {
	contentModule *mdcontent.ContentModule
	now           func() time.Time
}

// NewContentService creates the content service
func NewContentService(contentModule *mdcontent.ContentModule) *ContentService {
	return &ContentService{
		contentModule: contentModule,
		now:           time.Now,
	}
}

func (s *ContentService) Create(ctx context.Context, kind etcontent.Kind, d etcontent.Draft) (*etcontent.Content, error) {
	c, err := etcontent.NewContent(uuid.New().String(), kind, d, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.contentModule.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("save %s failed: %w", kind, err)
	}
	return c, nil
}

func (s *ContentService) Update(ctx context.Context, id string, d etcontent.Draft) (*etcontent.Content, error) {
	c, err := s.contentModule.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Apply(d, s.now()); err != nil {
		return nil, err
	}
	if err := s.contentModule.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update %s failed: %w", c.Kind, err)
	}
	return c, nil
}

func (s *ContentService) Delete(ctx context.Context, id string) error {
	return s.contentModule.Delete(ctx, id)
}

// GetPublished public document page; drafts are hidden
func (s *ContentService) GetPublished(ctx context.Context, kind etcontent.Kind, slug string) (*etcontent.Content, error) {
	c, err := s.contentModule.Get(ctx, kind, slug)
	if err != nil {
		return nil, err
	}
	if !c.Published {
		return nil, errorx.ErrContentNotFound
	}
	return c, nil
}

// List public listing of kind. upcoming restricts schedule items to those not started yet.
func (s *ContentService) List(ctx context.Context, kind etcontent.Kind, publishedOnly, upcoming bool, page, limit int) ([]*etcontent.Content, int64, error) {
	filter := rpcontent.ListFilter{
		Kind:          kind,
		PublishedOnly: publishedOnly,
		Page:          page,
		Limit:         limit,
	}
	if upcoming && kind == etcontent.KindSchedule {
		now := s.now()
		filter.StartsAfter = &now
	}
	return s.contentModule.List(ctx, filter)
}

// Home loads the landing page sections concurrently
func (s *ContentService) Home(ctx context.Context) (*Home, error) {
	var home Home
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.contentModule.Latest(gctx, etcontent.KindNews, homeNewsLimit)
		if err != nil {
			return fmt.Errorf("load news failed: %w", err)
		}
		home.News = items
		return nil
	})
	g.Go(func() error {
		items, err := s.contentModule.Latest(gctx, etcontent.KindRoster, homeRosterLimit)
		if err != nil {
			return fmt.Errorf("load roster failed: %w", err)
		}
		home.Roster = items
		return nil
	})
	g.Go(func() error {
		items, err := s.contentModule.Upcoming(gctx, homeScheduleLimit)
		if err != nil {
			return fmt.Errorf("load schedule failed: %w", err)
		}
		home.Schedule = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &home, nil
}
