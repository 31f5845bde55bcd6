package rpcontent

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"storefront/internal/app/domains/entity/etcontent"
	"storefront/internal/app/pkg/errorx"
	"storefront/internal/common/entity"
)

// ContentRepositoryImpl MySQL implementation
type ContentRepositoryImpl struct {
	db *gorm.DB
}

// NewContentRepository creates the repository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &ContentRepositoryImpl{db: db}
}

func (r *ContentRepositoryImpl) Create(ctx context.Context, c *etcontent.Content) error {
	po, err := toGormModel(c)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Create(po).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorx.ErrDuplicateSlug
	}
	return err
}

func (r *ContentRepositoryImpl) Get(ctx context.Context, kind etcontent.Kind, slug string) (*etcontent.Content, error) {
	var po entity.Content
	err := r.db.WithContext(ctx).Where("kind = ? AND slug = ?", string(kind), slug).First(&po).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorx.ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainModel(&po)
}

func (r *ContentRepositoryImpl) GetByID(ctx context.Context, id string) (*etcontent.Content, error) {
	var po entity.Content
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&po).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorx.ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainModel(&po)
}

func (r *ContentRepositoryImpl) Update(ctx context.Context, c *etcontent.Content) error {
	po, err := toGormModel(c)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Content{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"slug":       po.Slug,
			"title":      po.Title,
			"published":  po.Published,
			"starts_at":  po.StartsAt,
			"body":       po.Body,
			"updated_at": po.UpdatedAt,
		})
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return errorx.ErrDuplicateSlug
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errorx.ErrContentNotFound
	}
	return nil
}

func (r *ContentRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Content{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errorx.ErrContentNotFound
	}
	return nil
}

func (r *ContentRepositoryImpl) List(ctx context.Context, filter ListFilter) ([]*etcontent.Content, int64, error) {
	var total int64
	var pos []entity.Content

	query := r.db.WithContext(ctx).Model(&entity.Content{}).Where("kind = ?", string(filter.Kind))
	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}
	order := "created_at DESC"
	if filter.StartsAfter != nil {
		query = query.Where("starts_at >= ?", *filter.StartsAfter)
		order = "starts_at ASC"
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Offset(offset).Limit(filter.Limit).Order(order).Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*etcontent.Content, 0, len(pos))
	for i := range pos {
		c, err := toDomainModel(&pos[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	return items, total, nil
}

func toGormModel(c *etcontent.Content) (*entity.Content, error) {
	body, err := json.Marshal(c.Attributes)
	if err != nil {
		return nil, err
	}
	return &entity.Content{
		ID:        c.ID,
		Kind:      string(c.Kind),
		Slug:      c.Slug,
		Title:     c.Title,
		Published: c.Published,
		StartsAt:  c.StartsAt,
		Body:      body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

func toDomainModel(po *entity.Content) (*etcontent.Content, error) {
	var attrs map[string]interface{}
	if len(po.Body) > 0 {
		if err := json.Unmarshal(po.Body, &attrs); err != nil {
			return nil, err
		}
	}
	return &etcontent.Content{
		ID:         po.ID,
		Kind:       etcontent.Kind(po.Kind),
		Slug:       po.Slug,
		Title:      po.Title,
		Published:  po.Published,
		StartsAt:   po.StartsAt,
		Attributes: attrs,
		CreatedAt:  po.CreatedAt,
		UpdatedAt:  po.UpdatedAt,
	}, nil
}
