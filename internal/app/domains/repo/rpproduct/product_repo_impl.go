package rpproduct

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"storefront/internal/app/domains/entity/etproduct"
	"storefront/internal/app/pkg/errorx"
	"storefront/internal/common/entity"
)

// ProductRepositoryImpl MySQL implementation
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// NewProductRepository creates the repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// productBody descriptive fields stored as JSON
type productBody struct {
	Description string   `json:"description"`
	WeightLbs   float64  `json:"weight_lbs"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, p *etproduct.Product) error {
	po, err := toGormModel(p)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Create(po).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorx.ErrDuplicateSlug
	}
	return err
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id string) (*etproduct.Product, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ProductRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*etproduct.Product, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *ProductRepositoryImpl) first(ctx context.Context, query string, arg interface{}) (*etproduct.Product, error) {
	var po entity.Product
	err := r.db.WithContext(ctx).Where(query, arg).First(&po).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorx.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainModel(&po)
}

func (r *ProductRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]*etproduct.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var pos []entity.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&pos).Error; err != nil {
		return nil, err
	}
	return toDomainModels(pos)
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, p *etproduct.Product) error {
	po, err := toGormModel(p)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"slug":        po.Slug,
			"name":        po.Name,
			"price_cents": po.PriceCents,
			"currency":    po.Currency,
			"stock":       po.Stock,
			"active":      po.Active,
			"body":        po.Body,
			"updated_at":  po.UpdatedAt,
		})
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return errorx.ErrDuplicateSlug
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errorx.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errorx.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter ListFilter) ([]*etproduct.Product, int64, error) {
	var total int64
	var pos []entity.Product

	query := r.db.WithContext(ctx).Model(&entity.Product{})
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Offset(offset).Limit(filter.Limit).Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	products, err := toDomainModels(pos)
	return products, total, err
}

func (r *ProductRepositoryImpl) DecrementStock(ctx context.Context, id string, qty int) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errorx.ErrOutOfStock
	}
	return nil
}

func toGormModel(p *etproduct.Product) (*entity.Product, error) {
	body, err := json.Marshal(productBody{
		Description: p.Description,
		WeightLbs:   p.WeightLbs,
		Images:      p.Images,
		Sizes:       p.Sizes,
	})
	if err != nil {
		return nil, err
	}
	return &entity.Product{
		ID:         p.ID,
		Slug:       p.Slug,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Currency:   p.Currency,
		Stock:      p.Stock,
		Active:     p.Active,
		Body:       body,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}, nil
}

func toDomainModel(po *entity.Product) (*etproduct.Product, error) {
	var body productBody
	if len(po.Body) > 0 {
		if err := json.Unmarshal(po.Body, &body); err != nil {
			return nil, err
		}
	}
	return &etproduct.Product{
		ID:          po.ID,
		Slug:        po.Slug,
		Name:        po.Name,
		Description: body.Description,
		PriceCents:  po.PriceCents,
		Currency:    po.Currency,
		WeightLbs:   body.WeightLbs,
		Images:      body.Images,
		Sizes:       body.Sizes,
		Stock:       po.Stock,
		Active:      po.Active,
		CreatedAt:   po.CreatedAt,
		UpdatedAt:   po.UpdatedAt,
	}, nil
}

func toDomainModels(pos []entity.Product) ([]*etproduct.Product, error) {
	products := make([]*etproduct.Product, 0, len(pos))
	for i := range pos {
		p, err := toDomainModel(&pos[i])
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
