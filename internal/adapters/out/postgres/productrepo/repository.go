package productrepo

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllByIDs retrieves all products matching the given identifiers in one
// batch. Missing identifiers are silently absent from the result; callers
// compare against the request and match by identifier.
//
// Rows are selected FOR UPDATE. Inside a transaction this blocks concurrent
// stock updates to the same products until the transaction ends, which keeps
// read-modify-write stock sequences free of lost updates. Outside a
// transaction the lock is released as soon as the statement completes.
func (r *GormProductRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&dtos, "id IN ?", rawIDs).Error
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		products = append(products, p)
	}

	return products, nil
}

// UpdateStock persists the stock quantities of the given products as one batch.
func (r *GormProductRepository) UpdateStock(ctx context.Context, products []*product.Product) error {
	for _, aggregate := range products {
		if err := aggregate.Validate(); err != nil {
			return err
		}

		result := r.db.WithContext(ctx).
			Model(&ProductDTO{}).
			Where("id = ?", aggregate.ID().Bytes()).
			Update("quantity", aggregate.Quantity())
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}

	return nil
}
