package orderrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Seq").Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Save updates the mutable columns of an order when its stored version still
// equals expectedVersion.
//
// Inside a transaction the UPDATE takes the row lock, so a concurrent writer
// holding the same expected version blocks until this transaction ends and
// then matches no row.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order, expectedVersion int64) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Updates(map[string]any{
			"master_id":  dto.MasterID,
			"status":     dto.Status,
			"updated_at": dto.UpdatedAt,
			"version":    dto.Version,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missOnSave(ctx, aggregate.ID(), expectedVersion)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) missOnSave(ctx context.Context, id kernel.UUID, expectedVersion int64) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return errs.NewVersionConflictError("order", id.String(), expectedVersion)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns the orders matching filter ordered by creation time.
func (r *GormOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Order("created_at, seq")
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// FindOldestInStatus retrieves the earliest created order in status.
func (r *GormOrderRepository) FindOldestInStatus(ctx context.Context, status order.Status) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at, seq").
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "oldest in status "+status.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
