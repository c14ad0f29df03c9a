package masterrepo

import (
	"context"
	"errors"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMasterRepository implements ports.MasterRepository using GORM.
type GormMasterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMasterRepository creates a new GORM master repository.
func NewGormMasterRepository(db *gorm.DB, tracker aggregateTracker) *GormMasterRepository {
	return &GormMasterRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMasterRepository) Add(ctx context.Context, aggregate *master.Master) error {
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

func (r *GormMasterRepository) Get(ctx context.Context, id kernel.UUID) (*master.Master, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MasterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("master", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormMasterRepository) List(ctx context.Context) ([]*master.Master, error) {
	var dtos []MasterDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// GetAllFree returns the masters not referenced by any assigned or
// in-progress order, ordered by name.
func (r *GormMasterRepository) GetAllFree(ctx context.Context) ([]*master.Master, error) {
	busy := r.db.
		Model(&orderrepo.OrderDTO{}).
		Select("master_id").
		Where("master_id IS NOT NULL AND status IN ?", []string{order.Assigned.String(), order.InProgress.String()})

	var dtos []MasterDTO
	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", busy).
		Order("name, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
