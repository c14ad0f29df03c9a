package adlrepo

import (
	"context"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAdlLedger implements ports.AdlLedger using GORM.
type GormAdlLedger struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAdlLedger creates a new GORM evidence ledger.
func NewGormAdlLedger(db *gorm.DB, tracker aggregateTracker) *GormAdlLedger {
	return &GormAdlLedger{
		db:      db,
		tracker: tracker,
	}
}

// Append inserts the entry. The owning order must exist.
func (l *GormAdlLedger) Append(ctx context.Context, entry *adl.Entry) (kernel.UUID, error) {
	if err := entry.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var count int64
	err := l.db.WithContext(ctx).
		Model(&orderrepo.OrderDTO{}).
		Where("id = ?", entry.OrderID().Bytes()).
		Count(&count).Error
	if err != nil {
		return kernel.UUID{}, err
	}
	if count == 0 {
		return kernel.UUID{}, errs.NewObjectNotFoundError("order", entry.OrderID().String())
	}

	dto := fromDomain(entry)
	if err = l.db.WithContext(ctx).Omit("Seq").Create(&dto).Error; err != nil {
		return kernel.UUID{}, err
	}

	l.tracker.TrackAggregate(entry.ID(), entry)
	return entry.ID(), nil
}

// ListByOrder returns the entries of an order in arrival order.
func (l *GormAdlLedger) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*adl.Entry, error) {
	var dtos []EntryDTO
	err := l.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*adl.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// CountByOrder returns the number of entries attached to an order.
func (l *GormAdlLedger) CountByOrder(ctx context.Context, orderID kernel.UUID) (int, error) {
	var count int64
	err := l.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
