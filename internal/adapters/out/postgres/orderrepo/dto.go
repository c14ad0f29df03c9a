// Package orderrepo persists order aggregates in the "orders" table.
//
// Every order row carries a version column. Writes are compare-and-swap
// updates guarded by that column; see GormOrderRepository.Save.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row of an order. Seq is an insertion counter used
// to order orders created at the same instant.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq         int64      `gorm:"autoIncrement;not null;uniqueIndex"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text;not null;default:''"`
	Customer    ContactDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Location    GeoDTO     `gorm:"embedded;embeddedPrefix:location_"`
	MasterID    *uuid.UUID `gorm:"type:uuid;index"`
	Status      string     `gorm:"type:varchar(16);not null;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime:false;not null"`
	Version     int64      `gorm:"not null"`
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// ContactDTO holds the optional customer contact columns.
type ContactDTO struct {
	Name  string `gorm:"type:varchar(255);not null;default:''"`
	Phone string `gorm:"type:varchar(64);not null;default:''"`
}

// GeoDTO holds a latitude/longitude column pair.
type GeoDTO struct {
	Lat float64 `gorm:"type:double precision;not null"`
	Lng float64 `gorm:"type:double precision;not null"`
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()

	var masterID *uuid.UUID
	if s.MasterID != nil {
		raw := s.MasterID.Bytes()
		masterID = &raw
	}

	return OrderDTO{
		ID:          s.ID.Bytes(),
		Title:       s.Title,
		Description: s.Description,
		Customer:    ContactDTO{Name: s.Contact.Name, Phone: s.Contact.Phone},
		Location:    GeoDTO{Lat: s.Location.Latitude(), Lng: s.Location.Longitude()},
		MasterID:    masterID,
		Status:      s.Status.String(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Version:     s.Version,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var masterID *kernel.UUID
	if dto.MasterID != nil {
		mID, masterErr := kernel.UUIDFromBytes((*dto.MasterID)[:])
		if masterErr != nil {
			return nil, masterErr
		}
		masterID = &mID
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:          id,
		Title:       dto.Title,
		Description: dto.Description,
		Contact:     order.Contact{Name: dto.Customer.Name, Phone: dto.Customer.Phone},
		Location:    location,
		MasterID:    masterID,
		Status:      status,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
		Version:     dto.Version,
	})
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
