// Package adlrepo persists the evidence ledger in the "adl_entries" table.
// Rows are only ever inserted.
package adlrepo

import (
	"time"

	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO is the database row of an ADL entry. Meta is stored as JSON and
// returned verbatim. Seq records arrival order.
type EntryDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Seq        int64          `gorm:"autoIncrement;not null;uniqueIndex"`
	OrderID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type       string         `gorm:"type:varchar(16);not null"`
	URL        string         `gorm:"type:text;not null"`
	Geo        GeoDTO         `gorm:"embedded;embeddedPrefix:gps_"`
	CapturedAt time.Time      `gorm:"not null"`
	Meta       map[string]any `gorm:"type:jsonb;serializer:json"`
	CreatedAt  time.Time      `gorm:"autoCreateTime:false;not null"`
}

// TableName overrides GORM's default "entry_dtos".
func (EntryDTO) TableName() string {
	return "adl_entries"
}

// GeoDTO holds the capture position columns.
type GeoDTO struct {
	Lat float64 `gorm:"type:double precision;not null"`
	Lng float64 `gorm:"type:double precision;not null"`
}

func fromDomain(entry *adl.Entry) EntryDTO {
	s := entry.Snapshot()
	return EntryDTO{
		ID:         s.ID.Bytes(),
		OrderID:    s.OrderID.Bytes(),
		Type:       s.Type.String(),
		URL:        s.URL,
		Geo:        GeoDTO{Lat: s.Geo.Latitude(), Lng: s.Geo.Longitude()},
		CapturedAt: s.CapturedAt,
		Meta:       s.Meta,
		CreatedAt:  s.CreatedAt,
	}
}

func toDomain(dto EntryDTO) (*adl.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	geo, err := kernel.NewGeoPoint(dto.Geo.Lat, dto.Geo.Lng)
	if err != nil {
		return nil, err
	}

	return adl.RestoreEntry(adl.Snapshot{
		ID:         id,
		OrderID:    orderID,
		Type:       adl.MediaType(dto.Type),
		URL:        dto.URL,
		Geo:        geo,
		CapturedAt: dto.CapturedAt,
		Meta:       dto.Meta,
		CreatedAt:  dto.CreatedAt,
	})
}
