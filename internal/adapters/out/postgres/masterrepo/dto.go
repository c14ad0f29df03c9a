// Package masterrepo persists the master roster in the "masters" table.
package masterrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"

	"github.com/google/uuid"
)

// MasterDTO is the database row of a master.
type MasterDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null;index"`
	Location GeoDTO    `gorm:"embedded;embeddedPrefix:geo_"`
}

// TableName overrides GORM's default "master_dtos".
func (MasterDTO) TableName() string {
	return "masters"
}

// GeoDTO holds the master's base position.
type GeoDTO struct {
	Lat float64 `gorm:"type:double precision;not null"`
	Lng float64 `gorm:"type:double precision;not null"`
}

func fromDomain(m *master.Master) MasterDTO {
	return MasterDTO{
		ID:   m.ID().Bytes(),
		Name: m.Name(),
		Location: GeoDTO{
			Lat: m.Location().Latitude(),
			Lng: m.Location().Longitude(),
		},
	}
}

func toDomain(dto MasterDTO) (*master.Master, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return master.RestoreMaster(id, dto.Name, location)
}

func toDomainList(dtos []MasterDTO) ([]*master.Master, error) {
	masters := make([]*master.Master, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		masters = append(masters, m)
	}
	return masters, nil
}
