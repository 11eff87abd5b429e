package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

type GormLocationGateway struct {
	DB *gorm.DB
}

var _ LocationGateway = (*GormLocationGateway)(nil)

func NewGormLocationGateway(db *gorm.DB) *GormLocationGateway {
	return &GormLocationGateway{DB: db}
}

func (gateway *GormLocationGateway) FindByID(ctx context.Context, id string) (*entity.Location, error) {
	var record LocationRecord
	err := gateway.DB.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return locationFromRecord(record)
}

func (gateway *GormLocationGateway) FindAll(ctx context.Context) ([]entity.Location, error) {
	var records []LocationRecord
	if err := gateway.DB.WithContext(ctx).Order("created_at asc").Find(&records).Error; err != nil {
		return nil, err
	}

	locations := make([]entity.Location, 0, len(records))
	for _, record := range records {
		loc, err := locationFromRecord(record)
		if err != nil {
			return nil, err
		}
		locations = append(locations, *loc)
	}
	return locations, nil
}

func (gateway *GormLocationGateway) Create(ctx context.Context, loc entity.Location) (*entity.Location, error) {
	if loc.ID == "" {
		loc.ID = uuid.New().String()
	}
	record, err := locationToRecord(loc)
	if err != nil {
		return nil, err
	}
	if err := gateway.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

func (gateway *GormLocationGateway) Update(ctx context.Context, loc entity.Location) (*entity.Location, error) {
	record, err := locationToRecord(loc)
	if err != nil {
		return nil, err
	}
	result := gateway.DB.WithContext(ctx).Model(&LocationRecord{}).Where("id = ?", loc.ID).Updates(map[string]any{
		"latitude":        record.Latitude,
		"longitude":       record.Longitude,
		"time_zone":       record.TimeZone,
		"country":         record.Country,
		"city":            record.City,
		"parameters":      record.Parameters,
		"feature_sources": record.FeatureSources,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("location %s not found", loc.ID)
	}
	return &loc, nil
}

// UpdateParameters replaces one source's resolved parameters, leaving the
// other sources untouched.
func (gateway *GormLocationGateway) UpdateParameters(ctx context.Context, id string, sourceID string, params map[string]string) error {
	loc, err := gateway.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if loc == nil {
		return fmt.Errorf("location %s not found", id)
	}

	updated := loc.WithSourceParameters(sourceID, params)
	serialized, err := json.Marshal(updated.Parameters)
	if err != nil {
		return err
	}
	return gateway.DB.WithContext(ctx).Model(&LocationRecord{}).Where("id = ?", id).
		Update("parameters", string(serialized)).Error
}

func (gateway *GormLocationGateway) DeleteByID(ctx context.Context, id string) error {
	return gateway.DB.WithContext(ctx).Where("id = ?", id).Delete(&LocationRecord{}).Error
}

func locationToRecord(loc entity.Location) (LocationRecord, error) {
	parameters, err := json.Marshal(loc.Parameters)
	if err != nil {
		return LocationRecord{}, err
	}
	featureSources, err := json.Marshal(loc.FeatureSources)
	if err != nil {
		return LocationRecord{}, err
	}
	return LocationRecord{
		ID:             loc.ID,
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		TimeZone:       loc.TimeZone,
		Country:        loc.Country,
		City:           loc.City,
		Parameters:     string(parameters),
		FeatureSources: string(featureSources),
	}, nil
}

func locationFromRecord(record LocationRecord) (*entity.Location, error) {
	loc := entity.Location{
		ID:        record.ID,
		Latitude:  record.Latitude,
		Longitude: record.Longitude,
		TimeZone:  record.TimeZone,
		Country:   record.Country,
		City:      record.City,
	}
	if record.Parameters != "" && record.Parameters != "null" {
		if err := json.Unmarshal([]byte(record.Parameters), &loc.Parameters); err != nil {
			return nil, err
		}
	}
	if record.FeatureSources != "" && record.FeatureSources != "null" {
		if err := json.Unmarshal([]byte(record.FeatureSources), &loc.FeatureSources); err != nil {
			return nil, err
		}
	}
	return &loc, nil
}
