package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

type GormWeatherGateway struct {
	DB *gorm.DB
}

var _ WeatherGateway = (*GormWeatherGateway)(nil)

func NewGormWeatherGateway(db *gorm.DB) *GormWeatherGateway {
	return &GormWeatherGateway{DB: db}
}

const insertBatchSize = 200

// Save replaces the stored aggregate for the location in one transaction.
// Each sub-collection is deleted and re-inserted; the aggregate row is
// upserted.
func (gateway *GormWeatherGateway) Save(ctx context.Context, locationID string, weather entity.Weather) error {
	return gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := newWeatherRecord(locationID, weather)
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error; err != nil {
			return err
		}

		if err := replaceCollection(tx, locationID, &DailyRecord{}, dailyRecords(locationID, weather.Daily)); err != nil {
			return err
		}
		if err := replaceCollection(tx, locationID, &HourlyRecord{}, hourlyRecords(locationID, weather.Hourly)); err != nil {
			return err
		}
		if err := replaceCollection(tx, locationID, &MinutelyRecord{}, minutelyRecords(locationID, weather.Minutely)); err != nil {
			return err
		}
		return replaceCollection(tx, locationID, &AlertRecord{}, alertRecords(locationID, weather.Alerts))
	})
}

func replaceCollection[T any](tx *gorm.DB, locationID string, model *T, records []T) error {
	if err := tx.Where("location_id = ?", locationID).Delete(model).Error; err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	return tx.CreateInBatches(records, insertBatchSize).Error
}

// Load hydrates the aggregate, nil when the location has never been saved.
func (gateway *GormWeatherGateway) Load(ctx context.Context, locationID string, opts LoadOptions) (*entity.Weather, error) {
	var record WeatherRecord
	err := gateway.DB.WithContext(ctx).First(&record, "location_id = ?", locationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	weather := record.toEntity()

	if !opts.SkipDaily {
		var dailies []DailyRecord
		if err := gateway.DB.WithContext(ctx).Where("location_id = ?", locationID).Order("date asc").Find(&dailies).Error; err != nil {
			return nil, err
		}
		weather.Daily = make([]entity.Daily, 0, len(dailies))
		for _, daily := range dailies {
			weather.Daily = append(weather.Daily, daily.toEntity())
		}
	}
	if !opts.SkipHourly {
		var hourlies []HourlyRecord
		if err := gateway.DB.WithContext(ctx).Where("location_id = ?", locationID).Order("time asc").Find(&hourlies).Error; err != nil {
			return nil, err
		}
		weather.Hourly = make([]entity.Hourly, 0, len(hourlies))
		for _, hourly := range hourlies {
			weather.Hourly = append(weather.Hourly, hourly.toEntity())
		}
	}
	if !opts.SkipMinutely {
		var minutelies []MinutelyRecord
		if err := gateway.DB.WithContext(ctx).Where("location_id = ?", locationID).Order("time asc").Find(&minutelies).Error; err != nil {
			return nil, err
		}
		weather.Minutely = make([]entity.Minutely, 0, len(minutelies))
		for _, minutely := range minutelies {
			weather.Minutely = append(weather.Minutely, minutely.toEntity())
		}
	}
	if !opts.SkipAlerts {
		var alerts []AlertRecord
		if err := gateway.DB.WithContext(ctx).Where("location_id = ?", locationID).Order("id asc").Find(&alerts).Error; err != nil {
			return nil, err
		}
		weather.Alerts = make([]entity.Alert, 0, len(alerts))
		for _, alert := range alerts {
			weather.Alerts = append(weather.Alerts, alert.toEntity())
		}
	}
	return &weather, nil
}

// DeleteOlderThan purges expired rows across locations.
func (gateway *GormWeatherGateway) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, target := range []struct {
			model     any
			condition string
		}{
			{&DailyRecord{}, "date < ?"},
			{&HourlyRecord{}, "time < ?"},
			{&MinutelyRecord{}, "time < ?"},
			{&AlertRecord{}, "end_time IS NOT NULL AND end_time < ?"},
		} {
			result := tx.Where(target.condition, cutoff).Delete(target.model)
			if result.Error != nil {
				return result.Error
			}
			removed += result.RowsAffected
		}
		return nil
	})
	return removed, err
}

// DeleteByLocationID removes the aggregate and every sub-collection.
func (gateway *GormWeatherGateway) DeleteByLocationID(ctx context.Context, locationID string) error {
	return gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&DailyRecord{}, &HourlyRecord{}, &MinutelyRecord{}, &AlertRecord{}, &WeatherRecord{}} {
			if err := tx.Where("location_id = ?", locationID).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func dailyRecords(locationID string, dailies []entity.Daily) []DailyRecord {
	records := make([]DailyRecord, 0, len(dailies))
	for _, daily := range dailies {
		records = append(records, newDailyRecord(locationID, daily))
	}
	return records
}

func hourlyRecords(locationID string, hourlies []entity.Hourly) []HourlyRecord {
	records := make([]HourlyRecord, 0, len(hourlies))
	for _, hourly := range hourlies {
		records = append(records, newHourlyRecord(locationID, hourly))
	}
	return records
}

func minutelyRecords(locationID string, minutelies []entity.Minutely) []MinutelyRecord {
	records := make([]MinutelyRecord, 0, len(minutelies))
	for _, minutely := range minutelies {
		records = append(records, newMinutelyRecord(locationID, minutely))
	}
	return records
}

func alertRecords(locationID string, alerts []entity.Alert) []AlertRecord {
	records := make([]AlertRecord, 0, len(alerts))
	for _, alert := range alerts {
		records = append(records, newAlertRecord(locationID, alert))
	}
	return records
}
