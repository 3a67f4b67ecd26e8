package services

import (
	"errors"
	"time"

	"github.com/Abhivera/dietly-prototype-backend/models"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	db       *gorm.DB
	progress *ProgressService
}

func NewAnalyticsService(db *gorm.DB, progress *ProgressService) *AnalyticsService {
	return &AnalyticsService{db: db, progress: progress}
}

// ChartPoint carries one calendar day. Value is nil for days with no data.
type ChartPoint struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// ProgressSeries is a passthrough over the aggregate rows in [start, end],
// ascending by date. No gap-filling here.
func (s *AnalyticsService) ProgressSeries(userID uint, start, end time.Time) ([]models.ProgressLog, error) {
	return s.progress.Rows(userID, start, end)
}

// ChartSeries projects the aggregate into (date, value) pairs for charting and
// gap-fills every calendar day from the first datapoint through today.
func (s *AnalyticsService) ChartSeries(userID uint, metric, period string) ([]ChartPoint, error) {
	now := time.Now()
	var start time.Time
	switch period {
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = now.AddDate(0, -1, 0)
	default:
		return nil, errors.New("invalid period specified")
	}

	if metric != "weight" && metric != "calories" {
		return nil, errors.New("invalid metric specified")
	}

	rows, err := s.progress.Rows(userID, start, now)
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64, len(rows))
	for _, r := range rows {
		var v float64
		if metric == "weight" {
			v = r.Weight
		} else {
			v = r.CaloriesConsumed - r.CaloriesBurned
		}
		values[r.Date.Format("2006-01-02")] = v
	}

	first := DayStart(now)
	if len(rows) > 0 {
		first = DayStart(rows[0].Date)
	}

	var series []ChartPoint
	for d := first; !d.After(DayStart(now)); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		point := ChartPoint{Date: key}
		if v, ok := values[key]; ok {
			val := v
			point.Value = &val
		}
		series = append(series, point)
	}
	return series, nil
}
