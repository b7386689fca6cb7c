package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	model "charity_backend/internals/features/charity/projects/model"
)

var ErrProjectNotFound = errors.New("charity project not found")

// ListFilter is an already validated listing request.
type ListFilter struct {
	Status string
	// LaunchDay is any instant of the wanted calendar day (in the service location).
	LaunchDay *time.Time
	Offset    int
	Limit     int
}

type CharityProjectService struct {
	DB       *gorm.DB
	Location *time.Location
}

func NewCharityProjectService(db *gorm.DB, loc *time.Location) *CharityProjectService {
	if loc == nil {
		loc = time.UTC
	}
	return &CharityProjectService{DB: db, Location: loc}
}

// DayBounds returns [midnight, next midnight) of t's calendar day in loc, as UTC.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

// List returns one page of projects ordered by sort_order ASC, launch_date DESC,
// plus the total number of matches.
func (s *CharityProjectService) List(ctx context.Context, f ListFilter) ([]model.CharityProject, int64, error) {
	tx := s.DB.WithContext(ctx).
		Model(&model.CharityProject{}).
		Where("status = ?", f.Status)

	if f.LaunchDay != nil {
		from, to := DayBounds(*f.LaunchDay, s.Location)
		tx = tx.Where("launch_date >= ? AND launch_date < ?", from, to)
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.CharityProject
	if err := tx.
		Order("sort_order ASC").
		Order("launch_date DESC").
		Order("id ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetBySlug applies no status filter: drafts are reachable by slug.
func (s *CharityProjectService) GetBySlug(ctx context.Context, slug string) (*model.CharityProject, error) {
	var m model.CharityProject
	if err := s.DB.WithContext(ctx).
		Where("slug = ?", slug).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &m, nil
}
