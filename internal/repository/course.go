package repository

import (
	"context"

	"course-api/internal/domain"
)

// CourseRepository exposes persistence operations for Course aggregates.
// Get and List populate the Owner reference on each returned course.
type CourseRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, course *domain.Course) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id int64) error
}
