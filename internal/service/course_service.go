package service

import (
	"context"
	"errors"

	"course-api/internal/domain"
	"course-api/internal/repository"
)

// CourseInput carries create/update payload fields. Absent fields (nil)
// keep their stored values on update.
type CourseInput struct {
	Title           *string
	Description     *string
	EstimatedTime   *string
	MaterialsNeeded *string
}

// CourseService coordinates course operations and enforces ownership on
// mutations. Existence is checked before ownership, so a missing course
// surfaces as ErrCourseNotFound even for non-owners.
type CourseService interface {
	Create(ctx context.Context, ownerID int64, input CourseInput) (*domain.Course, error)
	Get(ctx context.Context, id int64) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	Update(ctx context.Context, id, actorID int64, input CourseInput) (*domain.Course, error)
	Delete(ctx context.Context, id, actorID int64) error
}

type courseService struct {
	courses repository.CourseRepository
}

func NewCourseService(courses repository.CourseRepository) CourseService {
	return &courseService{courses: courses}
}

func (s *courseService) Create(ctx context.Context, ownerID int64, input CourseInput) (*domain.Course, error) {
	var messages []string
	messages = appendRequired(messages, input.Title, "A title is required", "Please provide a title")
	messages = appendRequired(messages, input.Description, "A description is required", "Please provide a description")
	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	course := &domain.Course{
		Title:       *input.Title,
		Description: *input.Description,
		UserID:      ownerID,
	}
	if input.EstimatedTime != nil {
		course.EstimatedTime = *input.EstimatedTime
	}
	if input.MaterialsNeeded != nil {
		course.MaterialsNeeded = *input.MaterialsNeeded
	}

	if _, err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseService) Get(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := s.courses.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *courseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

func (s *courseService) Update(ctx context.Context, id, actorID int64, input CourseInput) (*domain.Course, error) {
	course, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if course.UserID != actorID {
		return nil, ErrNotCourseOwner
	}

	var messages []string
	if input.Title != nil && *input.Title == "" {
		messages = append(messages, "Please provide a title")
	}
	if input.Description != nil && *input.Description == "" {
		messages = append(messages, "Please provide a description")
	}
	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.EstimatedTime != nil {
		course.EstimatedTime = *input.EstimatedTime
	}
	if input.MaterialsNeeded != nil {
		course.MaterialsNeeded = *input.MaterialsNeeded
	}

	if err := s.courses.Update(ctx, course); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *courseService) Delete(ctx context.Context, id, actorID int64) error {
	course, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if course.UserID != actorID {
		return ErrNotCourseOwner
	}

	if err := s.courses.Delete(ctx, course.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	return nil
}
