package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-api/internal/domain"
	"course-api/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestRepos(t *testing.T) (repository.UserRepository, repository.CourseRepository) {
	t.Helper()
	db := newTestDB(t)
	users := NewUserRepository(db)
	courses := NewCourseRepository(db)
	require.NoError(t, users.Init(context.Background()))
	require.NoError(t, courses.Init(context.Background()))
	return users, courses
}

func seedUser(t *testing.T, users repository.UserRepository, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: email,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashnotarealhash",
	}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)
	return user
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	users, _ := newTestRepos(t)
	ctx := context.Background()

	created := seedUser(t, users, "joe@smith.com")
	require.NotZero(t, created.ID)

	byEmail, err := users.GetByEmail(ctx, "joe@smith.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "Joe", byEmail.FirstName)
	assert.Equal(t, "Smith", byEmail.LastName)

	byID, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "joe@smith.com", byID.EmailAddress)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	users, _ := newTestRepos(t)
	ctx := context.Background()

	seedUser(t, users, "joe@smith.com")

	_, err := users.Create(ctx, &domain.User{
		FirstName:    "Other",
		LastName:     "Joe",
		EmailAddress: "joe@smith.com",
		PasswordHash: "x",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepositoryNotFound(t *testing.T) {
	users, _ := newTestRepos(t)
	ctx := context.Background()

	_, err := users.GetByEmail(ctx, "nobody@smith.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = users.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCourseRepositoryCRUD(t *testing.T) {
	users, courses := newTestRepos(t)
	ctx := context.Background()

	owner := seedUser(t, users, "joe@smith.com")

	course := &domain.Course{
		Title:           "Learn How to Program",
		Description:     "In this course, you'll learn how to write code.",
		EstimatedTime:   "12 hours",
		MaterialsNeeded: "A computer and a text editor",
		UserID:          owner.ID,
	}
	id, err := courses.Create(ctx, course)
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := courses.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Learn How to Program", got.Title)
	assert.Equal(t, owner.ID, got.UserID)
	require.NotNil(t, got.Owner)
	assert.Equal(t, "joe@smith.com", got.Owner.EmailAddress)
	assert.Equal(t, "Joe", got.Owner.FirstName)

	got.Title = "Learn How to Program, Revised"
	require.NoError(t, courses.Update(ctx, got))

	updated, err := courses.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Learn How to Program, Revised", updated.Title)
	assert.Equal(t, "12 hours", updated.EstimatedTime)

	require.NoError(t, courses.Delete(ctx, id))

	_, err = courses.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCourseRepositoryList(t *testing.T) {
	users, courses := newTestRepos(t)
	ctx := context.Background()

	joe := seedUser(t, users, "joe@smith.com")
	sally := seedUser(t, users, "sally@jones.com")

	for _, c := range []*domain.Course{
		{Title: "Build a Basic Bookcase", Description: "High-end furniture...", UserID: joe.ID},
		{Title: "Learn How to Test", Description: "Testing is the practice of...", UserID: sally.ID},
	} {
		_, err := courses.Create(ctx, c)
		require.NoError(t, err)
	}

	list, err := courses.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Build a Basic Bookcase", list[0].Title)
	require.NotNil(t, list[0].Owner)
	assert.Equal(t, "joe@smith.com", list[0].Owner.EmailAddress)
	require.NotNil(t, list[1].Owner)
	assert.Equal(t, "sally@jones.com", list[1].Owner.EmailAddress)
}

func TestCourseRepositoryUpdateDeleteMissing(t *testing.T) {
	_, courses := newTestRepos(t)
	ctx := context.Background()

	err := courses.Update(ctx, &domain.Course{ID: 999999, Title: "x", Description: "y"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, courses.Delete(ctx, 999999), repository.ErrNotFound)
}
