package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"course-api/internal/domain"
	"course-api/internal/repository"
	"course-api/internal/validation"
)

// CreateUserInput carries a registration payload. Pointer fields
// distinguish an absent attribute from an explicitly empty one, which
// selects between the "required" and "provide" validation messages.
type CreateUserInput struct {
	FirstName    *string
	LastName     *string
	EmailAddress *string
	Password     *string
}

// UserService describes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Register validates the payload, hashes the password, and persists the
// user. The plaintext password never reaches the repository.
func (s *userService) Register(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	var messages []string
	messages = appendRequired(messages, input.FirstName, "A first name is required", "Please provide a first name")
	messages = appendRequired(messages, input.LastName, "A last name is required", "Please provide a last name")
	messages = appendRequired(messages, input.EmailAddress, "An email is required", "Please provide an email address")
	if input.EmailAddress != nil && *input.EmailAddress != "" && !validation.IsEmail(*input.EmailAddress) {
		messages = append(messages, "You must enter a valid email address")
	}
	messages = appendRequired(messages, input.Password, "A password is required", "Please provide a password")
	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    *input.FirstName,
		LastName:     *input.LastName,
		EmailAddress: *input.EmailAddress,
		PasswordHash: string(hash),
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, &ValidationError{Messages: []string{"The email you entered already exists"}}
		}
		return nil, err
	}

	return user, nil
}

// Authenticate resolves the user by email and verifies the password
// against the stored bcrypt digest. Both failure modes return
// ErrInvalidCredentials.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func appendRequired(messages []string, value *string, nullMsg, emptyMsg string) []string {
	switch {
	case value == nil:
		return append(messages, nullMsg)
	case *value == "":
		return append(messages, emptyMsg)
	}
	return messages
}
