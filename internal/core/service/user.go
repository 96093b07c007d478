package service

import (
	"context"
	"errors"
	"time"

	"usertasks/internal/core/domain"
	"usertasks/internal/core/model/request"
	"usertasks/internal/core/port"
	"usertasks/internal/core/util"
	"usertasks/internal/core/validation"
)

const deletableIDPrefix = "f"

type UserService struct {
	repo port.UserRepository
	now  func() time.Time
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo, now: time.Now}
}

// Ping reads every user; the route uses it as a liveness probe of the store.
func (us *UserService) Ping(ctx context.Context) ([]domain.User, error) {
	return us.repo.GetAll(ctx)
}

// List returns every user when term is nil, otherwise the users whose name
// contains term.
func (us *UserService) List(ctx context.Context, term *string) ([]domain.User, error) {
	if term == nil {
		return us.repo.GetAll(ctx)
	}

	return us.repo.SearchByName(ctx, *term)
}

func (us *UserService) Create(ctx context.Context, req request.CreateUserRequest) (domain.User, error) {
	user, password, err := newUserFromRequest(req)

	if err != nil {
		return domain.User{}, err
	}

	user.EncryptedPassword, err = util.HashPassword(password)

	if err != nil {
		return domain.User{}, err
	}

	user.CreatedAt = us.now().UTC()

	return us.repo.Create(ctx, user)
}

// Delete refuses ids outside the deletable prefix before reaching the store.
func (us *UserService) Delete(ctx context.Context, id string) error {
	if err := validation.StartsWith("id", id, deletableIDPrefix); err != nil {
		return asDomainError(domain.KindNotFound, err)
	}

	return us.repo.DeleteCascade(ctx, id)
}

// newUserFromRequest applies the field rules in order; the first violation wins.
func newUserFromRequest(req request.CreateUserRequest) (domain.User, string, error) {
	id, err := validation.String("id", req.ID)

	if err == nil {
		err = validation.MinLength("id", id, 4)
	}

	if err != nil {
		return domain.User{}, "", asDomainError(domain.KindInvalid, err)
	}

	name, err := validation.String("name", req.Name)

	if err == nil {
		err = validation.MinLength("name", name, 2)
	}

	if err != nil {
		return domain.User{}, "", asDomainError(domain.KindInvalid, err)
	}

	email, err := validation.String("email", req.Email)

	if err == nil {
		err = validation.Email("email", email)
	}

	if err != nil {
		return domain.User{}, "", asDomainError(domain.KindInvalid, err)
	}

	password, err := validation.String("password", req.Password)

	if err == nil {
		err = validation.Password("password", password)
	}

	if err != nil {
		return domain.User{}, "", asDomainError(domain.KindInvalid, err)
	}

	return domain.User{ID: id, Name: name, Email: email}, password, nil
}

func asDomainError(kind domain.Kind, err error) error {
	var violation *validation.Violation

	if !errors.As(err, &violation) {
		return err
	}

	return &domain.Error{Kind: kind, Field: violation.Field, Message: violation.Message, Err: violation}
}
