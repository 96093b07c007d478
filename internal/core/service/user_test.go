package service_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	. "usertasks/pkg/test"

	"usertasks/internal/adapter/database/sqlite"
	"usertasks/internal/adapter/database/sqlite/repository"
	"usertasks/internal/core/domain"
	"usertasks/internal/core/model/request"
	"usertasks/internal/core/port"
	"usertasks/internal/core/service"
	"usertasks/internal/core/telemetry"
	"usertasks/internal/core/util"
	"usertasks/pkg/test/factory"
)

type UserServiceTestSuite struct {
	suite.Suite
	db      *sqlite.DB
	repo    port.UserRepository
	UseCase *service.UserService
}

func (s *UserServiceTestSuite) SetupSuite() {
	util.PasswordCost = bcrypt.MinCost
}

func (s *UserServiceTestSuite) SetupTest() {
	s.db = InitTestDB()
	s.repo = repository.NewUserRepository(s.db, telemetry.NewNoOpProbe())
	s.UseCase = service.NewUserService(s.repo)
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.db.Close()
}

func TestUserServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserServiceTestSuite))
}

func validRequest() request.CreateUserRequest {
	return request.CreateUserRequest{
		ID:       "f001",
		Name:     "Ana",
		Email:    "ana@x.io",
		Password: "Abc123!x",
	}
}

func (s *UserServiceTestSuite) TestCreate_Success() {
	user, err := s.UseCase.Create(context.Background(), validRequest())

	assert.NoError(s.T(), err)
	Expect(user.ID).To(Equal("f001"))
	Expect(user.Name).To(Equal("Ana"))
	Expect(user.CreatedAt.IsZero()).To(BeFalse())
	Expect(user.EncryptedPassword).NotTo(Equal("Abc123!x"))
	Expect(util.CheckPassword(user.EncryptedPassword, "Abc123!x")).To(BeTrue())

	term := "An"
	users, err := s.UseCase.List(context.Background(), &term)

	assert.NoError(s.T(), err)
	Expect(users).To(HaveLen(1))
	Expect(users[0].ID).To(Equal("f001"))
}

func (s *UserServiceTestSuite) TestCreate_ValidationMessages() {
	cases := []struct {
		name    string
		mutate  func(*request.CreateUserRequest)
		message string
	}{
		{"id missing", func(r *request.CreateUserRequest) { r.ID = nil }, "'id' deve ser string."},
		{"id number", func(r *request.CreateUserRequest) { r.ID = 1234.0 }, "'id' deve ser string."},
		{"id short", func(r *request.CreateUserRequest) { r.ID = "f01" }, "'id' deve possuir pelo menos 4 caracteres."},
		{"name missing", func(r *request.CreateUserRequest) { r.Name = nil }, "'name' deve ser string."},
		{"name short", func(r *request.CreateUserRequest) { r.Name = "A" }, "'name' deve possuir pelo menos 2 caracteres."},
		{"email missing", func(r *request.CreateUserRequest) { r.Email = nil }, "'email' deve ser string."},
		{"email invalid", func(r *request.CreateUserRequest) { r.Email = "ana@" }, "'email' deve ser um email válido."},
		{"password missing", func(r *request.CreateUserRequest) { r.Password = nil }, "'password' deve ser string."},
		{"password weak", func(r *request.CreateUserRequest) { r.Password = "abcdefgh" }, "'password' deve possuir entre 8 e 12 caracteres, com letras maiúsculas e minúsculas e no mínimo um número e um caractere especial"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := validRequest()
			tc.mutate(&req)

			_, err := s.UseCase.Create(context.Background(), req)

			assert.Error(s.T(), err)
			assert.Equal(s.T(), domain.KindInvalid, domain.KindOf(err))
			assert.Equal(s.T(), tc.message, err.Error())
		})
	}

	assert.Equal(s.T(), 0, CountRows(s.T(), s.db, "users", nil))
}

func (s *UserServiceTestSuite) TestCreate_FirstViolationWins() {
	_, err := s.UseCase.Create(context.Background(), request.CreateUserRequest{
		ID:    "f01",
		Name:  "A",
		Email: "nope",
	})

	assert.Equal(s.T(), "'id' deve possuir pelo menos 4 caracteres.", err.Error())
}

func (s *UserServiceTestSuite) TestCreate_Duplicates() {
	ctx := context.Background()

	_, err := s.UseCase.Create(ctx, validRequest())
	assert.NoError(s.T(), err)

	req := validRequest()
	req.Email = "outra@x.io"
	_, err = s.UseCase.Create(ctx, req)

	assert.Equal(s.T(), domain.KindConflict, domain.KindOf(err))
	assert.Equal(s.T(), "id já existe.", err.Error())

	req = validRequest()
	req.ID = "f002"
	_, err = s.UseCase.Create(ctx, req)

	assert.Equal(s.T(), domain.KindConflict, domain.KindOf(err))
	assert.Equal(s.T(), "email já existe.", err.Error())
	assert.Equal(s.T(), 1, CountRows(s.T(), s.db, "users", nil))
}

func (s *UserServiceTestSuite) TestList_NilTermReturnsAll() {
	SeedUsers(s.T(), s.db,
		factory.NewUser(map[string]any{"ID": "f001", "Name": "Ana", "Email": "ana@x.io"}),
		factory.NewUser(map[string]any{"ID": "f002", "Name": "Bruno", "Email": "bruno@x.io"}),
	)

	users, err := s.UseCase.List(context.Background(), nil)

	assert.NoError(s.T(), err)
	Expect(users).To(HaveLen(2))

	pinged, err := s.UseCase.Ping(context.Background())

	assert.NoError(s.T(), err)
	Expect(pinged).To(HaveLen(2))
}

func (s *UserServiceTestSuite) TestDelete_Success() {
	SeedUsers(s.T(), s.db, factory.NewUser(map[string]any{"ID": "f001", "Email": "ana@x.io"}))

	err := s.UseCase.Delete(context.Background(), "f001")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 0, CountRows(s.T(), s.db, "users", nil))
}

func (s *UserServiceTestSuite) TestDelete_Unknown() {
	err := s.UseCase.Delete(context.Background(), "f404")

	assert.Equal(s.T(), domain.KindNotFound, domain.KindOf(err))
	assert.Equal(s.T(), "'id' não encontrado.", err.Error())
}

// spyUserRepository counts store accesses.
type spyUserRepository struct {
	calls int
}

func (r *spyUserRepository) GetAll(context.Context) ([]domain.User, error) {
	r.calls++
	return nil, nil
}

func (r *spyUserRepository) SearchByName(context.Context, string) ([]domain.User, error) {
	r.calls++
	return nil, nil
}

func (r *spyUserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	r.calls++
	return user, nil
}

func (r *spyUserRepository) DeleteCascade(context.Context, string) error {
	r.calls++
	return errors.New("unexpected delete")
}

func TestDelete_PrefixCheckedBeforeStore(t *testing.T) {
	repo := &spyUserRepository{}
	svc := service.NewUserService(repo)

	err := svc.Delete(context.Background(), "g001")

	assert.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Equal(t, "'id' deve começar com a letra f.", err.Error())
	assert.Zero(t, repo.calls)
}

func TestCreate_InvalidRequestNeverReachesStore(t *testing.T) {
	repo := &spyUserRepository{}
	svc := service.NewUserService(repo)

	_, err := svc.Create(context.Background(), request.CreateUserRequest{ID: "f001", Name: "Ana", Email: "ana@x.io", Password: 12345678})

	assert.Equal(t, "'password' deve ser string.", err.Error())
	assert.Zero(t, repo.calls)
}
