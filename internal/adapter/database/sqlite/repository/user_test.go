package repository_test

import (
	"context"
	"testing"

	sq "github.com/Masterminds/squirrel"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"usertasks/internal/adapter/database/sqlite"
	"usertasks/internal/adapter/database/sqlite/repository"
	"usertasks/internal/core/domain"
	"usertasks/internal/core/port"
	"usertasks/internal/core/telemetry"
	. "usertasks/pkg/test"
	"usertasks/pkg/test/factory"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	db   *sqlite.DB
	repo port.UserRepository
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = InitTestDB()
	s.repo = repository.NewUserRepository(s.db, telemetry.NewNoOpProbe())
}

func (s *UserRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func TestUserRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestRepository_Create_Success() {
	user := factory.NewUser(map[string]any{"ID": "f001", "Name": "Ana", "Email": "ana@x.io"})

	created, err := s.repo.Create(context.Background(), user)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "f001", created.ID)

	users, err := s.repo.GetAll(context.Background())

	assert.NoError(s.T(), err)
	Expect(users).To(HaveLen(1))
	Expect(users[0].Name).To(Equal("Ana"))
	Expect(users[0].Email).To(Equal("ana@x.io"))
	Expect(users[0].EncryptedPassword).To(Equal(user.EncryptedPassword))
	Expect(users[0].CreatedAt.Equal(user.CreatedAt)).To(BeTrue())
}

func (s *UserRepositoryTestSuite) TestRepository_Create_DuplicateID() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, factory.NewUser(map[string]any{"ID": "f001", "Email": "ana@x.io"}))
	assert.NoError(s.T(), err)

	_, err = s.repo.Create(ctx, factory.NewUser(map[string]any{"ID": "f001", "Email": "bia@x.io"}))

	assert.Error(s.T(), err)
	assert.Equal(s.T(), domain.KindConflict, domain.KindOf(err))
	assert.Equal(s.T(), "id já existe.", err.Error())
	assert.Equal(s.T(), 1, CountRows(s.T(), s.db, "users", nil))
}

func (s *UserRepositoryTestSuite) TestRepository_Create_DuplicateEmail() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, factory.NewUser(map[string]any{"ID": "f001", "Email": "ana@x.io"}))
	assert.NoError(s.T(), err)

	_, err = s.repo.Create(ctx, factory.NewUser(map[string]any{"ID": "f002", "Email": "ana@x.io"}))

	assert.Equal(s.T(), domain.KindConflict, domain.KindOf(err))
	assert.Equal(s.T(), "email já existe.", err.Error())
	assert.Equal(s.T(), 1, CountRows(s.T(), s.db, "users", nil))
}

func (s *UserRepositoryTestSuite) TestRepository_GetAll_Empty() {
	users, err := s.repo.GetAll(context.Background())

	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), users)
	assert.Empty(s.T(), users)
}

func (s *UserRepositoryTestSuite) TestRepository_SearchByName() {
	SeedUsers(s.T(), s.db,
		factory.NewUser(map[string]any{"ID": "f001", "Name": "Ana", "Email": "ana@x.io"}),
		factory.NewUser(map[string]any{"ID": "f002", "Name": "Bruno", "Email": "bruno@x.io"}),
		factory.NewUser(map[string]any{"ID": "f003", "Name": "Anabela", "Email": "anabela@x.io"}),
	)

	users, err := s.repo.SearchByName(context.Background(), "An")

	assert.NoError(s.T(), err)
	Expect(users).To(HaveLen(2))
	Expect([]string{users[0].ID, users[1].ID}).To(ConsistOf("f001", "f003"))
}

func (s *UserRepositoryTestSuite) TestRepository_SearchByName_EmptyTermMatchesAll() {
	SeedUsers(s.T(), s.db,
		factory.NewUser(map[string]any{"ID": "f001", "Email": "ana@x.io"}),
		factory.NewUser(map[string]any{"ID": "f002", "Email": "bruno@x.io"}),
	)

	users, err := s.repo.SearchByName(context.Background(), "")

	assert.NoError(s.T(), err)
	Expect(users).To(HaveLen(2))
}

func (s *UserRepositoryTestSuite) TestRepository_DeleteCascade_Success() {
	ctx := context.Background()

	SeedUsers(s.T(), s.db,
		factory.NewUser(map[string]any{"ID": "f001", "Email": "ana@x.io"}),
		factory.NewUser(map[string]any{"ID": "f002", "Email": "bruno@x.io"}),
	)
	SeedTasks(s.T(), s.db,
		factory.NewTask(map[string]any{"ID": "t001"}),
		factory.NewTask(map[string]any{"ID": "t002"}),
	)
	AssignTask(s.T(), s.db, "f001", "t001")
	AssignTask(s.T(), s.db, "f001", "t002")
	AssignTask(s.T(), s.db, "f002", "t001")

	err := s.repo.DeleteCascade(ctx, "f001")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 0, CountRows(s.T(), s.db, "users", sq.Eq{"id": "f001"}))
	assert.Equal(s.T(), 0, CountRows(s.T(), s.db, "users_tasks", sq.Eq{"user_id": "f001"}))
	assert.Equal(s.T(), 1, CountRows(s.T(), s.db, "users_tasks", nil))
	assert.Equal(s.T(), 2, CountRows(s.T(), s.db, "tasks", nil))
}

func (s *UserRepositoryTestSuite) TestRepository_DeleteCascade_NotFound() {
	err := s.repo.DeleteCascade(context.Background(), "f404")

	assert.Error(s.T(), err)
	assert.Equal(s.T(), domain.KindNotFound, domain.KindOf(err))
	assert.Equal(s.T(), "'id' não encontrado.", err.Error())
}

func (s *UserRepositoryTestSuite) TestRepository_DeleteCascade_CanceledContext() {
	SeedUsers(s.T(), s.db, factory.NewUser(map[string]any{"ID": "f001", "Email": "ana@x.io"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.repo.DeleteCascade(ctx, "f001")

	assert.Error(s.T(), err)
	assert.Equal(s.T(), 1, CountRows(s.T(), s.db, "users", nil))
}
