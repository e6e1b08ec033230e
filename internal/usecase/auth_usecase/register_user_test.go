package auth_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
	auth "app/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 2 // DBの採番を模す
	}
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func validRegisterInput() auth.RegisterUserInput {
	return auth.RegisterUserInput{
		Name:            "Taro",
		Email:           "taro@example.com",
		Password:        "correct horse",
		ConfirmPassword: "correct horse",
	}
}

func newRegisterUC(userRepo *UserRepoMock) *auth.RegisterUserUsecase {
	return auth.NewRegisterUserUsecase(
		userRepo,
		auth.NewPBKDF2PasswordHasher(),
		&fixedClock{now: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	)
}

func TestRegister_MissingFields(t *testing.T) {
	uc := newRegisterUC(new(UserRepoMock))

	in := validRegisterInput()
	in.Name = ""

	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, auth.ErrMissingFields)
}

func TestRegister_InvalidEmail(t *testing.T) {
	uc := newRegisterUC(new(UserRepoMock))

	in := validRegisterInput()
	in.Email = "not-an-email"

	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, auth.ErrInvalidEmailFormat)
}

func TestRegister_PasswordLength(t *testing.T) {
	uc := newRegisterUC(new(UserRepoMock))

	//短すぎ（7文字）
	in := validRegisterInput()
	in.Password = "1234567"
	in.ConfirmPassword = "1234567"
	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, auth.ErrPasswordLength)

	//長すぎ（26文字）
	in = validRegisterInput()
	in.Password = "12345678901234567890123456"
	in.ConfirmPassword = in.Password
	_, err = uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, auth.ErrPasswordLength)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	uc := newRegisterUC(new(UserRepoMock))

	in := validRegisterInput()
	in.ConfirmPassword = "something else"

	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, auth.ErrPasswordMismatch)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("FindByEmail", mock.Anything, "taro@example.com").
		Return(&model.User{ID: 1, Email: "taro@example.com"}, nil)

	uc := newRegisterUC(userRepo)

	_, err := uc.Execute(context.Background(), validRegisterInput())
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestRegister_DuplicateEmailLostRace(t *testing.T) {
	//事前チェックをすり抜けても、一意制約が拾って同じエラーになる
	userRepo := new(UserRepoMock)
	userRepo.On("FindByEmail", mock.Anything, "taro@example.com").
		Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.Anything).
		Return(repository.ErrEmailTaken)

	uc := newRegisterUC(userRepo)

	_, err := uc.Execute(context.Background(), validRegisterInput())
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("FindByEmail", mock.Anything, "taro@example.com").
		Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// 平文は保存しない。ロールは必ずUSER。
		return u.PasswordHash != "" &&
			u.PasswordHash != "correct horse" &&
			u.Role == model.RoleUser &&
			u.Name == "Taro"
	})).Return(nil)

	uc := newRegisterUC(userRepo)

	out, err := uc.Execute(context.Background(), validRegisterInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.User.ID)
	//レスポンスにハッシュは出さない
	assert.Empty(t, out.User.PasswordHash)

	userRepo.AssertExpectations(t)
}
