package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

// 会員登録の入力
type RegisterUserInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// 会員登録の出力
type RegisterUserOutput struct {
	User model.User
}

var (
	// 入力が不正
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordLength     = errors.New("password must be between 8 and 25 characters")
	ErrPasswordMismatch   = errors.New("passwords must match")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	clock    Clock
}

// DI
func NewRegisterUserUsecase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	clock Clock,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		clock:    clock,
	}
}

// 会員登録実行。成功してもログイン状態にはしない（ログイン画面へ誘導する）。
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	var out RegisterUserOutput

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	// 必須チェック
	if name == "" || email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return out, ErrMissingFields
	}

	// emailの形式チェック
	if !isValidEmailFormat(email) {
		return out, ErrInvalidEmailFormat
	}

	// passwordの長さチェック（8〜25文字）
	if len(in.Password) < 8 || len(in.Password) > 25 {
		return out, ErrPasswordLength
	}

	if in.Password != in.ConfirmPassword {
		return out, ErrPasswordMismatch
	}

	// email重複チェック（一意制約だけに任せず、先にわかりやすく返す）
	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return out, ErrEmailAlreadyExists
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return out, err
	}

	// パスワードをハッシュ化（平文は保存しない）
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	now := u.clock.Now()

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         model.RoleUser, // 登録では必ずUSER
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// DBへ保存。競合の取りこぼしは一意制約が拾う。
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return out, ErrEmailAlreadyExists
		}
		return out, err
	}

	// 返すときは hash を空にして漏洩防止
	safeUser := *user
	safeUser.PasswordHash = ""

	out.User = safeUser
	return out, nil
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}
