package main

import (
	"context"
	"errors"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/infra/storage"
	"app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type sessionIssuer struct {
	secret []byte
	ttl    time.Duration
}

func newSessionIssuer(secret string, ttl time.Duration) *sessionIssuer {
	return &sessionIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// user idとroleを乗せた署名付きセッショントークン
func (i *sessionIssuer) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// 管理者はここでシードする。登録ルートからは作れない。
func ensureAdmin(ctx context.Context, cfg config.Config, userRepo repository.UserRepository, hasher auth.PasswordHasher) error {
	if cfg.AdminEmail == "" {
		return nil
	}

	existing, err := userRepo.FindByEmail(ctx, cfg.AdminEmail)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	name := cfg.AdminName
	if name == "" {
		name = "Admin"
	}

	return userRepo.Create(ctx, &model.User{
		Name:         name,
		Email:        cfg.AdminEmail,
		PasswordHash: hashed,
		Role:         model.RoleAdmin,
	})
}

func main() {
	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Purchase{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	itemRepo := infraRepo.NewItemGormRepository(gormDB)
	purchaseRepo := infraRepo.NewPurchaseGormRepository(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}
	hasher := auth.NewPBKDF2PasswordHasher()
	verifier := auth.NewPBKDF2PasswordVerifier()
	issuer := newSessionIssuer(cfg.SessionSecret, 24*time.Hour)
	photos := storage.NewLocalPhotoStore(cfg.UploadDir)

	//管理者シード
	if err := ensureAdmin(context.Background(), cfg, userRepo, hasher); err != nil {
		logger.Fatal("admin seed failed", zap.Error(err))
	}

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	catalogUC := usecase.NewCatalogUsecase(itemRepo, photos)
	bagUC := usecase.NewBagUsecase(purchaseRepo, itemRepo)

	//Handler生成
	cookieSecure := cfg.GoEnv == "prod"
	handlers := server.Handlers{
		Auth:    handler.NewAuthHandler(registerUC, loginUC, cookieSecure),
		Catalog: handler.NewCatalogHandler(catalogUC),
		Bag:     handler.NewBagHandler(bagUC),
		Admin:   handler.NewAdminItemHandler(catalogUC),
	}

	//Server起動
	e := server.New(cfg, logger, handlers)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logger.Info("starting", zap.String("addr", addr), zap.String("env", cfg.GoEnv))
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
