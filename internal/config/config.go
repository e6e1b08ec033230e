package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	SessionSecret string // セッションCookieの署名シークレット

	UploadDir string // 商品写真の保存先ディレクトリ

	// 起動時にシードする管理者アカウント（任意）。
	// 登録ルートからは管理者を作れないため、管理者はここで決める。
	AdminName     string
	AdminEmail    string
	AdminPassword string

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		UploadDir: getenv("UPLOAD_DIR", "static/uploads"),

		AdminName:     os.Getenv("ADMIN_NAME"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		GoEnv: getenv("GO_ENV", "dev"),
	}

	//必須チェック
	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.AdminEmail != "" && cfg.AdminPassword == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
