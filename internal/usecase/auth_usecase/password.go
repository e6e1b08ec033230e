package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2-SHA256 のパラメータ。ハッシュ文字列にも埋め込むので、
// 値を変えても過去のハッシュはそのまま検証できる。
const (
	pbkdf2Iterations = 260000
	pbkdf2SaltLength = 16
	pbkdf2KeyLength  = 32
)

// PBKDF2PasswordHasher は "pbkdf2:sha256:<iter>$<salt>$<hash>" 形式で保存する。
type PBKDF2PasswordHasher struct {
	iterations int
}

// DI
func NewPBKDF2PasswordHasher() *PBKDF2PasswordHasher {
	return &PBKDF2PasswordHasher{iterations: pbkdf2Iterations}
}

// Hash は明示的な長さのランダムソルトを作ってハッシュ化する。
func (h *PBKDF2PasswordHasher) Hash(plain string) (string, error) {
	salt := make([]byte, pbkdf2SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(plain), salt, h.iterations, pbkdf2KeyLength, sha256.New)

	return fmt.Sprintf(
		"pbkdf2:sha256:%d$%s$%s",
		h.iterations,
		hex.EncodeToString(salt),
		hex.EncodeToString(key),
	), nil
}

// PBKDF2PasswordVerifier は保存済みハッシュと平文を比較する。
type PBKDF2PasswordVerifier struct{}

// DI
func NewPBKDF2PasswordVerifier() *PBKDF2PasswordVerifier {
	return &PBKDF2PasswordVerifier{}
}

// Verify は保存形式からパラメータを読み戻して同じ計算で比べる。
func (v *PBKDF2PasswordVerifier) Verify(plain string, hashed string) bool {
	parts := strings.SplitN(hashed, "$", 3)
	if len(parts) != 3 {
		return false
	}

	method := strings.SplitN(parts[0], ":", 3)
	if len(method) != 3 || method[0] != "pbkdf2" || method[1] != "sha256" {
		return false
	}

	iterations, err := strconv.Atoi(method[2])
	if err != nil || iterations <= 0 {
		return false
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return false
	}

	got := pbkdf2.Key([]byte(plain), salt, iterations, len(want), sha256.New)

	return subtle.ConstantTimeCompare(got, want) == 1
}
