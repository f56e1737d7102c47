package pkg

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[\w\-\.]+@([\w-]+\.)+\w{2,4}$`)

const (
	nameMin     = 4
	passwordMin = 8
	bioMin      = 10
)

// NormalizeEmail 去掉首尾空白并转小写
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateName 校验显示名
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("Name cannot be empty")
	}
	if utf8.RuneCountInString(name) < nameMin {
		return fmt.Errorf("Name %s is too short, at least %d characters", name, nameMin)
	}
	return nil
}

// ValidateEmail 校验已规范化的邮箱
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") || len(email) < 5 {
		return errors.New("Invalid email format")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("The email %s is invalid, provide a correct one", email)
	}
	return nil
}

// ValidatePassword 至少 8 位，且包含大写、小写、数字和特殊字符
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < passwordMin {
		return fmt.Errorf("Password must be at least %d characters", passwordMin)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsNumber(r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("Password must contain at least one uppercase letter")
	}
	if !hasDigit {
		return errors.New("Password must contain at least one number")
	}
	if !hasLower || !hasSpecial {
		return errors.New("Password must contain uppercase, lowercase, number, and special character")
	}
	return nil
}

// NormalizeBio 空串视为清空；非空时至少 10 个字符
func NormalizeBio(bio string) (*string, error) {
	if bio == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(bio) < bioMin {
		return nil, fmt.Errorf("bio too short, at least %d characters", bioMin)
	}
	return &bio, nil
}

// NormalizeImage 空串视为清空；非空时必须是 http(s) 地址
func NormalizeImage(image string) (*string, error) {
	if image == "" {
		return nil, nil
	}
	if !strings.HasPrefix(image, "http") {
		return nil, errors.New("Invalid image!")
	}
	return &image, nil
}

// HashEmail 邮箱的 sha256 十六进制摘要
func HashEmail(email string) string {
	sum := sha256.Sum256([]byte(email))
	return hex.EncodeToString(sum[:])
}

// HashPassword bcrypt 加密
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("密码加密失败: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword 校验明文与 bcrypt 摘要是否匹配
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
