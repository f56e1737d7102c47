package pkg

import (
	"fmt"
	"strings"
	"unicode/utf8"

	random "github.com/mazen160/go-random"
)

const (
	usernameSuffixLen = 7
	usernameMin       = 4
	usernameMax       = 30
	usernameKeep      = 20
)

// GenerateUsername 由显示名生成用户名：first_last_xxxxxxx / first_xxxxxxx
func GenerateUsername(name string) (string, error) {
	suffix, err := random.String(usernameSuffixLen)
	if err != nil {
		return "", fmt.Errorf("生成用户名后缀失败: %w", err)
	}
	return buildUsername(name, suffix), nil
}

func buildUsername(name, suffix string) string {
	words := strings.Fields(name)

	var username string
	switch len(words) {
	case 0:
		username = suffix
	case 1:
		username = strings.ToLower(words[0]) + "_" + suffix
	default:
		username = strings.ToLower(words[0]) + "_" + strings.ToLower(words[1]) + "_" + suffix
	}

	switch n := utf8.RuneCountInString(username); {
	case n < usernameMin:
		return "user_" + suffix
	case n > usernameMax:
		return string([]rune(username)[:usernameKeep]) + "_" + suffix
	default:
		return username
	}
}
