package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate 唯一约束冲突
var ErrDuplicate = errors.New("duplicate key")

// ErrForeignKey 外键约束失败，被引用的行不存在
var ErrForeignKey = errors.New("foreign key violation")

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// DuplicateError 唯一约束冲突，Column 为能识别出的列名（可能为空）
type DuplicateError struct {
	Column string
	Err    error
}

func (e *DuplicateError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("duplicate key: %v", e.Err)
	}
	return fmt.Sprintf("duplicate key on %s: %v", e.Column, e.Err)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

func (e *DuplicateError) Unwrap() error {
	return e.Err
}

// TranslateError 把各驱动的唯一约束错误统一成 *DuplicateError，其它错误原样返回
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &DuplicateError{Column: columnFromConstraint(pgErr.ConstraintName), Err: err}
	}

	// sqlite: "UNIQUE constraint failed: users.email"
	msg := err.Error()
	if idx := strings.Index(msg, "UNIQUE constraint failed:"); idx >= 0 {
		target := strings.TrimSpace(msg[idx+len("UNIQUE constraint failed:"):])
		if comma := strings.Index(target, ","); comma >= 0 {
			target = target[:comma]
		}
		if dot := strings.LastIndex(target, "."); dot >= 0 {
			target = target[dot+1:]
		}
		return &DuplicateError{Column: target, Err: err}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateError{Err: err}
	}

	return err
}

// DuplicateColumn 返回冲突列名；不是唯一约束错误时 ok 为 false
func DuplicateColumn(err error) (string, bool) {
	var dup *DuplicateError
	if errors.As(TranslateError(err), &dup) {
		return dup.Column, true
	}
	return "", false
}

// IsForeignKeyViolation 插入引用了不存在的行
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrForeignKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	// sqlite: "FOREIGN KEY constraint failed"
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// columnFromConstraint 从 postgres 约束名推断列名
// gorm 生成的唯一索引形如 idx_users_email，postgres 默认形如 users_email_key
func columnFromConstraint(name string) string {
	name = strings.TrimSuffix(name, "_key")
	name = strings.TrimPrefix(name, "idx_")
	for _, table := range []string{"users_", "articles_", "tags_"} {
		if strings.HasPrefix(name, table) {
			return strings.TrimPrefix(name, table)
		}
	}
	return name
}
