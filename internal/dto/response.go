package dto

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"terminal-terrace/conduit/internal/logger"
	res "terminal-terrace/conduit/packages/response"
)

// Response 统一响应格式
type Response struct {
	Code    int    `json:"code" example:"100"`        // 状态码：100-成功，其他-失败
	Message string `json:"message" example:"success"` // 响应消息
	Data    any    `json:"data,omitempty"`            // 响应数据
}

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(200, res.SuccessResponse(data))
}

// ErrorResponse 按业务码写出对应的 HTTP 状态码
func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	if err.Code == res.InternalError {
		logger.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("msg", err.Msg),
			zap.Error(err.Err),
		)
	}
	c.JSON(err.Code.HTTPStatus(), res.FromError(err))
}

// ValidationErrorResponse 处理验证错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, err error) {
	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.ParseError),
		res.WithErrorMessage(ValidationMessage(err)),
	))
}

// ValidationMessage 把 validator 错误翻译成一句话
func ValidationMessage(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return "Invalid request: " + err.Error()
	}

	// 只报告第一个错误
	firstErr := validationErrs[0]
	jsonField := toSnakeCase(firstErr.Field())

	switch firstErr.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", jsonField)
	case "max":
		return fmt.Sprintf("Field '%s' must be at most %s characters", jsonField, firstErr.Param())
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s characters", jsonField, firstErr.Param())
	case "oneof":
		return fmt.Sprintf("Field '%s' must be one of: %s", jsonField, firstErr.Param())
	case "email":
		return fmt.Sprintf("Field '%s' must be an email address", jsonField)
	default:
		return fmt.Sprintf("Field '%s' failed validation: %s", jsonField, firstErr.Tag())
	}
}

// toSnakeCase 将PascalCase转换为snake_case
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
