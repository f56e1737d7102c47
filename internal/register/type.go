package register

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" form:"name" example:"Jane Doe"`                // 显示名
	Email    string `json:"email" form:"email" example:"jane@example.com"`     // 邮箱
	Password string `json:"password" form:"password" example:"Secret#123"`     // 密码
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	RedirectUrl string `json:"redirect_url" example:"/"` // 重定向 URL
}
