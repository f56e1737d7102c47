package login

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" form:"email" example:"jane@example.com"` // 邮箱
	Password string `json:"password" form:"password" example:"Secret#123"` // 密码
}

// LoginResponse 登录响应
type LoginResponse struct {
	RedirectUrl string `json:"redirect_url" example:"/"` // 重定向 URL
}
