package user

// ProfileResponse 公开资料（不含 email）
type ProfileResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" example:"Jane Doe"`
	Username string  `json:"username" example:"jane_doe_Ab3dE5f"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
	// 未登录时为 null，查看自己时为 false
	Following *bool `json:"following"`
	Followers int64 `json:"followers" example:"3"`
}

// SettingsRequest 设置页表单
type SettingsRequest struct {
	Image           string `json:"image" form:"image"`
	Bio             string `json:"bio" form:"bio"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// SettingsResponse 更新后的当前用户
type SettingsResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}
