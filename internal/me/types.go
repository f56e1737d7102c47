package me

// UserInfoResponse 用户信息响应
type UserInfoResponse struct {
	ID       string  `json:"id" example:"6f1c1c2e-8d4e-4f51-9d3b-0c6c1f6f3a10"`
	Name     string  `json:"name" example:"Jane Doe"`
	Username string  `json:"username" example:"jane_doe_Ab3dE5f"`
	Email    string  `json:"email" example:"jane@example.com"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}
