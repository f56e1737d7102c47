// Package docs Conduit API 文档，由 swag 注解生成后手工精简
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/articles": {
            "get": {"tags": ["articles"], "summary": "文章列表", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["articles"], "summary": "创建文章", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "参数错误"}, "401": {"description": "未登录"}, "409": {"description": "标题重复"}}}
        },
        "/api/articles/{slug}": {
            "get": {"tags": ["articles"], "summary": "文章详情", "responses": {"200": {"description": "OK"}, "404": {"description": "文章不存在"}}},
            "put": {"tags": ["articles"], "summary": "修改文章", "responses": {"200": {"description": "OK"}, "403": {"description": "不是作者"}}},
            "delete": {"tags": ["articles"], "summary": "删除文章", "responses": {"200": {"description": "OK"}, "404": {"description": "文章不存在"}}}
        },
        "/api/articles/{slug}/comments": {
            "get": {"tags": ["comments"], "summary": "获取文章的评论", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["comments"], "summary": "发表评论", "responses": {"200": {"description": "OK"}, "400": {"description": "评论为空"}}}
        },
        "/api/articles/{slug}/comments/{id}": {
            "delete": {"tags": ["comments"], "summary": "删除自己的评论", "responses": {"200": {"description": "OK"}, "404": {"description": "评论不存在"}}}
        },
        "/api/articles/{slug}/favorite": {
            "post": {"tags": ["articles"], "summary": "收藏/取消收藏文章", "responses": {"200": {"description": "OK"}}}
        },
        "/api/profiles/{user_id}": {
            "get": {"tags": ["profiles"], "summary": "获取用户资料", "responses": {"200": {"description": "OK"}, "404": {"description": "用户不存在"}}}
        },
        "/api/profiles/{user_id}/articles": {
            "get": {"tags": ["articles"], "summary": "个人主页文章", "responses": {"200": {"description": "OK"}}}
        },
        "/api/profiles/{user_id}/follow": {
            "post": {"tags": ["profiles"], "summary": "关注/取消关注用户", "responses": {"200": {"description": "OK"}, "400": {"description": "不能关注自己"}}}
        },
        "/api/tags": {
            "get": {"tags": ["articles"], "summary": "热门标签", "responses": {"200": {"description": "OK"}}}
        },
        "/api/user": {
            "get": {"tags": ["auth"], "summary": "获取当前用户信息", "responses": {"200": {"description": "OK"}, "401": {"description": "未登录"}}},
            "put": {"tags": ["auth"], "summary": "更新设置", "responses": {"200": {"description": "OK"}, "409": {"description": "邮箱已被注册"}}}
        },
        "/api/users": {
            "post": {"tags": ["auth"], "summary": "注册", "responses": {"200": {"description": "OK"}, "409": {"description": "邮箱或用户名已存在"}}}
        },
        "/api/users/login": {
            "post": {"tags": ["auth"], "summary": "登录", "responses": {"200": {"description": "OK"}, "401": {"description": "邮箱或密码错误"}, "429": {"description": "尝试次数过多"}}}
        },
        "/api/users/logout": {
            "post": {"tags": ["auth"], "summary": "用户退出登录", "responses": {"200": {"description": "OK"}}}
        },
        "/api/refresh": {
            "post": {"tags": ["auth"], "summary": "刷新访问令牌", "responses": {"200": {"description": "OK"}, "401": {"description": "刷新令牌无效"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Conduit API",
	Description:      "Conduit 博客平台接口：用户、文章、评论、关注与收藏",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
