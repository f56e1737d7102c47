package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terminal-terrace/conduit/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "login", "signup", "settings", "editor", "article", "profile", "error"}

var funcs = template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"isTrue": func(b *bool) bool {
		return b != nil && *b
	},
}

// Renderer 每个页面各自与 layout 组合成一棵模板树
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("解析页面模板 %s 失败: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render 先渲染到缓冲区，模板出错时不会写出半个页面
func (r *Renderer) Render(c *gin.Context, status int, name string, data any) {
	tmpl, ok := r.pages[name]
	if !ok {
		logger.L().Error("unknown page template", zap.String("page", name))
		c.String(500, "Internal server error")
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.L().Error("render page failed", zap.String("page", name), zap.Error(err))
		c.String(500, "Internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
