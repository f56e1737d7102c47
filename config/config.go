// config/config.go - 配置管理文件
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	Conf *AppConfig
	once sync.Once
	k    *koanf.Koanf
)

// 部署时沿用的独立环境变量，映射到配置键
var envAliases = map[string]string{
	"DATABASE_URL": "database.url",
	"JWT_SECRET":   "jwt.secret",
	"API_URL":      "server.api_url",
	"ENVIRONMENT":  "server.environment",
}

// Load 加载配置文件
func Load(configPath string) error {
	var err error
	once.Do(func() {
		// 首先加载 .env 文件到环境变量
		if envErr := godotenv.Load(); envErr != nil {
			log.Printf("警告: 无法加载 .env 文件: %v", envErr)
		}

		k = koanf.New(".")
		Conf, err = load(k, configPath)
	})

	return err
}

func load(k *koanf.Koanf, configPath string) (*AppConfig, error) {
	// 先加载配置文件
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("加载配置文件失败: %w", err)
	}

	// 再加载环境变量（覆盖配置文件）
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		log.Printf("加载环境变量失败: %v", err)
	}

	// 解析到结构体
	conf := &AppConfig{}
	if err := k.Unmarshal("", conf); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	applyDefaults(conf)
	if err := validate(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// envKey SERVER_PORT -> server.port；别名优先
func envKey(s string) string {
	if key, ok := envAliases[s]; ok {
		return key
	}
	return strings.ReplaceAll(strings.ToLower(s), "_", ".")
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.APIURL == "" {
		c.Server.APIURL = "http://localhost:3000"
	}
	if c.Server.Environment == "" {
		c.Server.Environment = EnvDevelopment
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "debug"
		if c.Server.IsProduction() {
			c.Server.Mode = "release"
		}
	}
	// 转换时间单位
	c.Server.ReadTimeout = orDefault(c.Server.ReadTimeout, 15) * time.Second
	c.Server.WriteTimeout = orDefault(c.Server.WriteTimeout, 15) * time.Second
	c.Server.ShutdownTimeout = orDefault(c.Server.ShutdownTimeout, 10) * time.Second

	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
		if c.Server.IsProduction() {
			c.Log.Format = "json"
		}
	}

	if c.Seed.BaseURL == "" {
		c.Seed.BaseURL = "https://dev.to/api"
	}
	if c.Seed.Pages == 0 {
		c.Seed.Pages = 100
	}
	if c.Seed.PerPage == 0 {
		c.Seed.PerPage = 50
	}
	c.Seed.Interval = orDefault(c.Seed.Interval, 1000) * time.Millisecond
	if c.Seed.UserAgent == "" {
		c.Seed.UserAgent = "Mozilla/5.0 (compatible; ConduitSeeder/1.0)"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

func orDefault(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}

func validate(c *AppConfig) error {
	switch c.Server.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("未知的运行环境: %q", c.Server.Environment)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret (JWT_SECRET) 不能为空")
	}
	return nil
}

// MustLoad 加载配置，失败则退出
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
}

// GetString 获取字符串配置
func GetString(key string) string {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.String(key)
}

// GetInt 获取整数配置
func GetInt(key string) int {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.Int(key)
}

// GetBool 获取布尔配置
func GetBool(key string) bool {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.Bool(key)
}

// Path 返回配置文件路径，CONFIG_PATH 优先
func Path(def string) string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return def
}
