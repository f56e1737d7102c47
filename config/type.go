package config

import "time"

// AppConfig 应用配置结构
type AppConfig struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Log      LogConfig      `koanf:"log"`
	JWT      JWTConfig      `koanf:"jwt"`
	Seed     SeedConfig     `koanf:"seed"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Mode            string        `koanf:"mode"` // debug, release
	Environment     string        `koanf:"environment"`
	APIURL          string        `koanf:"api_url"`
	AllowedOrigins  []string      `koanf:"allowed_origins"`
	// TrustedProxies 为空时 ClientIP 只取连接地址，不读 X-Forwarded-For
	TrustedProxies  []string      `koanf:"trusted_proxies"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`     // 秒
	WriteTimeout    time.Duration `koanf:"write_timeout"`    // 秒
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // 秒
}

// IsProduction 生产环境下 cookie 带 Secure，日志输出 JSON
func (s ServerConfig) IsProduction() bool {
	return s.Environment == EnvProduction
}

type DatabaseConfig struct {
	Driver       string `koanf:"driver"` // postgres, sqlite
	URL          string `koanf:"url"`    // DATABASE_URL
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"`
	SSLMode      bool   `koanf:"sslmode"`
	LogLevel     string `koanf:"log_level"` // 数据库日志级别
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	MaxLifetime  int    `koanf:"max_lifetime"` // 秒
}

type RedisConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, console
}

type JWTConfig struct {
	Secret string `koanf:"secret"`
}

type SeedConfig struct {
	BaseURL   string        `koanf:"base_url"`
	Pages     int           `koanf:"pages"`
	PerPage   int           `koanf:"per_page"`
	Interval  time.Duration `koanf:"interval"` // 毫秒
	UserAgent string        `koanf:"user_agent"`
}

type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}
