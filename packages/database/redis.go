package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPingTimeout = 5 * time.Second

// RedisConfig Redis 配置
type RedisConfig struct {
	ServiceName  string        // 服务名称，用于日志标识
	Host         string        // Redis 地址
	Port         int           // Redis 端口
	Addr         string        // host:port，设置后忽略 Host/Port（测试用 miniredis）
	Password     string        // Redis 密码，空串表示不鉴权
	DB           int           // Redis 数据库编号
	PoolSize     int           // 连接池大小
	MinIdleConns int           // 最小空闲连接数
	MaxConnAge   time.Duration // 连接最大生命周期
	Logger       *zap.Logger
}

func (c *RedisConfig) address() string {
	if c.Addr != "" {
		return c.Addr
	}
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *RedisConfig) options() *redis.Options {
	return &redis.Options{
		Addr:            c.address(),
		Password:        c.Password,
		DB:              c.DB,
		PoolSize:        c.PoolSize,
		MinIdleConns:    c.MinIdleConns,
		ConnMaxLifetime: c.MaxConnAge,
	}
}

// RedisClient 刷新令牌与标签缓存共用的客户端
type RedisClient struct {
	*redis.Client
}

// InitRedis 建立连接并 PING 一次，失败时关闭客户端
func InitRedis(config *RedisConfig) (*RedisClient, error) {
	if config == nil {
		return nil, fmt.Errorf("配置不能为空")
	}
	setRedisDefaults(config)

	client := &RedisClient{Client: redis.NewClient(config.options())}

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Healthy(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}

	config.Logger.Info("redis connected",
		zap.String("service", config.ServiceName),
		zap.String("addr", config.address()),
		zap.Int("db", config.DB),
	)
	return client, nil
}

// Healthy 健康检查
func (c *RedisClient) Healthy(ctx context.Context) error {
	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("连接 Redis 失败: %w", err)
	}
	return nil
}

func setRedisDefaults(c *RedisConfig) {
	if c.ServiceName == "" {
		c.ServiceName = "conduit"
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 6379
	}
	if c.PoolSize == 0 {
		c.PoolSize = 10
	}
	if c.MinIdleConns == 0 {
		c.MinIdleConns = 2
	}
	if c.MaxConnAge == 0 {
		c.MaxConnAge = time.Hour
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}
