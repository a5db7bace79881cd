package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/renanrespassos/app-demanda-lab/config"
)

// Client Redis 客户端封装
// 当前用于核算报表快照缓存；后续可扩展分布式锁等场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 报表快照缓存 ──

const reportPrefix = "report:reconciliation:"

// GetReport 读取缓存的报表快照 JSON；未命中返回 ("", nil)
func (c *Client) GetReport(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, reportPrefix+key).Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetReport 写入报表快照 JSON，TTL 过期后自动失效（无需主动失效广播）
func (c *Client) SetReport(ctx context.Context, key, payload string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // 缓存关闭
	}
	return c.rdb.Set(ctx, reportPrefix+key, payload, ttl).Err()
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
