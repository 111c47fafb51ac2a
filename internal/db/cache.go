package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	interf "github.com/glkeru/loyalty/checkout/internal/interfaces"
	model "github.com/glkeru/loyalty/checkout/internal/models"
	redis "github.com/redis/go-redis/v9"
)

const memberTTL = 5 * time.Minute

type CacheService struct {
	client *redis.Client
}

var _ interf.CacheStorage = (*CacheService)(nil)

func NewCacheService(ctx context.Context, addr, user, pwd string) (serv *CacheService, err error) {
	if addr == "" {
		return nil, fmt.Errorf("env CHECKOUT_CACHE_URL is not set")
	}
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{db}, nil
}

func memberKey(email string) string {
	return "member:" + email
}

func (c *CacheService) GetMember(ctx context.Context, email string) (m model.LoyaltyMember, err error) {
	val, err := c.client.Get(ctx, memberKey(email)).Bytes()
	if err == redis.Nil {
		return m, model.ErrNotFound
	} else if err != nil {
		return m, err
	}

	err = json.Unmarshal(val, &m)
	if err != nil {
		return m, err
	}
	return m, nil
}

func (c *CacheService) SetMember(ctx context.Context, m model.LoyaltyMember) error {
	val, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, memberKey(m.Email), val, memberTTL).Err()
}

func (c *CacheService) InvalidateMember(ctx context.Context, email string) error {
	return c.client.Del(ctx, memberKey(email)).Err()
}

func (c *CacheService) Close() error {
	return c.client.Close()
}
