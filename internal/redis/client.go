package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb        *redis.Client
	sessionTTL time.Duration
	debtTTL    time.Duration
}

type SessionData struct {
	UserID   uint      `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	LoginAt  time.Time `json:"login_at"`
}

func Initialize(redisURL string, sessionTTL, debtTTL time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, sessionTTL: sessionTTL, debtTTL: debtTTL}, nil
}

// Session management
func (c *Client) SaveSession(username string, userID uint, role string) error {
	ctx := context.Background()
	data := SessionData{
		UserID:   userID,
		Username: username,
		Role:     role,
		LoginAt:  time.Now(),
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}
	return c.rdb.Set(ctx, "session:"+username, jsonData, c.sessionTTL).Err()
}

func (c *Client) GetSession(username string) (*SessionData, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+username).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}
	return &session, nil
}

func (c *Client) DeleteSession(username string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+username).Err()
}

// Token revocation
func (c *Client) RevokeToken(tokenString string, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "revoked:"+tokenString, 1, ttl).Err()
}

func (c *Client) IsTokenRevoked(tokenString string) bool {
	ctx := context.Background()
	exists, err := c.rdb.Exists(ctx, "revoked:"+tokenString).Result()
	if err != nil {
		// Fail open: a cache outage must not lock everyone out.
		return false
	}
	return exists > 0
}

// Customer debt snapshot cache
func (c *Client) GetCustomerDebt(customerID uint) (float64, bool) {
	ctx := context.Background()
	key := fmt.Sprintf("debt:%d", customerID)
	val, err := c.rdb.Get(ctx, key).Float64()
	if err != nil {
		return 0, false
	}
	return val, true
}

func (c *Client) SetCustomerDebt(customerID uint, debt float64) {
	ctx := context.Background()
	key := fmt.Sprintf("debt:%d", customerID)
	c.rdb.Set(ctx, key, debt, c.debtTTL)
}

func (c *Client) InvalidateCustomerDebt(customerID uint) {
	ctx := context.Background()
	key := fmt.Sprintf("debt:%d", customerID)
	c.rdb.Del(ctx, key)
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
