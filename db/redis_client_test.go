package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-widget/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test the Set and Get methods for both MockRedisClient and GoRedisClient
func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
		// Replace with a real Redis client configuration for integration testing
		// {"GoRedisClient", db.NewGoRedisClient(context.Background(), realRedisClient)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key := "test-key"
			value := "test-value"

			require.NoError(t, test.client.Set(key, value, 0))

			retrieved, err := test.client.Get(key)
			require.NoError(t, err)
			assert.Equal(t, value, retrieved)

			exists, err := test.client.Exists(key)
			require.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

func TestRedisClient_GetMissingKey(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	_, err := client.Get("missing")

	assert.True(t, errors.Is(err, db.ErrKeyNotFound))
}

func TestRedisClient_Del(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	require.NoError(t, client.Set("k", "v", 0))

	require.NoError(t, client.Del("k"))

	exists, err := client.Exists("k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMockRedisClient_Expiry(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	client.SetClock(func() time.Time { return now })

	require.NoError(t, client.Set("session", "v", time.Minute))

	now = now.Add(59 * time.Second)
	_, err := client.Get("session")
	assert.NoError(t, err)

	now = now.Add(time.Second)
	_, err = client.Get("session")
	assert.True(t, errors.Is(err, db.ErrKeyNotFound))
}

func TestRedisClient_Ping(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	assert.NoError(t, client.Ping())
}
