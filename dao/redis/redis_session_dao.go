package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"booking-widget/config"
	"booking-widget/db"
	"booking-widget/models"

	"github.com/rs/zerolog/log"
)

// ErrSessionNotFound is returned when a session id has no stored snapshot.
var ErrSessionNotFound = errors.New("session not found")

// RedisSessionDAO stores booking widget snapshots in Redis.
type RedisSessionDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisSessionDAO initializes a RedisSessionDAO. Every write refreshes the ttl.
func NewRedisSessionDAO(client db.RedisClient, ttl time.Duration) *RedisSessionDAO {
	return &RedisSessionDAO{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(config.SESSION_KEY_FORMAT_V1, sessionID)
}

// UpsertSession stores the snapshot under the session id.
func (dao *RedisSessionDAO) UpsertSession(sessionID string, snapshot models.WidgetSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", sessionID, err)
	}
	if err := dao.client.Set(sessionKey(sessionID), string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set session in redis: %w", err)
	}
	return nil
}

// GetSession retrieves the snapshot for a session id.
func (dao *RedisSessionDAO) GetSession(sessionID string) (*models.WidgetSnapshot, error) {
	str, err := dao.client.Get(sessionKey(sessionID))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}
	var snapshot models.WidgetSnapshot
	if err := json.Unmarshal([]byte(str), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session JSON: %w", err)
	}
	return &snapshot, nil
}

// Ping checks that the session store is reachable.
func (dao *RedisSessionDAO) Ping() error {
	return dao.client.Ping()
}

// DeleteSession removes the snapshot. Unknown ids return ErrSessionNotFound.
func (dao *RedisSessionDAO) DeleteSession(sessionID string) error {
	exists, err := dao.client.Exists(sessionKey(sessionID))
	if err != nil {
		return fmt.Errorf("failed to check session %s: %w", sessionID, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err := dao.client.Del(sessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	log.Debug().Str("component", "RedisSessionDAO").Str("session_id", sessionID).Msg("deleted session")
	return nil
}
