package cache

import (
	"context"
	"time"

	"bizhub-backend/internal/database/models"

	"github.com/google/uuid"
)

const sessionKeyPrefix = "session:"

// SessionCache keeps validated sessions in redis until they expire
type SessionCache struct {
	cache *Cache
}

// NewSessionCache creates a session cache
func NewSessionCache(cache *Cache) *SessionCache {
	return &SessionCache{cache: cache}
}

// cachedSession carries the access token, which UserSession leaves out of its JSON
type cachedSession struct {
	Session     *models.UserSession `json:"session"`
	AccessToken string              `json:"access_token,omitempty"`
}

func newCachedSession(session *models.UserSession) cachedSession {
	return cachedSession{Session: session, AccessToken: session.AccessToken}
}

func (c cachedSession) session() (*models.UserSession, error) {
	if c.Session == nil {
		return nil, ErrCacheMiss
	}
	c.Session.AccessToken = c.AccessToken
	return c.Session, nil
}

// Get returns the cached session or ErrCacheMiss
func (s *SessionCache) Get(ctx context.Context, sessionID uuid.UUID) (*models.UserSession, error) {
	var cached cachedSession
	if err := s.cache.Get(ctx, SessionKey(sessionID), &cached); err != nil {
		return nil, err
	}
	return cached.session()
}

// Put caches the session until its expiry. Expired or inactive sessions are evicted instead.
func (s *SessionCache) Put(ctx context.Context, session *models.UserSession) error {
	ttl := time.Until(session.ExpiresAt)
	if !session.IsActive || ttl <= 0 {
		return s.Delete(ctx, session.SessionID)
	}
	return s.cache.Set(ctx, SessionKey(session.SessionID), newCachedSession(session), ttl)
}

// Delete evicts sessions
func (s *SessionCache) Delete(ctx context.Context, sessionIDs ...uuid.UUID) error {
	keys := make([]string, 0, len(sessionIDs))
	for _, id := range sessionIDs {
		keys = append(keys, SessionKey(id))
	}
	return s.cache.Delete(ctx, keys...)
}

// Ping checks the underlying connection
func (s *SessionCache) Ping(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

// SessionKey is the redis key of a session
func SessionKey(sessionID uuid.UUID) string {
	return sessionKeyPrefix + sessionID.String()
}
