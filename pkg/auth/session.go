// Package auth carries the signed-in user through a request: a Redis-backed
// gorilla session store, the RequireAuth middleware and context helpers.
package auth

import (
	"bytes"
	"context"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 30 * 24 * time.Hour

// SessionOptions configures a RedisStore. AuthKey must be 32 or 64 bytes;
// EncryptionKey 16, 24 or 32.
type SessionOptions struct {
	AuthKey       []byte
	EncryptionKey []byte
	// Secure marks the cookie HTTPS-only.
	Secure bool
	// TTL is both the cookie MaxAge and the idle expiry of the Redis key.
	TTL time.Duration
	// KeyPrefix defaults to "wardrobe:session:".
	KeyPrefix string
}

// RedisStore keeps session values in Redis under an opaque id. The browser
// only ever sees that id, signed and encrypted by securecookie.
//
// Every authenticated read pushes the key's expiry forward, so a session lives
// for TTL after its last use rather than after sign-in.
type RedisStore struct {
	rdb     redis.Cmdable
	codecs  []securecookie.Codec
	prefix  string
	ttl     time.Duration
	options sessions.Options
}

// NewSessionStore returns a RedisStore over rdb.
func NewSessionStore(rdb redis.Cmdable, opts SessionOptions) *RedisStore {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = "wardrobe:session:"
	}
	codecs := securecookie.CodecsFromPairs(opts.AuthKey, opts.EncryptionKey)
	for _, c := range codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			sc.MaxAge(int(ttl.Seconds()))
		}
	}
	return &RedisStore{
		rdb:    rdb,
		codecs: codecs,
		prefix: prefix,
		ttl:    ttl,
		options: sessions.Options{
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// Get returns the session cached on r, loading it on first use.
func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New always returns a usable session. A missing, forged or expired cookie
// yields a fresh one rather than an error, so callers treat it as signed out.
func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	sess := sessions.NewSession(s, name)
	opts := s.options
	sess.Options = &opts
	sess.IsNew = true

	id, ok := s.cookieID(r, name)
	if !ok {
		return sess, nil
	}
	values, err := s.fetch(r.Context(), id)
	if err != nil {
		return sess, nil
	}
	sess.ID = id
	sess.Values = values
	sess.IsNew = false
	return sess, nil
}

// Save writes the session to Redis and sets the cookie. A negative MaxAge
// deletes both.
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, sess *sessions.Session) error {
	if sess.Options.MaxAge < 0 {
		if sess.ID != "" {
			if err := s.rdb.Del(r.Context(), s.key(sess.ID)).Err(); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
		}
		http.SetCookie(w, sessions.NewCookie(sess.Name(), "", sess.Options))
		return nil
	}

	if sess.ID == "" {
		sess.ID = hex.EncodeToString(securecookie.GenerateRandomKey(32))
	}
	if err := s.store(r.Context(), sess); err != nil {
		return err
	}

	cookie, err := securecookie.EncodeMulti(sess.Name(), sess.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(sess.Name(), cookie, sess.Options))
	return nil
}

func (s *RedisStore) key(id string) string { return s.prefix + id }

func (s *RedisStore) cookieID(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil || id == "" {
		return "", false
	}
	return id, true
}

func (s *RedisStore) store(ctx context.Context, sess *sessions.Session) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(sess.Values); err != nil {
		return fmt.Errorf("encode session values: %w", err)
	}
	ttl := time.Duration(sess.Options.MaxAge) * time.Second
	if ttl <= 0 {
		ttl = s.ttl
	}
	if err := s.rdb.Set(ctx, s.key(sess.ID), buf.Bytes(), ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

var errSessionGone = errors.New("session expired")

// fetch reads the session values and slides their expiry.
func (s *RedisStore) fetch(ctx context.Context, id string) (map[interface{}]interface{}, error) {
	raw, err := s.rdb.GetEx(ctx, s.key(id), s.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errSessionGone
	}
	if err != nil {
		return nil, fmt.Errorf("fetch session: %w", err)
	}
	values := make(map[interface{}]interface{})
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&values); err != nil {
		return nil, fmt.Errorf("decode session values: %w", err)
	}
	return values, nil
}
