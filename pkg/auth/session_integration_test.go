//go:build integration

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/wardrobe/pkg/testutil/containers"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *containers.RedisContainer) {
	t.Helper()
	rc := containers.NewRedisContainer(t)
	require.NoError(t, rc.FlushAll(context.Background()))
	store := NewSessionStore(rc.Client, SessionOptions{
		AuthKey:       []byte("test-auth-key-must-be-32-bytes!!"),
		EncryptionKey: []byte("test-enc-key-must-be-32-bytes!!!"),
		TTL:           ttl,
	})
	return store, rc
}

func TestRedisStore_SignInRoundTrip(t *testing.T) {
	store, rc := newRedisStore(t, time.Hour)
	userID := uuid.New()

	req := signedInRequest(t, store, userID)

	keys, err := rc.Client.Keys(context.Background(), "wardrobe:session:*").Result()
	require.NoError(t, err)
	require.Len(t, keys, 1)

	ttl, err := rc.Client.TTL(context.Background(), keys[0]).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	var got uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UserIDFromCtx(r.Context())
	})
	w := httptest.NewRecorder()
	RequireAuth(store, newTestLogger())(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, got)
}

func TestRedisStore_SignOutDeletesKey(t *testing.T) {
	store, rc := newRedisStore(t, time.Hour)
	req := signedInRequest(t, store, uuid.New())

	w := httptest.NewRecorder()
	require.NoError(t, SignOut(store, w, req))

	n, err := rc.Client.DBSize(context.Background()).Result()
	require.NoError(t, err)
	assert.Zero(t, n)

	w = httptest.NewRecorder()
	RequireAuth(store, newTestLogger())(http.NotFoundHandler()).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRedisStore_ExpiredKeyIsSignedOut(t *testing.T) {
	store, rc := newRedisStore(t, time.Hour)
	req := signedInRequest(t, store, uuid.New())

	require.NoError(t, rc.FlushAll(context.Background()))

	sess, err := store.New(req, sessionName)
	require.NoError(t, err)
	assert.True(t, sess.IsNew)
	assert.Empty(t, sess.Values)
}

func TestRedisStore_ForgedCookie(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/api/clothes", http.NoBody)
	req.AddCookie(&http.Cookie{Name: sessionName, Value: "not-a-signed-value"})

	sess, err := store.New(req, sessionName)
	require.NoError(t, err)
	assert.True(t, sess.IsNew)
}
