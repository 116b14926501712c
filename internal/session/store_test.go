package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medichat/medichat-client/internal/domain"
	"github.com/medichat/medichat-client/internal/logger"
)

func init() {
	_ = logger.InitWithConfig(logger.Config{Level: logger.LevelError, OutputPath: "stderr", Format: "text"})
}

func newFileStore(t *testing.T) *Store {
	t.Helper()
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	return NewStore(backend)
}

func TestStore_LoginLogout(t *testing.T) {
	store := newFileStore(t)

	assert.False(t, store.IsLoggedIn())
	assert.Empty(t, store.Token())

	user := &domain.User{ID: "u-7", Username: "alice", Email: "alice@example.com"}
	require.NoError(t, store.Login(user, "tok-123"))

	assert.True(t, store.IsLoggedIn())
	assert.Equal(t, "tok-123", store.Token())
	assert.Equal(t, "alice", store.Current().User.Username)
	assert.False(t, store.IsAdmin())

	require.NoError(t, store.Logout())
	assert.False(t, store.IsLoggedIn())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Current().User)
}

// isLoggedIn must track the most recent login/logout call, whatever the
// sequence.
func TestStore_LoginLogoutSequences(t *testing.T) {
	store := newFileStore(t)
	user := &domain.User{ID: "u-1", Username: "bob", Email: "bob@example.com"}

	steps := []struct {
		login bool
		want  bool
	}{
		{login: true, want: true},
		{login: true, want: true},
		{login: false, want: false},
		{login: false, want: false},
		{login: true, want: true},
		{login: false, want: false},
	}

	for i, step := range steps {
		if step.login {
			require.NoError(t, store.Login(user, "tok"))
		} else {
			require.NoError(t, store.Logout())
		}
		assert.Equal(t, step.want, store.IsLoggedIn(), "step %d", i)
	}
}

func TestStore_RestoresPersistedSession(t *testing.T) {
	dir := t.TempDir()

	backend, err := NewFileBackend(dir)
	require.NoError(t, err)
	store := NewStore(backend)
	user := &domain.User{ID: "u-2", Username: "carol", Email: "carol@example.com"}
	require.NoError(t, store.Login(user, "persisted-tok"))

	// A fresh store over the same directory sees the previous login
	backend2, err := NewFileBackend(dir)
	require.NoError(t, err)
	restored := NewStore(backend2)

	assert.True(t, restored.IsLoggedIn())
	assert.Equal(t, "persisted-tok", restored.Token())
	require.NotNil(t, restored.Current().User)
	assert.Equal(t, "carol", restored.Current().User.Username)
}

func TestStore_AdminLogin(t *testing.T) {
	store := newFileStore(t)

	require.NoError(t, store.LoginAdmin("admin-tok"))
	assert.True(t, store.IsLoggedIn())
	assert.True(t, store.IsAdmin())
	assert.Nil(t, store.Current().User)

	require.NoError(t, store.Logout())
	assert.False(t, store.IsAdmin())
}
