package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keygate/keygate/internal/auth"
	"github.com/keygate/keygate/internal/catalog"
	"github.com/keygate/keygate/internal/ledger"
	"github.com/keygate/keygate/internal/storage"
	"github.com/keygate/keygate/internal/storage/memkv"
	"github.com/keygate/keygate/internal/validation"
)

type fixture struct {
	accounts *storage.AccountStore
	ledger   *ledger.Ledger
	auth     *auth.Service
	now      time.Time
}

func setup(t *testing.T) *fixture {
	t.Helper()
	kv := memkv.New()
	accounts := storage.NewAccountStore(kv)
	sessions := storage.NewSessionStore(kv)
	cat := catalog.Default()
	l := ledger.New(accounts, cat)
	svc := auth.NewService(accounts, sessions, l, cat)

	f := &fixture{accounts: accounts, ledger: l, auth: svc, now: time.UnixMilli(1700000000000)}
	svc.SetClock(func() time.Time { return f.now })
	return f
}

func TestRegisterAndLogin_TrialKey(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	acct, err := f.auth.Register(ctx, "alice", "secret1", "DEMO-1234-ABCD-5678")
	require.NoError(t, err)
	assert.False(t, acct.IsAdmin)

	logged, dest, err := f.auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, auth.DestinationStandard, dest)
	assert.Equal(t, f.now.UnixMilli(), logged.LastLoginAt)

	// The one-day registration key is still active right after login.
	count, err := f.ledger.ActiveCount(ctx, logged, f.now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegisterAndLogin_AdminKey(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	acct, err := f.auth.Register(ctx, "bob", "secret1", "ADMN-2025-MSTR-KEYS")
	require.NoError(t, err)
	assert.True(t, acct.IsAdmin)

	_, dest, err := f.auth.Login(ctx, "bob", "secret1")
	require.NoError(t, err)
	assert.Equal(t, auth.DestinationAdmin, dest)
}

func TestRegister_KeyAlreadyUsed(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.auth.Register(ctx, "alice", "secret1", "DEMO-1234-ABCD-5678")
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, "carol", "pw12345", "DEMO-1234-ABCD-5678")
	assert.ErrorIs(t, err, ledger.ErrKeyAlreadyUsed)

	// carol was not created.
	exists, err := f.accounts.Exists(ctx, "carol")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegister_BadKeyFormat(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.auth.Register(ctx, "dave", "pw12345", "BAD-FORMAT")
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindBadFormat, verr.Kind)
}

func TestRegister_ValidatorOrder(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	// Everything is wrong; the username rejection wins because the fields
	// are validated in order and short-circuit.
	_, err := f.auth.Register(ctx, "x", "", "BAD-FORMAT")
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "username", verr.Field)
	assert.Equal(t, validation.KindTooShort, verr.Kind)

	_, err = f.auth.Register(ctx, "dave", "", "BAD-FORMAT")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
}

func TestRegister_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.auth.Register(ctx, "alice", "secret1", "DEMO-1234-ABCD-5678")
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, "alice", "other99", "STND-30AB-77CD-EF19")
	assert.ErrorIs(t, err, auth.ErrUsernameTaken)
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, _, err := f.auth.Login(ctx, "ghost", "secret1")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	_, err = f.auth.Register(ctx, "alice", "secret1", "DEMO-1234-ABCD-5678")
	require.NoError(t, err)

	_, _, err = f.auth.Login(ctx, "alice", "wrong99")
	assert.ErrorIs(t, err, auth.ErrWrongPassword)
}

func TestLogin_RefreshesExpiredKey(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.auth.Register(ctx, "alice", "secret1", "DEMO-1234-ABCD-5678")
	require.NoError(t, err)

	// Two days later the one-day key must come back inactive.
	f.now = f.now.Add(48 * time.Hour)

	acct, _, err := f.auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.False(t, acct.Keys[0].Active)

	stored, err := f.accounts.Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, stored.Keys[0].Active)
}

func TestCurrentAccount(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.auth.CurrentAccount(ctx)
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)

	_, err = f.auth.Register(ctx, "alice", "secret1", "DEMO-1234-ABCD-5678")
	require.NoError(t, err)
	_, _, err = f.auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	acct, err := f.auth.CurrentAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", acct.Username)

	// A dangling pointer resolves to not-logged-in, not an error blob.
	require.NoError(t, f.accounts.Delete(ctx, "alice"))
	_, err = f.auth.CurrentAccount(ctx)
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestLogout_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	require.NoError(t, f.auth.Logout(ctx))

	_, err := f.auth.Register(ctx, "alice", "secret1", "DEMO-1234-ABCD-5678")
	require.NoError(t, err)
	_, _, err = f.auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx))
	require.NoError(t, f.auth.Logout(ctx))

	_, err = f.auth.CurrentAccount(ctx)
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestRedeem_OnCurrentSession(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.auth.Redeem(ctx, "STND-30AB-77CD-EF19")
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)

	_, err = f.auth.Register(ctx, "alice", "secret1", "DEMO-1234-ABCD-5678")
	require.NoError(t, err)
	_, _, err = f.auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	acct, err := f.auth.Redeem(ctx, "STND-30AB-77CD-EF19")
	require.NoError(t, err)
	require.Len(t, acct.Keys, 2)

	// Redeeming an admin key later does not upgrade the account.
	acct, err = f.auth.Redeem(ctx, "ADMN-2025-MSTR-KEYS")
	require.NoError(t, err)
	assert.False(t, acct.IsAdmin)

	_, dest, err := f.auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, auth.DestinationStandard, dest)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	err := f.auth.ChangePassword(ctx, "secret1", "newpass", "newpass")
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)

	_, err = f.auth.Register(ctx, "alice", "secret1", "DEMO-1234-ABCD-5678")
	require.NoError(t, err)
	_, _, err = f.auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	err = f.auth.ChangePassword(ctx, "wrong99", "newpass", "newpass")
	assert.ErrorIs(t, err, auth.ErrWrongPassword)

	err = f.auth.ChangePassword(ctx, "secret1", "short", "short")
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindTooShort, verr.Kind)

	err = f.auth.ChangePassword(ctx, "secret1", "newpass", "different")
	assert.ErrorIs(t, err, auth.ErrPasswordMismatch)

	require.NoError(t, f.auth.ChangePassword(ctx, "secret1", "newpass", "newpass"))

	_, _, err = f.auth.Login(ctx, "alice", "secret1")
	assert.ErrorIs(t, err, auth.ErrWrongPassword)
	_, _, err = f.auth.Login(ctx, "alice", "newpass")
	require.NoError(t, err)
}
