package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keygate/keygate/internal/auth"
	"github.com/keygate/keygate/internal/catalog"
	"github.com/keygate/keygate/internal/ledger"
	"github.com/keygate/keygate/internal/storage"
	"github.com/keygate/keygate/internal/storage/memkv"
)

// fakeIO scripts user input and captures all output.
type fakeIO struct {
	inputs    []string
	passwords []string
	out       strings.Builder
}

func (f *fakeIO) Println(a ...any) {
	fmt.Fprintln(&f.out, a...)
}

func (f *fakeIO) Printf(format string, a ...any) {
	fmt.Fprintf(&f.out, format, a...)
}

func (f *fakeIO) ReadInput(prompt string) (string, error) {
	if len(f.inputs) == 0 {
		return "", fmt.Errorf("no scripted input for prompt %q", prompt)
	}
	input := f.inputs[0]
	f.inputs = f.inputs[1:]
	return input, nil
}

func (f *fakeIO) ReadPassword(prompt string) (string, error) {
	if len(f.passwords) == 0 {
		return "", fmt.Errorf("no scripted password for prompt %q", prompt)
	}
	password := f.passwords[0]
	f.passwords = f.passwords[1:]
	return password, nil
}

func newTestCli(io *fakeIO) *Cli {
	kv := memkv.New()
	accounts := storage.NewAccountStore(kv)
	sessions := storage.NewSessionStore(kv)
	cat := catalog.Default()
	l := ledger.New(accounts, cat)
	svc := auth.NewService(accounts, sessions, l, cat)
	return New(io, svc, cat)
}

func TestRun_RegisterLoginStatus(t *testing.T) {
	ctx := context.Background()
	io := &fakeIO{
		inputs:    []string{"alice", "DEMO-1234-ABCD-5678"},
		passwords: []string{"secret1", "secret1"},
	}
	c := newTestCli(io)

	require.NoError(t, c.Run(ctx, "register", nil))
	assert.Contains(t, io.out.String(), "Registration successful!")
	assert.Contains(t, io.out.String(), "DEMO-1234-ABCD-5678")

	io.inputs = []string{"alice"}
	io.passwords = []string{"secret1"}
	require.NoError(t, c.Run(ctx, "login", nil))
	assert.Contains(t, io.out.String(), "Login successful!")
	assert.Contains(t, io.out.String(), "Keys:        1 active / 1 total")

	require.NoError(t, c.Run(ctx, "status", nil))
	assert.Contains(t, io.out.String(), "Status: Logged in")
}

func TestRun_RegisterPasswordMismatch(t *testing.T) {
	ctx := context.Background()
	io := &fakeIO{
		inputs:    []string{"alice", "DEMO-1234-ABCD-5678"},
		passwords: []string{"secret1", "different"},
	}
	c := newTestCli(io)

	err := c.Run(ctx, "register", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")
}

func TestRun_RedeemAndKeys(t *testing.T) {
	ctx := context.Background()
	io := &fakeIO{
		inputs:    []string{"alice", "DEMO-1234-ABCD-5678", "alice"},
		passwords: []string{"secret1", "secret1", "secret1"},
	}
	c := newTestCli(io)

	require.NoError(t, c.Run(ctx, "register", nil))
	require.NoError(t, c.Run(ctx, "login", nil))

	require.NoError(t, c.Run(ctx, "redeem", []string{"STND-30AB-77CD-EF19"}))
	assert.Contains(t, io.out.String(), "Key redeemed!")

	require.NoError(t, c.Run(ctx, "keys", nil))
	assert.Contains(t, io.out.String(), "STND-30AB-77CD-EF19  [active]  standard/1month")
}

func TestRun_StatusNotLoggedIn(t *testing.T) {
	ctx := context.Background()
	io := &fakeIO{}
	c := newTestCli(io)

	require.NoError(t, c.Run(ctx, "status", nil))
	assert.Contains(t, io.out.String(), "Status: Not logged in")
}

func TestRun_CatalogMasksCodes(t *testing.T) {
	ctx := context.Background()
	io := &fakeIO{}
	c := newTestCli(io)

	require.NoError(t, c.Run(ctx, "catalog", nil))
	assert.Contains(t, io.out.String(), "DEMO-****-****-****")
	assert.NotContains(t, io.out.String(), "DEMO-1234-ABCD-5678")
}

func TestRun_UnknownCommand(t *testing.T) {
	ctx := context.Background()
	c := newTestCli(&fakeIO{})

	err := c.Run(ctx, "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
