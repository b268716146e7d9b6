package app

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aussiebroadwan/cardbank/pkg/banksdk"
	"github.com/aussiebroadwan/cardbank/pkg/slogx"
)

const (
	testAdminEmail    = "root@bank.test"
	testAdminPassword = "Adm1n-passw0rd"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		JWTSecret:           strings.Repeat("j", 64),
		JWTLifetime:         time.Hour,
		CardSecret:          strings.Repeat("c", 32),
		CardBIN:             DefaultCardBIN,
		LookupTimeout:       time.Second,
		AdminEmail:          testAdminEmail,
		AdminPassword:       testAdminPassword,
		DatabaseFile:        filepath.Join(dir, "bank.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		Env:                 "test",
		ShutdownGracePeriod: 5 * time.Second,
	}
}

// serve starts app on a loopback listener and returns a client for it and a
// stop function that waits for a clean shutdown.
func serve(t *testing.T, app *Application) (*banksdk.Client, func()) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	client := banksdk.NewClient("http://" + ln.Addr().String())
	client.HTTPClient.Transport = &http.Transport{DisableKeepAlives: true}

	return client, func() {
		cancel()
		require.NoError(t, <-done)
	}
}

func TestApplication_ServeAndShutdown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	app, err := NewWithLogger(testConfig(t), slogx.Discard())
	require.NoError(t, err)

	client, stop := serve(t, app)

	ctx := t.Context()
	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, BuildVersion, ready.Version)

	session, err := client.Login(ctx, testAdminEmail, testAdminPassword)
	require.NoError(t, err)

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, testAdminEmail, me.Email)
	require.Equal(t, "ROLE_ADMIN", me.Role)
	require.Equal(t, "Administrator", me.DisplayName)

	card, err := session.CreateCard(ctx, banksdk.CreateCardRequest{HolderName: "Root"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(card.MaskedNumber, DefaultCardBIN))

	stop()
}

func TestApplication_RestartKeepsState(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cfg := testConfig(t)

	first, err := NewWithLogger(cfg, slogx.Discard())
	require.NoError(t, err)
	client, stop := serve(t, first)
	_, err = client.Register(t.Context(), banksdk.RegisterRequest{
		Email:       "ada@bank.test",
		DisplayName: "Ada",
		Password:    "correct-horse-battery",
	})
	require.NoError(t, err)
	stop()

	// Bootstrap is skipped once users exist; the pepper and database are reused.
	cfg.AdminEmail = "other@bank.test"
	second, err := NewWithLogger(cfg, slogx.Discard())
	require.NoError(t, err)
	client, stop = serve(t, second)
	defer stop()

	_, err = client.Login(t.Context(), "ada@bank.test", "correct-horse-battery")
	require.NoError(t, err)

	_, err = client.Login(t.Context(), "other@bank.test", testAdminPassword)
	require.ErrorIs(t, err, banksdk.ErrInvalidCredentials)
}

func TestApplication_ShutdownWithoutServe(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	app, err := NewWithLogger(testConfig(t), slogx.Discard())
	require.NoError(t, err)
	require.NotNil(t, app.Handler())
	require.NoError(t, app.Shutdown())
}

func TestNew_InvalidKeys(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWTSecret = ""

	_, err := NewWithLogger(cfg, slogx.Discard())
	require.ErrorContains(t, err, "failed to derive keys")
}
