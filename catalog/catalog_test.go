package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/jsando/patterns/config"
	"github.com/jsando/patterns/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnv() (Env, *console.MockLog) {
	log := &console.MockLog{}
	cfg := config.Default()
	cfg.Singleton.Callers = 20
	return Env{Log: log, Config: cfg}, log
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	noop := func(context.Context, Env) error { return nil }

	require.NoError(t, r.Register(&Demo{Name: "b", Category: Structural, Pattern: "Bridge", Run: noop}))
	require.NoError(t, r.Register(&Demo{Name: "a", Category: Creational, Pattern: "Singleton", Run: noop}))
	require.NoError(t, r.Register(&Demo{Name: "c", Category: Creational, Pattern: "Builder", Run: noop}))

	t.Run("duplicate", func(t *testing.T) {
		assert.Error(t, r.Register(&Demo{Name: "a", Run: noop}))
	})

	t.Run("missing run", func(t *testing.T) {
		assert.Error(t, r.Register(&Demo{Name: "x"}))
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := r.Get("nope")
		assert.ErrorIs(t, err, ErrUnknownDemo)
	})

	t.Run("list order", func(t *testing.T) {
		assert.Equal(t, []string{"c", "a", "b"}, r.Names())
	})
}

func TestRegistry_Run(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	require.NoError(t, r.Register(&Demo{Name: "ok", Run: func(_ context.Context, env Env) error {
		env.Log.Info("ran")
		return nil
	}}))
	require.NoError(t, r.Register(&Demo{Name: "bad", Run: func(context.Context, Env) error { return boom }}))

	env, log := newTestEnv()
	err := r.Run(context.Background(), env, "bad", "missing", "ok")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrUnknownDemo)
	assert.Equal(t, []string{"ran"}, log.Infos)
	require.Len(t, log.Steps, 2)
	assert.Equal(t, "bad", log.Steps[0].Name)
	assert.Equal(t, "ok", log.Steps[1].Name)
	assert.NoError(t, log.Steps[1].Err)
}

func TestDefaultRegistry_AllDemosRun(t *testing.T) {
	r := GetDefaultRegistry()
	names := r.Names()
	assert.Len(t, names, 16)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			env, log := newTestEnv()
			require.NoError(t, r.Run(context.Background(), env, name))
			assert.NotEmpty(t, log.Infos)
			assert.Empty(t, log.Errors)
		})
	}
}

func TestSetDefaultRegistry(t *testing.T) {
	original := GetDefaultRegistry()
	defer SetDefaultRegistry(original)

	custom := NewRegistry()
	SetDefaultRegistry(custom)
	assert.Same(t, custom, GetDefaultRegistry())
}

func TestFactoryMethodDemo_WarnsOnUnknownEngine(t *testing.T) {
	env, log := newTestEnv()
	require.NoError(t, runFactoryMethod(context.Background(), env))
	assert.Equal(t, []string{"no connection for engine 'SQLite'"}, log.Warnings)
	assert.Contains(t, log.Infos, "Unknown database engine")
}

func TestAdapterDemo_AsksBeforeDisconnect(t *testing.T) {
	env, log := newTestEnv()
	var prompts []string
	env.Confirm = func(prompt string) bool {
		prompts = append(prompts, prompt)
		return false
	}
	require.NoError(t, runAdapter(context.Background(), env))
	assert.Equal(t, []string{"Disconnect the portable hard drive?"}, prompts)
	assert.Contains(t, log.Infos, "  Information deleted from the portable hard drive")
}

func TestSingletonDemo_SharesInstance(t *testing.T) {
	env, log := newTestEnv()
	require.NoError(t, runSingleton(context.Background(), env))
	require.NoError(t, runSingleton(context.Background(), env))
	assert.Contains(t, log.Infos, "Instance already exists; supplied values will be ignored")
}
