package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func smallConfig(hasher string) Config {
	cfg := DefaultConfig()
	cfg.Seed = 3
	cfg.Steps = 5000
	cfg.KeySpace = 300
	cfg.Hasher = hasher
	cfg.VerifyEvery = 1000
	return cfg
}

func TestRun(t *testing.T) {
	for name := range hashers {
		t.Run(name, func(t *testing.T) {
			cfg := smallConfig(name)
			res, err := Run(cfg, zaptest.NewLogger(t, zaptest.Level(zap.InfoLevel)))
			require.NoError(t, err)

			require.Equal(t, cfg.Steps, res.Steps)
			require.Equal(t, cfg.Steps, res.Inserts+res.Erases+res.Indexes+res.Ats+res.Finds+res.Clears)
			require.Equal(t, cfg.Steps/cfg.VerifyEvery, res.Verifies)
			require.NotZero(t, res.Inserts)
			require.NotZero(t, res.Erases)

			require.NotNil(t, res.Stats)
			require.Equal(t, res.Stats.Counter, res.Stats.Size)
			require.LessOrEqual(t, res.Stats.LoadFactor, 0.5)
			require.NotZero(t, res.Stats.TotalCompactions)
		})
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := smallConfig("default")
	a, err := Run(cfg, zap.NewNop())
	require.NoError(t, err)
	b, err := Run(cfg, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, a.Inserts, b.Inserts)
	require.Equal(t, a.Clears, b.Clears)
	require.Equal(t, a.Stats.Size, b.Stats.Size)
	require.Equal(t, a.Stats.Capacity, b.Stats.Capacity)
}

func TestRunFinalVerify(t *testing.T) {
	cfg := smallConfig("identity")
	cfg.Steps = 2500
	res, err := Run(cfg, zap.NewNop())
	require.NoError(t, err)
	// Two periodic checks plus one at the last step.
	require.Equal(t, 3, res.Verifies)
}

func TestRunLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := smallConfig("collide")
	cfg.Steps = 3000
	_, err := Run(cfg, zap.New(core))
	require.NoError(t, err)

	start := logs.FilterMessage("starting workload").All()
	require.Len(t, start, 1)
	require.Equal(t, "collide", start[0].ContextMap()["hasher"])
	require.Equal(t, 3, logs.FilterMessage("verified").Len())
	require.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := smallConfig("nope")
	_, err := Run(cfg, zap.NewNop())
	require.ErrorContains(t, err, `unknown hasher "nope"`)
}
