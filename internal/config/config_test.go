package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/reduce"
)

var testAlgos = []string{"sequential", "parallel"}

func TestParseConfig_Defaults(t *testing.T) {
	var errBuf bytes.Buffer
	cfg, err := ParseConfig("parsum", nil, &errBuf, testAlgos)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, errBuf.String())

	seq, err := cfg.Sequence()
	require.NoError(t, err)
	assert.Equal(t, reduce.DefaultSequence(), seq)
}

func TestParseConfig_Flags(t *testing.T) {
	cfg, err := ParseConfig("parsum", []string{
		"-n", "3", "--transform", "identity", "--algo", "parallel", "--workers", "4",
		"--timeout", "5s", "-v", "--progress", "--no-color", "--metrics", "--log-level", "debug",
	}, &bytes.Buffer{}, testAlgos)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.N)
	assert.Equal(t, "identity", cfg.Transform)
	assert.Equal(t, "parallel", cfg.Algo)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Progress)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantConfig bool
	}{
		{"negative n", []string{"-n", "-1"}, true},
		{"n too large", []string{"-n", "999999999"}, true},
		{"negative workers", []string{"--workers", "-2"}, true},
		{"zero timeout", []string{"--timeout", "0s"}, true},
		{"quiet and verbose", []string{"-q", "-v"}, true},
		{"unknown transform", []string{"--transform", "sqrt"}, true},
		{"unknown algo", []string{"--algo", "gpu"}, true},
		{"bad log level", []string{"--log-level", "loud"}, true},
		{"bad values", []string{"--values", "1,two,3"}, true},
		{"positional args", []string{"extra"}, true},
		{"unknown flag", []string{"--bogus"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("parsum", tt.args, &bytes.Buffer{}, testAlgos)
			require.Error(t, err)
			var configErr apperrors.ConfigError
			assert.Equal(t, tt.wantConfig, errors.As(err, &configErr), "error: %v", err)
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := ParseConfig("parsum", []string{"--help"}, &errBuf, testAlgos)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, errBuf.String(), "Usage of parsum")
	assert.Contains(t, errBuf.String(), "-transform")
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		in      string
		want    reduce.Sequence
		wantErr bool
	}{
		{"", reduce.Sequence{}, false},
		{"   ", reduce.Sequence{}, false},
		{"1,2,3", reduce.Sequence{1, 2, 3}, false},
		{" -4 , 5 ,6", reduce.Sequence{-4, 5, 6}, false},
		{"9223372036854775807", reduce.Sequence{9223372036854775807}, false},
		{"9223372036854775808", nil, true},
		{"1,,2", nil, true},
		{"1.5", nil, true},
	}

	for _, tt := range tests {
		got, err := ParseValues(tt.in)
		if tt.wantErr {
			var validationErr apperrors.ValidationError
			assert.True(t, errors.As(err, &validationErr), "ParseValues(%q) should fail with ValidationError, got %v", tt.in, err)
			continue
		}
		require.NoError(t, err, "ParseValues(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseValues(%q)", tt.in)
	}
}

func TestSequence_ValuesOverrideN(t *testing.T) {
	cfg := Default()
	cfg.N = 100
	cfg.Values = "1,2,3"
	seq, err := cfg.Sequence()
	require.NoError(t, err)
	assert.Equal(t, reduce.Sequence{1, 2, 3}, seq)

	cfg.Values = ""
	cfg.N = 0
	seq, err = cfg.Sequence()
	require.NoError(t, err)
	assert.Empty(t, seq)
}

func TestEstimateOptimalWorkers(t *testing.T) {
	w := EstimateOptimalWorkers()
	assert.GreaterOrEqual(t, w, 1)
	assert.LessOrEqual(t, w, 20)

	cfg := ApplyAdaptiveWorkers(Default())
	assert.Equal(t, w, cfg.Workers)

	explicit := Default()
	explicit.Workers = 3
	assert.Equal(t, 3, ApplyAdaptiveWorkers(explicit).Workers)
}
