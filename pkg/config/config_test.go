package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	opts := Default()
	assert.Equal(t, "json", opts.Format)
	assert.Equal(t, "warn", opts.LogLevel)
	assert.Equal(t, "text", opts.LogFormat)
	assert.Empty(t, opts.File)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr string
	}{
		{"valid json", func(o *Options) {}, ""},
		{"valid yaml", func(o *Options) { o.Format = "yaml" }, ""},
		{"valid text debug", func(o *Options) { o.Format = "text"; o.LogLevel = "debug" }, ""},
		{"missing file", func(o *Options) { o.File = "  " }, "contract file path is required"},
		{"bad format", func(o *Options) { o.Format = "xml" }, "format must be one of json, yaml, text"},
		{"bad log level", func(o *Options) { o.LogLevel = "trace" }, "log level must be one of"},
		{"bad log format", func(o *Options) { o.LogFormat = "logfmt" }, "log format must be text or json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Default()
			opts.File = "token.sol"
			tt.mutate(opts)

			err := opts.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalize(t *testing.T) {
	opts := &Options{File: "token.sol", Format: " YAML ", LogLevel: "Debug", LogFormat: "JSON"}
	opts.Normalize()

	assert.Equal(t, "yaml", opts.Format)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, "json", opts.LogFormat)
	assert.NoError(t, opts.Validate())
}
