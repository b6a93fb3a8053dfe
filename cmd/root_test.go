package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/token-auditor/pkg/config"
	"github.com/user/token-auditor/pkg/logging"
)

const feeToken = `pragma solidity ^0.8.0;

contract FeeToken {
    uint256 public fee;

    function setFee(uint256 f) external {
        fee = f;
    }
}
`

func writeContract(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Token.sol")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func optionsFor(path, format string) *config.Options {
	opts := config.Default()
	opts.File = path
	opts.Format = format
	return opts
}

func TestRunAudit_JSON(t *testing.T) {
	path := writeContract(t, feeToken)

	var out bytes.Buffer
	require.NoError(t, runAudit(context.Background(), &out, optionsFor(path, "json")))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, path, result["file"])
	assert.Equal(t, float64(25), result["risk_score"])
	assert.Equal(t, "Medium", result["risk_level"])
	assert.Equal(t, "suspicious", result["label"])
}

func TestRunAudit_LogsToContextLogger(t *testing.T) {
	path := writeContract(t, feeToken)

	var logs bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New("debug", "json", &logs))

	var out bytes.Buffer
	require.NoError(t, runAudit(ctx, &out, optionsFor(path, "yaml")))

	assert.Contains(t, out.String(), "risk_score: 25")
	assert.Contains(t, logs.String(), `"msg":"audit complete"`)
	assert.Contains(t, logs.String(), `"fingerprint":"0x`)
	assert.NotContains(t, out.String(), "audit complete", "logs must not leak into the report")
}

func TestRunAudit_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sol")

	var out bytes.Buffer
	err := runAudit(context.Background(), &out, optionsFor(path, "json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Zero(t, out.Len(), "no partial output on failure")
}

func TestRunAudit_InvalidOptions(t *testing.T) {
	path := writeContract(t, feeToken)

	var out bytes.Buffer
	err := runAudit(context.Background(), &out, optionsFor(path, "xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format must be one of")
	assert.Zero(t, out.Len())

	err = runAudit(context.Background(), &out, optionsFor("", "json"))
	require.Error(t, err)
	assert.Zero(t, out.Len())
}

func TestRootCommand_TextReport(t *testing.T) {
	path := writeContract(t, feeToken)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"--file", path, "--format", "text"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		opts = *config.Default()
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Risk Score:  25/100")
	assert.Contains(t, out.String(), "[has_set_fee] line 6:")
	assert.Empty(t, errOut.String())
}

func TestRulesCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"rules"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "name: has_owner_mint")
	assert.Contains(t, out.String(), "points: 40")
	assert.Contains(t, out.String(), "name: has_max_tx")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var info map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, "token-auditor", info["name"])
	assert.Equal(t, version, info["version"])
}
