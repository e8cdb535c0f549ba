package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chihaya/pcgrand/pkg/pcg"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), err
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

var commandTests = []struct {
	args     []string
	expected string
}{
	{[]string{"u32", "--seed", "42", "-n", "3"}, lines("3270867926", "1795671209", "1924641435")},
	{[]string{"u32"}, lines("355248013")},
	{[]string{"int", "--seed", "42", "--min", "10", "--max", "20", "-n", "5"}, lines("16", "19", "15", "15", "17")},
	{[]string{"int", "--seed", "42"}, lines("3270867926")},
	{[]string{"perm", "10", "--seed", "42"}, lines("8", "5", "9", "0", "1", "7", "3", "4", "2", "6")},
	{[]string{"perm", "0"}, ""},
	{[]string{"shuffle", "--seed", "5", "a", "b", "c", "d", "e"}, lines("e", "c", "d", "b", "a")},
	{[]string{"choice", "--seed", "7", "--weights", "1,2,3", "-n", "5"}, lines("1", "2", "1", "2", "0")},
	{[]string{"choice", "--seed", "7", "--weights", "1,2,3", "-n", "5", "a", "b", "c"}, lines("b", "c", "b", "c", "a")},
	{[]string{"string", "--seed", "5", "--length", "8"}, lines("VCi0N4cw")},
	{[]string{"string", "--seed", "5", "--length", "4", "--alphabet", "x"}, lines("xxxx")},
}

func TestCommands(t *testing.T) {
	for _, tt := range commandTests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.Nil(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestSeedName(t *testing.T) {
	byName, err := run(t, "u32", "--seed-name", "orc-17", "-n", "4")
	require.Nil(t, err)

	bySeed, err := run(t, "u32", "--seed", "10821513912708872187", "-n", "4")
	require.Nil(t, err)
	require.Equal(t, bySeed, byName)
}

func TestFloatRange(t *testing.T) {
	out, err := run(t, "float", "--seed", "3", "--min", "-2", "--max", "2", "-n", "50")
	require.Nil(t, err)
	require.Len(t, strings.Fields(out), 50)
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "choice", "--weights", "1,2", "a")
	require.True(t, errors.Is(err, pcg.ErrLengthMismatch), "got %v", err)

	_, err = run(t, "int", "--min", "5", "--max", "5")
	require.True(t, errors.Is(err, pcg.ErrInvalidRange), "got %v", err)

	_, err = run(t, "int", "--max", "0")
	require.True(t, errors.Is(err, pcg.ErrInvalidRange), "got %v", err)

	_, err = run(t, "perm", "-1")
	require.NotNil(t, err)

	_, err = run(t, "perm", "x")
	require.NotNil(t, err)

	_, err = run(t, "u32", "-n", "-1")
	require.NotNil(t, err)

	_, err = run(t, "u32", "--seed", "1", "--seed-name", "x")
	require.NotNil(t, err)

	_, err = run(t, "string", "--alphabet", "")
	require.NotNil(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pcgrand.yaml")
	require.Nil(t, os.WriteFile(path, []byte("pcgrand:\n  seed: 42\n"), 0o600))

	out, err := run(t, "u32", "--config", path)
	require.Nil(t, err)
	require.Equal(t, lines("3270867926"), out)

	// Flags take precedence over the file.
	out, err = run(t, "u32", "--config", path, "--seed", "0")
	require.Nil(t, err)
	require.Equal(t, lines("3894649422"), out)

	_, err = run(t, "u32", "--config", filepath.Join(dir, "missing.yaml"))
	require.NotNil(t, err)
}
