package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/wordmutate/internal/cli"
	"codeberg.org/snonux/wordmutate/internal/generator"
	"codeberg.org/snonux/wordmutate/internal/mutation"
	"codeberg.org/snonux/wordmutate/internal/testutil"
)

func newTestCommand(t *testing.T, set map[string]string) (*cobra.Command, *cli.Flags, *bytes.Buffer) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	flags := cli.NewFlags()
	cmd := cli.CreateRootCommand(flags)
	for name, value := range set {
		require.NoError(t, cmd.Flags().Set(name, value))
	}

	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd, flags, &out
}

// executeCommand runs the full root command, config loading included
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	flags := cli.NewFlags()
	cmd := cli.CreateRootCommand(flags)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wordmutate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunCommand_RotateWord(t *testing.T) {
	cmd, flags, out := newTestCommand(t, map[string]string{
		"word":     "cat",
		"strategy": "rotate-word",
		"number":   "1",
	})

	require.NoError(t, runCommand(cmd, nil, flags))
	assert.Equal(t, "dex \n", out.String())
}

func TestRunCommand_PositionalWord(t *testing.T) {
	cmd, flags, out := newTestCommand(t, map[string]string{
		"strategy": "rotate-word",
		"number":   "2",
		"prefix":   "www.",
		"suffix":   ".com",
	})

	require.NoError(t, runCommand(cmd, []string{"cat"}, flags))
	assert.Equal(t, "www.dex.com www.gib.com \n", out.String())
}

func TestRunCommand_WordGivenTwice(t *testing.T) {
	cmd, flags, out := newTestCommand(t, map[string]string{"word": "cat"})

	assert.Error(t, runCommand(cmd, []string{"dog"}, flags))
	assert.Empty(t, out.String())
}

func TestRunCommand_UnknownStrategy(t *testing.T) {
	cmd, flags, out := newTestCommand(t, map[string]string{
		"word":     "cat",
		"strategy": "foo",
	})

	err := runCommand(cmd, nil, flags)
	assert.True(t, errors.Is(err, mutation.ErrUnknownStrategy))
	assert.Empty(t, out.String())
}

func TestRunCommand_MissingWord(t *testing.T) {
	cmd, flags, out := newTestCommand(t, nil)

	assert.ErrorIs(t, runCommand(cmd, nil, flags), generator.ErrMissingWord)
	assert.Empty(t, out.String())
}

func TestRunCommand_ExhaustedClass(t *testing.T) {
	cmd, flags, _ := newTestCommand(t, map[string]string{
		"word":     "b",
		"strategy": "rotate-word",
		"exclude":  "cdgjkpqtx",
	})

	assert.ErrorIs(t, runCommand(cmd, nil, flags), mutation.ErrExhaustedClass)
}

func TestRunCommand_SeedIsReproducible(t *testing.T) {
	set := map[string]string{"word": "foobar", "seed": "99", "number": "20"}

	cmd, flags, first := newTestCommand(t, set)
	require.NoError(t, runCommand(cmd, nil, flags))

	cmd, flags, second := newTestCommand(t, set)
	require.NoError(t, runCommand(cmd, nil, flags))

	assert.Equal(t, first.String(), second.String())
}

func TestRunCommand_Batch(t *testing.T) {
	path := testutil.CreateSeedFile(t, "# seeds", "cat", "", "zoo")
	cmd, flags, out := newTestCommand(t, map[string]string{
		"batch":    path,
		"strategy": "rotate-word",
		"number":   "1",
	})

	require.NoError(t, runCommand(cmd, nil, flags))
	assert.Equal(t, "dex \nfuu \n", out.String())
}

func TestRunCommand_BatchInvalidSeedProducesNoOutput(t *testing.T) {
	path := testutil.CreateSeedFile(t, "cat", "Zoo")
	cmd, flags, out := newTestCommand(t, map[string]string{"batch": path})

	assert.ErrorIs(t, runCommand(cmd, nil, flags), generator.ErrInvalidWord)
	assert.Empty(t, out.String())
}

func TestRunCommand_EmptyBatch(t *testing.T) {
	path := testutil.CreateSeedFile(t, "# nothing here")
	cmd, flags, _ := newTestCommand(t, map[string]string{"batch": path})

	assert.Error(t, runCommand(cmd, nil, flags))
}

func TestExecute_BadConfigFile(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(t.TempDir(), "typo.yaml")},
		{"malformed", writeConfig(t, "number: [unclosed\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, "--config", tt.path, "--word", "cat", "--strategy", "rotate-word", "--number", "1")
			assert.Error(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestExecute_ConfigFileValues(t *testing.T) {
	path := writeConfig(t, "word: cat\nstrategy: rotate-word\nnumber: 2\n")

	out, err := executeCommand(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "dex gib \n", out)
}

func TestExecute_PositionalWordBeatsConfigWord(t *testing.T) {
	path := writeConfig(t, "word: foobar\n")

	out, err := executeCommand(t, "--config", path, "--strategy", "rotate-word", "--number", "1", "cat")
	require.NoError(t, err)
	assert.Equal(t, "dex \n", out)
}

func TestExecute_PositionalWordBeatsEnvWord(t *testing.T) {
	t.Setenv("WORDMUTATE_WORD", "dog")

	out, err := executeCommand(t, "--strategy", "rotate-word", "--number", "1", "cat")
	require.NoError(t, err)
	assert.Equal(t, "dex \n", out)
}

func TestExecute_EnvWordUsedWithoutPositional(t *testing.T) {
	t.Setenv("WORDMUTATE_WORD", "cat")

	out, err := executeCommand(t, "--strategy", "rotate-word", "--number", "1")
	require.NoError(t, err)
	assert.Equal(t, "dex \n", out)
}

func TestExecute_WordFlagAndPositionalConflict(t *testing.T) {
	out, err := executeCommand(t, "--word", "cat", "dog")
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestExecute_BatchIgnoresConfigWord(t *testing.T) {
	cfg := writeConfig(t, "word: foobar\n")
	seeds := testutil.CreateSeedFile(t, "cat")

	out, err := executeCommand(t, "--config", cfg, "--batch", seeds, "--strategy", "rotate-word", "--number", "1")
	require.NoError(t, err)
	assert.Equal(t, "dex \n", out)
}

func TestExecute_BatchWithExplicitWordRunsItFirst(t *testing.T) {
	seeds := testutil.CreateSeedFile(t, "zoo")

	out, err := executeCommand(t, "--batch", seeds, "--strategy", "rotate-word", "--number", "1", "cat")
	require.NoError(t, err)
	assert.Equal(t, "dex \nfuu \n", out)
}

func TestExecute_NegativeNumber(t *testing.T) {
	out, err := executeCommand(t, "--word", "cat", "--number=-1")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}
