package version

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures Short and Full return non-empty consistent information.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Equal(t, Short(), Short())
	require.Contains(t, Full(), Short())
	require.Contains(t, Full(), Commit)
}

// TestVersionCommand runs the attached subcommand and checks its output.
func TestVersionCommand(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "test"}
	AttachCobraVersionCommand(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Equal(t, Full()+"\n", out.String())
}

// TestShortFallsBackOnEmptyVersion covers a build that injected a blank version.
// It mutates package state, so it does not run in parallel.
func TestShortFallsBackOnEmptyVersion(t *testing.T) {
	saved := Version
	t.Cleanup(func() { Version = saved })

	Version = "  "
	require.Equal(t, DefaultVersion, Short())

	Version = "2.3.4"
	require.Equal(t, "2.3.4", Short())
}
