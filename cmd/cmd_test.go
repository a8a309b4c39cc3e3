package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/knownwords/internal/store"
)

func TestPrintStats(t *testing.T) {
	st, err := store.Open("file:cmdstats?mode=memory&cache=shared")
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	repo := st.EventRepo()
	for _, e := range []store.SessionEventData{
		{SessionID: "s1", Action: store.ActionStart},
		{SessionID: "s1", Action: store.ActionFetched, Level: "B1", WordsFetched: 20},
		{SessionID: "s1", Action: store.ActionSaved, Level: "B1", WordsFetched: 20, WordsAccepted: 4, WordsSaved: 4},
	} {
		require.NoError(t, repo.AppendSessionEvent(ctx, e))
	}

	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	c.SetContext(ctx)

	require.NoError(t, printStats(c, repo, 10))

	got := out.String()
	assert.Contains(t, got, "Sessions:    1")
	assert.Contains(t, got, "Words saved: 4")
	assert.Contains(t, got, "B1")
	assert.Contains(t, got, "saved")
}

func TestLevelsCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KNOWNWORDS_CONFIG", "")
	t.Setenv("KNOWNWORDS_LEVELS", "A1,B1")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"levels"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "A1\nB1\n", out.String())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "knownwords (devel)\n", out.String())
}
