package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/knownwords/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent sessions and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		return printStats(cmd, st.EventRepo(), limit)
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent sessions to list")
}

func printStats(cmd *cobra.Command, repo store.EventRepo, limit int) error {
	ctx := cmd.Context()
	totals, err := repo.Totals(ctx)
	if err != nil {
		return fmt.Errorf("query totals: %w", err)
	}
	sessions, err := repo.RecentSessions(ctx, limit)
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sessions:    %d\n", totals.Sessions)
	fmt.Fprintf(out, "Saves:       %d\n", totals.Saves)
	fmt.Fprintf(out, "Words saved: %d\n", totals.WordsSaved)
	if len(sessions) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	return writeSessions(out, sessions)
}

func writeSessions(out io.Writer, sessions []store.SessionRecord) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tLEVEL\tOUTCOME\tFETCHED\tKNOWN\tSAVED")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			s.Started.Format("2006-01-02 15:04"), s.Level, s.Outcome, s.Fetched, s.Accepted, s.Saved)
	}
	return w.Flush()
}
