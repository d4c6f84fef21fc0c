package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/solver"
	"github.com/katalvlaran/wordladder/ladder"
)

func newBatchCmd(g *globalFlags) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Solve every START GOAL pair listed in FILE",
		Long: `Solve every pair in FILE, one "START GOAL" pair per line. Blank lines and
lines starting with '#' are ignored. Use "-" to read standard input.

Pairs are solved concurrently; each search is independent. A pair with
an unknown or repeated word is reported and does not stop the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			pairs, err := readPairs(cmd, args[0])
			if err != nil {
				return err
			}

			sess, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close(&err)

			n := sess.cfg.Batch.Workers
			if cmd.Flags().Changed("workers") {
				n = workers
			}
			reports, err := sess.solver.SolveBatch(cmd.Context(), pairs, n)
			if err != nil {
				return err
			}
			printBatch(cmd.OutOrStdout(), reports)
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent searches (default from config)")
	return cmd
}

func readPairs(cmd *cobra.Command, path string) ([]solver.Pair, error) {
	if path == "-" {
		return solver.ParsePairs(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return solver.ParsePairs(f)
}

func printBatch(w io.Writer, reports []solver.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Start", "Goal", "Height", "Ladder"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	found := 0
	for _, r := range reports {
		var detail string
		switch {
		case r.Err != nil:
			detail = "error: " + r.Err.Error()
		case r.Found:
			found++
			detail = strings.Join(r.Path, ladder.Separator)
		case !r.Separated && r.MinLength > 0:
			detail = fmt.Sprintf("beyond depth limit (height %d)", r.MinLength)
		default:
			detail = "no possible word ladder"
		}
		table.Append([]string{r.Start, r.Goal, strconv.Itoa(r.Length), detail})
	}
	table.SetFooter([]string{"", "", "found", fmt.Sprintf("%d of %d", found, len(reports))})
	table.Render()
}
