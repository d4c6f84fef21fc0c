package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/solver"
)

var errUsage = errors.New("cli: wrong number of words")

func newSolveCmd(g *globalFlags) *cobra.Command {
	var randomStart, randomGoal bool
	cmd := &cobra.Command{
		Use:   "solve [START] [GOAL]",
		Short: "Find the shortest ladder between two words",
		Long: `Find the shortest ladder from START to GOAL.

With --random-start or --random-goal that word is picked from the
dictionary instead, and the remaining arguments fill the other slot.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var start, goal string
			slots := make([]*string, 0, 2)
			if !randomStart {
				slots = append(slots, &start)
			}
			if !randomGoal {
				slots = append(slots, &goal)
			}
			if len(args) != len(slots) {
				return fmt.Errorf("%w: want %d, got %d", errUsage, len(slots), len(args))
			}
			for i, a := range args {
				*slots[i] = a
			}

			sess, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close(&err)

			start, goal = sess.solver.ResolvePair(start, goal, false)
			rep, err := sess.solver.Solve(cmd.Context(), start, goal)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}
	cmd.Flags().BoolVar(&randomStart, "random-start", false, "pick the start word at random")
	cmd.Flags().BoolVar(&randomGoal, "random-goal", false, "pick the goal word at random")
	return cmd
}

// printReport writes one solve outcome. The height line is printed in both
// cases, 0 when no ladder exists.
func printReport(w io.Writer, rep solver.Report) {
	if !rep.Found {
		fmt.Fprintf(w, "There is no possible word ladder from %s to %s\n", rep.Start, rep.Goal)
		if !rep.Separated && rep.MinLength > 0 {
			fmt.Fprintf(w, "A ladder of height %d exists beyond the depth limit\n", rep.MinLength)
		}
	} else {
		fmt.Fprintln(w, "Shortest Word Ladder found!")
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Step", "Word"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
		for i, word := range rep.Path {
			table.Append([]string{strconv.Itoa(i), word})
		}
		table.Render()
	}
	fmt.Fprintf(w, "Word Ladder height = %d\n", rep.Length)
}
