package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/solver"
)

func newComponentsCmd(g *globalFlags) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Report how the dictionary splits into ladder-connected groups",
		Long: `Build the word graph (an edge joins words one letter apart) and list its
connected components, largest first. Two words have a ladder exactly when
they share a component.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			sess, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close(&err)

			sum, err := sess.solver.Components(top)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), sum)
			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "t", 10, "components to list, 0 for all")
	return cmd
}

func printSummary(w io.Writer, sum solver.Summary) {
	fmt.Fprintf(w, "Words: %d  Edges: %d  Components: %d  Isolated: %d\n",
		sum.Words, sum.Edges, sum.Count, sum.Isolated)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Size", "Sample"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	for i, c := range sum.Components {
		table.Append([]string{strconv.Itoa(i + 1), strconv.Itoa(c.Size), strings.Join(c.Sample, " ")})
	}
	table.Render()
}
