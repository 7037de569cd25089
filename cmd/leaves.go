package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dictkit-project/dictkit/pkg/treedict"
)

var (
	leavesFilter string
	leavesDepth  int
)

var leavesCmd = &cobra.Command{
	Use:   "leaves FILE",
	Short: "List every leaf of a document as 'path: value'",
	Long: `Lists the document's leaves in sorted path order. --filter takes a
boolean expression evaluated per leaf (variables: path, key, value,
depth), e.g.

    dictkit leaves config.yaml --filter 'key == "image" || depth > 3'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(args[0])
		if err != nil {
			return err
		}

		if leavesFilter != "" {
			tree, err = treedict.Select(tree, leavesFilter)
			if err != nil {
				return err
			}
		}

		type line struct {
			path  string
			value any
		}
		var lines []line
		for path, value := range treedict.LeavesDepth(tree, leavesDepth) {
			lines = append(lines, line{path: path.String(), value: value})
		}
		sort.Slice(lines, func(i, j int) bool { return lines[i].path < lines[j].path })

		for _, l := range lines {
			raw, err := json.Marshal(l.value)
			if err != nil {
				return fmt.Errorf("encoding value at %s: %w", l.path, err)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", l.path, raw); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	leavesCmd.Flags().StringVarP(&leavesFilter, "filter", "f", "",
		"boolean expression selecting which leaves to list")
	leavesCmd.Flags().IntVar(&leavesDepth, "depth", 0,
		"cut paths at this depth, printing subtrees as values (0 = no limit)")
	rootCmd.AddCommand(leavesCmd)
}
