package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dictkit-project/dictkit/pkg/treedict"
)

var mergeOutFile string

var mergeCmd = &cobra.Command{
	Use:   "merge A B [C...]",
	Short: "Recursively merge documents, later ones overriding earlier ones",
	Long: `Merges two or more documents. Keys holding mappings on both sides are
merged recursively; for any other shared key the later document wins.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := make(treedict.Tree)
		for _, path := range args {
			tree, err := loadTree(path)
			if err != nil {
				return err
			}
			treedict.MergeInto(out, tree)
		}
		return writeTree(cmd.OutOrStdout(), mergeOutFile, out)
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutFile, "out", "o", "",
		"write the result to this file instead of stdout")
	rootCmd.AddCommand(mergeCmd)
}
