package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dictkit-project/dictkit/pkg/diffview"
	"github.com/dictkit-project/dictkit/pkg/treedict"
)

var diffAsChangeset bool

var diffCmd = &cobra.Command{
	Use:   "diff A B",
	Short: "Show the difference between two documents",
	Long: `Renders a YAML-ish view of the difference between two documents, with
added, removed and modified entries highlighted. With --changeset the raw
change-set is printed instead: a document that, applied to A, yields B
(removed keys carry null).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadTree(args[0])
		if err != nil {
			return err
		}
		b, err := loadTree(args[1])
		if err != nil {
			return err
		}

		if diffAsChangeset {
			chg := treedict.Changeset(a, b)
			if chg == nil {
				setupLog.Debug().Msg("Documents are equal")
				return nil
			}
			return writeTree(cmd.OutOrStdout(), "", chg)
		}

		theme := diffview.DarkTheme
		highlight := true
		if noColor || viper.GetBool("no-color") {
			theme = diffview.NoColor
			highlight = false
		}
		out := diffview.RenderWithOptions(a, b, theme, diffview.Options{
			IndentSize: viper.GetInt("indent"),
			Highlight:  highlight,
		})
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffAsChangeset, "changeset", false,
		"print the raw change-set instead of the rendered view")
	rootCmd.AddCommand(diffCmd)
}
