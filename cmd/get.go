package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dictkit-project/dictkit/pkg/treedict"
)

var getDefault string

var getCmd = &cobra.Command{
	Use:   "get FILE PATH",
	Short: "Print the value at a dotted path",
	Long: `Resolves a dotted path (e.g. spec.template.name) in the document and
prints the value as JSON. Without --default, an unresolvable path is an
error.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(args[0])
		if err != nil {
			return err
		}
		path := treedict.Path(strings.Split(args[1], "."))

		value, err := treedict.Get(tree, path)
		if err != nil {
			var pnf *treedict.PathNotFoundError
			if errors.As(err, &pnf) && cmd.Flags().Changed("default") {
				value = getDefault
			} else {
				return err
			}
		}

		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding value: %w", err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", raw)
		return err
	},
}

func init() {
	getCmd.Flags().StringVar(&getDefault, "default", "",
		"value to print when the path does not resolve")
	rootCmd.AddCommand(getCmd)
}
