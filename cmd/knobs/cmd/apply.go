package cmd

import (
	"github.com/spf13/cobra"
)

func newApplyCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file.yaml>",
		Short: "Print the document values after applying input constraints",
		Long: `Bind every input of a panel document, push the constrained values back
into the document and print the resulting values as YAML.

Example:
  knobs apply panel.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, doc, err := opts.newPane(args[0])
			if err != nil {
				return err
			}
			defer p.Dispose()

			for _, b := range p.Bindings() {
				if err := b.Push(); err != nil {
					return err
				}
			}
			out, err := doc.MarshalValues()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
