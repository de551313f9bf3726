package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/c14n-go/rdf"
)

func (c *CLI) isomorphicCommand() *cobra.Command {
	var (
		hashName string
		maxGroup int
		base     string
	)

	cmd := &cobra.Command{
		Use:   "isomorphic [fileA] [fileB]",
		Short: "Decide whether two JSON-LD documents describe isomorphic datasets",
		Long:  "Exits 0 when the datasets are isomorphic and 1 when they are not, so the command can be used directly in shell conditionals.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := canonOptions(hashName, rdf.DefaultLabelPrefix, maxGroup)
			if err != nil {
				return err
			}

			a, err := c.readDataset(args[0], base)
			if err != nil {
				return err
			}
			b, err := c.readDataset(args[1], base)
			if err != nil {
				return err
			}

			iso, err := rdf.IsIsomorphic(a, b, opts...)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(c.out, iso); err != nil {
				return err
			}
			if !iso {
				return ErrNotIsomorphic
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&hashName, "hash", string(rdf.HashSHA256), "hash algorithm (sha-256 or sha-384)")
	cmd.Flags().IntVar(&maxGroup, "max-group", 0, "complexity ceiling on tied blank node group size")
	cmd.Flags().StringVar(&base, "base", "", "base IRI for resolving relative IRIs")
	return cmd
}
