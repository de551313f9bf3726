package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/c14n-go/rdf"
)

func (c *CLI) canonicalizeCommand() *cobra.Command {
	var (
		hashName string
		prefix   string
		maxGroup int
		base     string
	)

	cmd := &cobra.Command{
		Use:   "canonicalize [file]",
		Short: "Emit the canonical N-Quads form of a JSON-LD document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := canonOptions(hashName, prefix, maxGroup)
			if err != nil {
				return err
			}
			if prefix != "" && prefix != rdf.DefaultLabelPrefix {
				c.logger.Warn("custom label prefix produces non-conformant output", "prefix", prefix)
			}

			dataset, err := c.readDataset(args[0], base)
			if err != nil {
				return err
			}
			c.logger.Debug("dataset loaded", "quads", dataset.Len(), "blank_nodes", len(dataset.BlankNodes()))

			start := time.Now()
			text, err := rdf.Canonicalize(dataset, opts...)
			if err != nil {
				return err
			}
			c.logger.Debug("canonicalized", "elapsed", time.Since(start))

			_, err = fmt.Fprint(c.out, text)
			return err
		},
	}

	cmd.Flags().StringVar(&hashName, "hash", string(rdf.HashSHA256), "hash algorithm (sha-256 or sha-384)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "canonical label prefix (default c14n; non-default is non-conformant)")
	cmd.Flags().IntVar(&maxGroup, "max-group", 0, "complexity ceiling on tied blank node group size")
	cmd.Flags().StringVar(&base, "base", "", "base IRI for resolving relative IRIs")
	return cmd
}
