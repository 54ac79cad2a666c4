// Command derdump decodes DER-encoded data and prints it as an indented tree.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"codello.dev/der"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derdump [file]",
		Short: "Print the structure of DER-encoded data",
		Long: `derdump decodes a file (or standard input) containing one or more
DER-encoded values and prints them as an indented tree. Payloads of
well-known universal types are rendered readably and object identifiers
are annotated with their descriptions.`,
		Example: `  # dump a certificate
  derdump certificate.der

  # dump a CMS signature from stdin
  openssl smime -sign ... | derdump`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 0 {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}
			nodes, err := der.DecodeAll(data)
			if err != nil {
				return err
			}
			for i, n := range nodes {
				printTree(cmd.OutOrStdout(), n, "", i == len(nodes)-1)
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
