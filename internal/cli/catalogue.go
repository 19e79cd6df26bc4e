package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/vgen/internal/catalogue"
)

// CatalogueCmd returns the catalogue command.
func CatalogueCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("catalogue", flag.ContinueOnError),
		Usage: "catalogue",
		Short: "List validator identifiers in table order",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			for _, name := range catalogue.Default() {
				o.Println(name)
			}

			return nil
		},
	}
}
