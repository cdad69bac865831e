package main

import (
	"github.com/spf13/cobra"
)

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Recreate the schema and import all five record sets, then verify",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.openRelational(cmd.Context())
			if err != nil {
				return err
			}
			defer r.close()

			v, err := a.ingestService(r).Ingest(cmd.Context())
			if err != nil {
				return err
			}
			return writeVerification(cmd.OutOrStdout(), v)
		},
	}
}
