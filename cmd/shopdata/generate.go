package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopdata/internal/application/generate"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Derive order items, order totals and reviews from the base record sets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sum, err := a.generate(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generated %d order items and %d reviews\n", sum.Items, sum.Reviews)
			fmt.Fprintf(out, "Updated totals for %d orders\n", sum.Orders)
			return nil
		},
	}
}

func (a *app) generate(cmd *cobra.Command) (*generate.Summary, error) {
	opts := generate.Options{
		OrderItemBaseID: a.cfg.Generator.OrderItemBaseID,
		ReviewBaseID:    a.cfg.Generator.ReviewBaseID,
		ReviewCap:       a.cfg.Generator.ReviewCap,
	}
	store := a.csv()
	return generate.NewService(store, store, opts, a.cfg.Generator.Seed, a.log).Generate(cmd.Context())
}
