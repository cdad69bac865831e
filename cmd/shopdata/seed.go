package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopdata/internal/application/seed"
	"shopdata/internal/domain/repository"
)

func newSeedCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write fake customers, products and orders to the data directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force && a.csv().Exists(repository.TableCustomers, repository.TableProducts, repository.TableOrders) {
				return fmt.Errorf("base record sets already exist in %s, pass --force to replace them", a.csv().Dir())
			}
			sum, err := a.seed(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d customers, %d products, %d orders into %s\n",
				sum.Customers, sum.Products, sum.Orders, a.csv().Dir())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing base record sets")
	return cmd
}

func (a *app) seed(cmd *cobra.Command) (*seed.Summary, error) {
	sizes := seed.Sizes{
		Customers: a.cfg.Seed.Customers,
		Products:  a.cfg.Seed.Products,
		Orders:    a.cfg.Seed.Orders,
	}
	return seed.NewService(a.csv(), sizes, a.cfg.Generator.Seed, a.log).Seed(cmd.Context())
}
