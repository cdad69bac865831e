package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopdata/internal/config"
	"shopdata/internal/domain/repository"
	"shopdata/pkg/logger"
)

func newSetupCmd(a *app) *cobra.Command {
	var flags reportFlags
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Seed when needed, generate, load, verify and report in one pass",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			log := a.log.WithContext(cmd.Context())

			if a.csv().Exists(repository.TableCustomers, repository.TableProducts, repository.TableOrders) {
				log.Info("base record sets found, skipping seed", logger.String("dir", a.csv().Dir()))
			} else {
				sum, err := a.seed(cmd)
				if err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				fmt.Fprintf(out, "Seeded %d customers, %d products, %d orders\n", sum.Customers, sum.Products, sum.Orders)
			}

			gen, err := a.generate(cmd)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			fmt.Fprintf(out, "Generated %d order items and %d reviews\n\n", gen.Items, gen.Reviews)

			r, err := a.openRelational(cmd.Context())
			if err != nil {
				return err
			}
			v, err := a.ingestService(r).Ingest(cmd.Context())
			r.close()
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			if err := writeVerification(out, v); err != nil {
				return err
			}
			if !v.OK() {
				return errIntegrity
			}

			if a.cfg.Store.Target != config.StoreSQLite {
				log.Info("reports skipped for non-sqlite store", logger.String("store", a.cfg.Store.Target))
				return nil
			}
			return a.report(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.xlsx, "xlsx", "", "also write the reports to this .xlsx workbook")
	return cmd
}
