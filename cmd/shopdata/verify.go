package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"shopdata/internal/domain/repository"
)

var errIntegrity = errors.New("integrity checks failed")

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Print row counts, orphan checks and business statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.openRelational(cmd.Context())
			if err != nil {
				return err
			}
			defer r.close()

			v, err := a.ingestService(r).Verify(cmd.Context())
			if err != nil {
				return err
			}
			if err := writeVerification(cmd.OutOrStdout(), v); err != nil {
				return err
			}
			if !v.OK() {
				return errIntegrity
			}
			return nil
		},
	}
}

func writeVerification(w io.Writer, v *repository.Verification) error {
	var b strings.Builder
	b.WriteString("Row counts:\n")
	for _, t := range repository.Tables {
		fmt.Fprintf(&b, "  %-12s %d\n", t+":", v.RowCounts[t])
	}

	o := v.Orphans
	checks := []struct {
		label string
		n     int64
	}{
		{"orders without customer", o.OrdersCustomers},
		{"order items without order", o.OrderItemsOrders},
		{"order items without product", o.OrderItemsProducts},
		{"reviews without product", o.ReviewsProducts},
		{"reviews without customer", o.ReviewsCustomers},
		{"unreconciled order totals", v.UnreconciledOrders},
	}
	b.WriteString("\nReferential integrity:\n")
	for _, c := range checks {
		fmt.Fprintf(&b, "  %-29s %d\n", c.label+":", c.n)
	}

	s := v.Stats
	b.WriteString("\nStatistics:\n")
	fmt.Fprintf(&b, "  active customers:     %d\n", s.ActiveCustomers)
	fmt.Fprintf(&b, "  average order value:  $%.2f\n", s.AverageOrderValue)
	fmt.Fprintf(&b, "  delivered revenue:    $%.2f\n", s.DeliveredRevenue)
	fmt.Fprintf(&b, "  average rating:       %.2f/5\n", s.AverageRating)
	if s.TopCategory != "" {
		fmt.Fprintf(&b, "  top category:         %s (%d products)\n", s.TopCategory, s.TopCategoryProducts)
	}

	if v.OK() {
		b.WriteString("\nAll integrity checks passed.\n")
	} else {
		b.WriteString("\nIntegrity checks FAILED.\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
