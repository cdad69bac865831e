package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopdata/internal/application/report"
	"shopdata/internal/infrastructure/export/xlsx"
)

type reportFlags struct {
	name string
	xlsx string
}

func newReportCmd(a *app) *cobra.Command {
	var flags reportFlags
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the canned analytical reports against the sqlite store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.report(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.name, "name", "", "run a single report (customer-purchase, product-performance, category-performance)")
	cmd.Flags().StringVar(&flags.xlsx, "xlsx", "", "also write the reports to this .xlsx workbook")
	return cmd
}

func (a *app) report(cmd *cobra.Command, flags reportFlags) error {
	r, err := a.openRelational(cmd.Context())
	if err != nil {
		return err
	}
	defer r.close()

	svc, err := a.reportService(r)
	if err != nil {
		return err
	}

	var tables []*report.Table
	if flags.name != "" {
		t, err := svc.Run(cmd.Context(), flags.name)
		if err != nil {
			return err
		}
		tables = []*report.Table{t}
	} else if tables, err = svc.RunAll(cmd.Context()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, t := range tables {
		if err := report.WriteText(out, t); err != nil {
			return err
		}
	}

	if flags.xlsx != "" {
		sheets := make([]xlsx.Sheet, 0, len(tables))
		for _, t := range tables {
			sheets = append(sheets, xlsx.Sheet{Name: t.Name, Columns: t.Columns, Rows: t.Rows})
		}
		if err := xlsx.Write(flags.xlsx, sheets); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nWrote %d reports to %s\n", len(sheets), flags.xlsx)
	}
	return nil
}
