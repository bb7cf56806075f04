package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stampvoice/internal/artifacts"
	"stampvoice/internal/services"
	"stampvoice/internal/stamp"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [RESULT_JSON]",
		Short: "Display a saved analysis result as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join("output", artifacts.ResultFileName)
			if len(args) == 1 {
				path = args[0]
			} else if cfg, err := ctx.ensureConfig(); err == nil {
				path = filepath.Join(cfg.Output.Dir, artifacts.ResultFileName)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return services.Wrap(services.ErrNotFound, "show", "read result", path, err)
				}
				return err
			}
			record, err := stamp.Decode(data)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderRecord(record))
			return nil
		},
	}
	return cmd
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

func renderRecord(record stamp.Record) string {
	rows := [][]string{
		{"Country", titleCaser.String(record.Country)},
		{"Postal type", record.PostalType},
		{"Denomination", record.Denomination},
		{"Year or period", record.YearOrPeriod},
		{"Subject", record.Subject},
		{"Visible text", record.VisibleText},
		{"Colors", strings.Join(record.Colors, ", ")},
		{"Condition", record.ConditionNotes},
		{"Uncertainties", strings.Join(record.Uncertainties, "; ")},
		{"Confidence", fmt.Sprintf("%.2f", record.Confidence)},
	}

	ref := record.ReferenceInfo
	if ref != (stamp.ReferenceInfo{}) {
		rows = append(rows,
			[]string{"Reference", ref.Description},
			[]string{"Context", ref.HistoricalContext},
			[]string{"Purpose", ref.Purpose},
			[]string{"Source", ref.InfoSource},
			[]string{"Note", ref.VerificationNote},
		)
	}

	filtered := rows[:0]
	for _, row := range rows {
		if strings.TrimSpace(row[1]) != "" {
			filtered = append(filtered, row)
		}
	}
	return renderTable([]string{"Field", "Value"}, filtered)
}
