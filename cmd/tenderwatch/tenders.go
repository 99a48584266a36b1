package main

import (
	"fmt"

	"github.com/brunesco/tenderwatch"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Run executes the tenders command.
func (c *TendersCmd) Run(deps *Dependencies) error {
	filter := tenderwatch.TenderFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.Status != "" {
		status := tenderwatch.Status(c.Status)
		switch status {
		case tenderwatch.StatusOpen, tenderwatch.StatusClosed, tenderwatch.StatusPublished, tenderwatch.StatusUnknown:
		default:
			fmt.Fprintf(deps.Stderr, "error: unknown status %q\n", c.Status)
			return tenderwatch.Errorf(tenderwatch.EINVALID, "unknown status %q", c.Status)
		}
		filter.Status = &status
	}
	if c.Source != "" {
		filter.SourceID = &c.Source
	}

	tenders, err := deps.Tenders.FindTenders(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tenderwatch.ErrorMessage(err))
		return err
	}

	if len(tenders) == 0 {
		fmt.Fprintln(deps.Stdout, "No tenders found. Use 'tenderwatch scan' to collect some.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Title", "Organization", "Reference", "Published", "Deadline", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Title", WidthMax: 48, WidthMaxEnforcer: text.Trim},
		{Name: "Organization", WidthMax: 32, WidthMaxEnforcer: text.Trim},
	})

	for _, tender := range tenders {
		t.AppendRow(table.Row{
			tender.Title,
			tender.Organization,
			tender.Reference,
			formatDate(tender.PublicationDate),
			formatDate(tender.DeadlineDate),
			tender.Status,
		})
	}

	t.Render()
	return nil
}
