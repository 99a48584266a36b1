package main

import (
	"fmt"

	"github.com/brunesco/tenderwatch"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	sources, err := deps.Sources.FindSources(deps.Ctx, tenderwatch.SourceFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tenderwatch.ErrorMessage(err))
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources registered yet. Run 'tenderwatch scan' to register the portal list.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Listing URL", "Active", "Last scanned"})

	for _, source := range sources {
		t.AppendRow(table.Row{
			source.ID,
			source.Name,
			source.ListingURL,
			source.Active,
			formatTime(source.UpdatedAt),
		})
	}

	t.Render()
	return nil
}
