package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/brunesco/tenderwatch"
	"github.com/brunesco/tenderwatch/crawl"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	seeds := deps.Seeds
	if len(c.URL) > 0 {
		seeds = nil
		for _, raw := range c.URL {
			parsed, err := url.Parse(raw)
			if err != nil || parsed.Host == "" {
				fmt.Fprintf(deps.Stderr, "error: invalid listing URL %q\n", raw)
				return tenderwatch.Errorf(tenderwatch.EINVALID, "invalid listing URL %q", raw)
			}
			seeds = append(seeds, tenderwatch.Source{
				Name:       parsed.Host,
				ListingURL: raw,
				Active:     true,
			})
		}
	}
	if c.Source != "" {
		seeds = nil
		for _, seed := range deps.Seeds {
			if strings.EqualFold(seed.Name, c.Source) {
				seeds = append(seeds, seed)
			}
		}
		if len(seeds) == 0 {
			fmt.Fprintf(deps.Stderr, "error: no source named %q. Use 'tenderwatch sources' to see the portal list.\n", c.Source)
			return tenderwatch.Errorf(tenderwatch.ENOTFOUND, "no source named %q", c.Source)
		}
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressSourceStarted:
			fmt.Fprintf(deps.Stdout, "%s: %d liens candidats\n", event.Source, event.Total)
		case crawl.ProgressCandidateFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case crawl.ProgressSourceFinished:
			fmt.Fprintf(deps.Stdout, "  %d/%d fiches enregistrées\n", event.Completed, event.Total)
		}
	}

	result, err := deps.Pipeline.Run(deps.Ctx, seeds, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scanning: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scanned %d sources: %d candidates, %d saved, %d failed\n",
		result.Sources, result.Candidates, result.Saved, result.Failed)
	return nil
}
