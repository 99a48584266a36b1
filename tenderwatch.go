// Package tenderwatch discovers public-tender listings on New Caledonia
// government and institutional sites, follows plausible detail-page links,
// extracts structured fields (title, organization, reference, dates, status,
// excerpt) from unstructured HTML using heuristic rules, and persists
// deduplicated records keyed by detail URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, dateparse/).
package tenderwatch
