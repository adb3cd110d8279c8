// Package articlaw provides a personal web-clipping archive. It extracts
// article content from loaded web pages (per-platform DOM scraping with a
// generic fallback), rehosts embedded images under content-addressed paths,
// and submits the result to a hosted record store.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, s3/, supabase/) or their
// function (e.g., extract/, rehost/, card/).
package articlaw
