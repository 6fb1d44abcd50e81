// Package confindex builds a searchable index of historical creeds,
// confessions and catechisms published as HTML articles. Each document is
// split into units carrying a hierarchical title and the scripture chapters
// the unit cites.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, yaml/).
package confindex
