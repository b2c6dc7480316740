// Package coursedump extracts structured course content from a third-party
// e-learning platform by driving a live browser page: it walks the
// curriculum outline into an ordered plan of chapters and lessons, clicks
// through each lesson, waits for the detail panel to render, and captures
// text content, video metadata, and download links into a portable document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/); the
// scraping engine itself lives in scrape/.
package coursedump
