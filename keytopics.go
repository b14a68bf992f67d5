// Package keytopics extracts a short list of topic keywords from a web page.
// It fetches the page, isolates its prose with a content-density walk over
// the document tree, and ranks terms by weighted frequency, favouring terms
// found in the title, meta keywords and headings over body text.
//
// This package contains domain types, interfaces and the pure ranking core
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/, http/).
package keytopics
