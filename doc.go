// Package bloqs embeds static scripts and stylesheets into HTML fragments
// and keeps a composite document from emitting the same resource twice.
//
// # Resources
//
// A resource body comes from a Source: Named loads {root}/{name}{ext}
// through the session Loader, Inline uses the given text verbatim.
//
//	script, err := bloqs.NewScript(bloqs.Inline("console.log('hi');"), bloqs.WithEncode(false))
//	style, err := bloqs.NewStyle(bloqs.Named("report"), bloqs.WithTagID("report-css"))
//
// Scripts render as <script>…</script>. When encoding is on, the body is a
// compressed bootstrap call, blocksEval(RawDeflate.inflate(atob("…")));,
// decoded in the browser by the embedded jsinflate and blocks_eval scripts.
// Styles render as <style type="text/css">…</style>.
//
// # Sessions
//
// A Session owns the loader, the codec, the default encoding and the
// interactive registry for one top-level render. Sub-blocks call
// RegisterInteractive while they are built; the document flushes the
// registry once, deduplicated, in registration order:
//
//	s, err := bloqs.NewSession(bloqs.WithResourceDir("static"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := s.RegisterInteractive("plotly", "tables"); err != nil {
//	    log.Fatal(err)
//	}
//	page, err := s.NewDocument("Report").Add(block).Render()
//
// Identifiers are resolved when registered, so an unknown one fails there
// and flushing only renders.
//
// The package-level functions (NewScript, RegisterInteractive,
// WriteInteractive, SetGlobalEncode, ...) use the process-wide Default
// session, which SetDefault replaces. Its registry is cleared on every flush; call ResetInteractive
// to drop registrations without emitting them.
//
// # Dependency Tracking
//
// DependencyTracker is an insertion-ordered set used at assembly time to
// skip resources that were already embedded.
package bloqs
