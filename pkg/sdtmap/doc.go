// Package sdtmap discovers and rewrites content controls (structured document
// tags) embedded in Microsoft Word documents (DOCX).
//
// A content control is a machine-readable placeholder carrying a tag
// identifier and a typed behavior (plain text, dropdown, repeating section,
// and so on). Sdtmap exposes three operations over them: enumeration, which
// reports every control present in a document; mapping, which substitutes
// caller-supplied values into the controls and returns a new document; and
// removal, which strips the control wrappers while keeping their content.
//
// # Quick Start
//
//	controls, err := sdtmap.GetContentControls(docBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for tag, cc := range controls {
//	    fmt.Println(tag, cc.Types)
//	}
//
//	out, err := sdtmap.MapContentControls(docBytes,
//	    map[string]string{"Name": "Jane Doe"},
//	    map[string][]map[string]string{
//	        "Findings": {
//	            {"Gene": "ABC1"},
//	            {"Gene": "ABC2"},
//	        },
//	    })
//
// Simple substitutions replace the visible text of a control in place.
// Repeating substitutions clone a repeating-section control once per data
// row, filling each clone's nested controls from that row.
//
// # Architecture
//
// The package processes a document through linear pipelines:
//
//   - enumerate: package codec -> tree parser -> control scanner -> index
//   - map: package codec -> tree parser -> template mapper -> serializer -> rebuilt package
//   - remove: package codec -> tree parser -> control unwrapper -> serializer -> rebuilt package
//
// The container is handled with archive/zip; the document part becomes a
// mutable XML tree (github.com/beevik/etree) so that attribute order and
// elements the engine does not understand survive a round trip unchanged.
//
// Enumeration and removal probe the main part for control markers before
// parsing and short-circuit on a control-free document. The nesting-depth
// ceiling applies to every pipeline, not just mapping: any operation that
// parses the tree refuses a document nested beyond Config.MaxTreeDepth with
// DepthExceededError.
//
// # Behavior Notes
//
// Tag strings need not be unique in a document. Enumeration reports one
// record per distinct tag, and when tags collide the control encountered
// last in document order wins.
//
// Plan keys that match no control in the document are ignored silently;
// templates are commonly shared across document variants with differing
// control sets.
//
// # Thread Safety
//
// An Engine holds only configuration. Every call parses its own tree and
// produces an independent result, so concurrent calls on different inputs
// need no locking.
//
// # Error Handling
//
// Failures are reported through typed errors: CorruptPackageError,
// MalformedDocumentError, DepthExceededError, MappingError and
// PackagingError. Check them with the Is* helpers or errors.As.
package sdtmap
