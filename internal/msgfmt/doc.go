// Package msgfmt renders accumulated messages as plain text or HTML.
//
// The pipeline per record is: resolve a display template (resolver lookup by
// id, else the record's own template for the requested mode, else the
// cross-mode fallback), expand every [: ... :] tag marker, then deduplicate
// identical rendered strings keeping the first occurrence. Text output is a
// bulleted list; HTML output is a classed container whose <li> elements carry
// deterministic anchors derived from the message id and parameters.
//
// Rendering never mutates the sink. Contract violations (a record with no
// resolvable content, an unknown channel) abort the render call with an
// error; a missing sub-tag parameter degrades to an empty substitution with a
// diagnostic line on the configured writer.
package msgfmt
