// Package rust renders Rust source for the generated Material enum.
//
// Output is plain text; nothing here runs rustfmt, so the template is kept
// in the exact layout consumers diff against.
package rust
