// Package fuzztests houses Go fuzz harnesses that exercise the extraction
// pipeline (source -> lexer -> block matcher -> doc tags). Its goal is to
// smoke test robustness and guard against panics or allocator explosions
// on arbitrary inputs.
package fuzztests
