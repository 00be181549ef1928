// Package token defines lexical token kinds for Lua source scanning.
// Invariants:
//   - Token.Text is copied verbatim from the original source.
//   - Token.Span matches Text exactly (Start..End).
//   - Comments are first-class tokens, not trivia: the comment associator
//     consumes them from the same stream as code tokens.
//   - String and long-bracket literals keep their delimiters in Text; their
//     interior is never re-tokenized.
package token
