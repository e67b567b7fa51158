// Package tokenizer provides word-level tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants.
//
// Note: quoted literals are single tokens. The quote bytes stay in the token
// value; nothing is unescaped.
const (
	TokenSpace  = "Space"  // run of ' ', '\t', '\r', '\n'
	TokenIdent  = "Ident"  // [0-9A-Za-z_]+
	TokenQuoted = "Quoted" // identifier bytes with a '...' or "..." literal
	TokenPunct  = "Punct"  // any other single character
)
