package surface

import "github.com/alecthomas/participle/v2/lexer"

// Lexer tokenizes the textual declaration/query syntax this package
// parses. Grounded on the teacher pack's kanso grammar lexer (stateful
// single-state rule list, longest-match-first ordering within a rule).
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `--[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_']*`, nil},
		{"Punct", `:=|[(){}:.,;!\\*]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
