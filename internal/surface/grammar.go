// Package surface is a textual concrete syntax for terms, declarations
// and whole environments, sitting outside the core normalizer exactly
// as the distilled specification requires — convenience plumbing for
// the CLI and for tests, grounded on the teacher pack's participle/v2
// struct-tag grammar style (kanso's grammar/grammar.go).
package surface

// File is a sequence of declarations followed by an optional query
// term — the top-level unit this package parses.
type File struct {
	Decls []*Decl `@@*`
	Query *Term   `[ "query" @@ ";" ]`
}

// Decl is one of the three declaration forms the spec names. Special
// declarations have no surface syntax for their body: a host function
// is Go code, so special declarations are wired programmatically (see
// Register) rather than parsed.
type Decl struct {
	Definition *DefinitionDecl `  @@`
	Theorem    *TheoremDecl    `| @@`
	Axiom      *AxiomDecl      `| @@`
}

// DefinitionDecl is `def NAME(params) := body;`.
type DefinitionDecl struct {
	Name   string       `"def" @Ident`
	Params []*ParamDecl `"(" [ @@ { "," @@ } ] ")"`
	Body   *Term        `":=" @@ ";"`
}

// TheoremDecl is `theorem NAME(params) : type [:= proof];` — the proof
// is optional in the surface syntax so an unproven theorem can be
// written down and exercised against the opaque-reference path.
type TheoremDecl struct {
	Name   string       `"theorem" @Ident`
	Params []*ParamDecl `"(" [ @@ { "," @@ } ] ")"`
	Type   *Term        `":" @@`
	Proof  *Term        `[ ":=" @@ ] ";"`
}

// AxiomDecl is `axiom NAME(params) : type;`.
type AxiomDecl struct {
	Name   string       `"axiom" @Ident`
	Params []*ParamDecl `"(" [ @@ { "," @@ } ] ")"`
	Type   *Term        `":" @@ ";"`
}

// ParamDecl is a single `name : type` formal parameter.
type ParamDecl struct {
	Name string `@Ident ":"`
	Type *Term  `@@`
}

// Term is a left-associative application spine: a head atom applied to
// zero or more argument atoms.
type Term struct {
	Head *Atom   `@@`
	Args []*Atom `@@*`
}

// Atom is the non-application leaf of a term: a sort, a binder, a bare
// name, or a parenthesized term.
type Atom struct {
	Sort    string      `(  @("*" | "Kind")`
	Lambda  *LambdaTerm `| @@`
	Product *ProductTerm `| @@`
	Name    string      `| @Ident`
	Paren   *Term       `| "(" @@ ")" )`
}

// LambdaTerm is `\x : domain . body`.
type LambdaTerm struct {
	Name   string `"\\" @Ident ":"`
	Domain *Term  `@@ "."`
	Body   *Term  `@@`
}

// ProductTerm is `!x : domain . body`.
type ProductTerm struct {
	Name   string `"!" @Ident ":"`
	Domain *Term  `@@ "."`
	Body   *Term  `@@`
}
