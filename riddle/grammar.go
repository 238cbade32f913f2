package riddle

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type riddleExpr struct {
	From    int          `"from" @Int`
	To      int          `"to" @Int`
	Ops     []*opExpr    `"using" @@ ("," @@)*`
	Ceiling *ceilingExpr `@@?`
}

type opExpr struct {
	Kind    string `@("*" | "x" | "+" | "-")`
	Operand int    `@Int`
}

type ceilingExpr struct {
	Value int `"within" @Int`
}

var riddleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{"Ident", `[a-z]+`},
	{"Int", `[0-9]+`},
	{"Op", `[*+\-]`},
	{"Punct", `,`},
	{"whitespace", `\s+`},
})

var parseRiddleExpr = participle.MustBuild[riddleExpr](
	participle.Lexer(riddleLexer),
)
