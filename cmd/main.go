package main

import (
	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("esperopp"),
		kong.Description("Esper++ CLI"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type CLI struct {
	Lex     LexCmd     `cmd:"" help:"Print the token stream of a source file." aliases:"tokens"`
	Ast     AstCmd     `cmd:"" help:"Parse a source file and print its AST." aliases:"parse"`
	Version VersionCmd `cmd:"" help:"Show version."`
}
