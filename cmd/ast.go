package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Tamagosushio/esperopp/frontend/common"
	"github.com/Tamagosushio/esperopp/frontend/lexer"
	"github.com/Tamagosushio/esperopp/frontend/parser"
)

type AstCmd struct {
	Path string `arg:"" optional:"" help:"Source file. Defaults to the manifest's main entry."`
}

func (c *AstCmd) Run() error {
	src, code, err := loadSource(c.Path)
	if err != nil {
		return err
	}

	tokens := lexer.Lex(src, code)
	p := parser.New(tokens)
	program, diag := p.Parse()
	if diag != nil {
		tok := p.CurrentToken()
		fmt.Fprintf(os.Stderr, "%s: %s (line %d)\n", src, diag.Message, common.DiagLine(diag))
		fmt.Fprintf(os.Stderr, "stopped at token %d: %s %q\n", p.CurrentPos(), tok.Kind(), tok.String())
		return errors.New("parse failed")
	}

	fmt.Println(program.Render())
	return nil
}
