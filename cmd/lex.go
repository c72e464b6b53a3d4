package main

import (
	"fmt"
	"strings"

	"github.com/Tamagosushio/esperopp/frontend/lexer"
)

type LexCmd struct {
	Path string `arg:"" optional:"" help:"Source file. Defaults to the manifest's main entry."`
}

func (c *LexCmd) Run() error {
	src, code, err := loadSource(c.Path)
	if err != nil {
		return err
	}

	fmt.Println(code)
	fmt.Println()
	fmt.Println(strings.Repeat("-", 64))
	fmt.Println()

	for _, tok := range lexer.Lex(src, code) {
		span := tok.Span()
		fmt.Printf("Token(l:%04d, c:%04d, %12s, \"%s\")\n",
			span.LineStart, span.ColumnStart, tok.Kind(), tok.String())
	}
	return nil
}
