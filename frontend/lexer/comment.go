package lexer

// comment skips a `//` comment up to (but not including) the newline, or to
// end of input. Comments are never emitted as tokens.
func (lx *lexer) comment() {
	lx.advance() // skip '/'
	lx.advance() // skip '/'

	for c := lx.curChr; c != nil && *c != '\n'; c = lx.curChr {
		lx.advance()
	}
}
