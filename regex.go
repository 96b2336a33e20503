package automata

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

// TokenKind discriminates regex tokens.
type TokenKind int

const (
	// TokenLiteral is a single alphanumeric input symbol.
	TokenLiteral TokenKind = iota
	// TokenStar is the unary postfix Kleene star.
	TokenStar
	// TokenUnion is the binary union operator.
	TokenUnion
	// TokenConcat is the binary explicit concatenation operator.
	TokenConcat
)

// Token is one element of a linearized regex pattern. The notation is
// postfix with an explicit concatenation operator: operands are pushed
// and operators combine the most recently built fragments, so "ab." is
// the concatenation a·b and "abc*.|" is a|bc*.
type Token struct {
	Kind    TokenKind
	Literal Symbol // set for TokenLiteral only
}

// patternLexer tokenizes pattern strings: alphanumeric literals plus
// the three operators. Anything else fails the lex and the pattern.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Literal", Pattern: `[0-9A-Za-z]`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Union", Pattern: `\|`},
	{Name: "Concat", Pattern: `\.`},
})

// Regex is a compiled pattern, held as its token sequence. It converts
// to an NFA-ε by Thompson's construction and from there to a DFA.
type Regex struct {
	pattern string
	tokens  []Token
}

// Compile lexes a pattern string into tokens. An empty pattern or a
// rune outside the literal/operator set is ErrMalformedPattern; whether
// the operator arity works out is only known once the automaton is
// built.
func Compile(pattern string) (*Regex, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrMalformedPattern)
	}
	lx, err := patternLexer.LexString("", pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPattern, err)
	}
	symbols := patternLexer.Symbols()
	var tokens []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPattern, err)
		}
		if tok.EOF() {
			break
		}
		switch tok.Type {
		case symbols["Literal"]:
			tokens = append(tokens, Token{Kind: TokenLiteral, Literal: Symbol(tok.Value)})
		case symbols["Star"]:
			tokens = append(tokens, Token{Kind: TokenStar})
		case symbols["Union"]:
			tokens = append(tokens, Token{Kind: TokenUnion})
		case symbols["Concat"]:
			tokens = append(tokens, Token{Kind: TokenConcat})
		}
	}
	return &Regex{pattern: pattern, tokens: tokens}, nil
}

// MustCompile is Compile but panics on error.
func MustCompile(pattern string) *Regex {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// CompileTokens builds a Regex from an already-linearized token
// sequence supplied by the caller.
func CompileTokens(tokens []Token) (*Regex, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrMalformedPattern)
	}
	var pattern []byte
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenLiteral:
			if !validLiteral(tok.Literal) {
				return nil, fmt.Errorf("%w: invalid literal %q", ErrMalformedPattern, tok.Literal)
			}
			pattern = append(pattern, tok.Literal...)
		case TokenStar:
			pattern = append(pattern, '*')
		case TokenUnion:
			pattern = append(pattern, '|')
		case TokenConcat:
			pattern = append(pattern, '.')
		default:
			return nil, fmt.Errorf("%w: unknown token kind %d", ErrMalformedPattern, tok.Kind)
		}
	}
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return &Regex{pattern: string(pattern), tokens: out}, nil
}

// validLiteral accepts exactly one alphanumeric ASCII rune, the same
// set the pattern lexer admits.
func validLiteral(s Symbol) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Pattern returns the source pattern text.
func (r *Regex) Pattern() string { return r.pattern }

// Tokens returns a copy of the token sequence.
func (r *Regex) Tokens() []Token {
	out := make([]Token, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// fragment is a partially built NFA-ε with a single accept state. Every
// construction rule below preserves that single-accept shape, which is
// what lets star/union/concat wire the accept state directly.
type fragment struct {
	states      StateSet
	alphabet    SymbolSet
	transitions Transitions
	start       State
	accept      State
}

// fragBuilder mints globally unique state identifiers for one
// construction run. The counter lives on the builder, not in package
// state, so concurrent compilations cannot interfere.
type fragBuilder struct {
	next int
}

func (b *fragBuilder) fresh() State {
	s := State("q" + strconv.Itoa(b.next))
	b.next++
	return s
}

// literal: start --c--> end.
func (b *fragBuilder) literal(c Symbol) fragment {
	start, end := b.fresh(), b.fresh()
	t := make(Transitions)
	t.add(start, c, end)
	return fragment{
		states:      NewStateSet(start, end),
		alphabet:    NewSymbolSet(c),
		transitions: t,
		start:       start,
		accept:      end,
	}
}

// star: fresh start and end; epsilon from the new start and from the
// operand's accept state to both the operand's start and the new end.
func (b *fragBuilder) star(f fragment) fragment {
	start, end := b.fresh(), b.fresh()
	f.transitions.add(start, Epsilon, f.start, end)
	f.transitions.add(f.accept, Epsilon, f.start, end)
	f.states.add(start, end)
	return fragment{
		states:      f.states,
		alphabet:    f.alphabet,
		transitions: f.transitions,
		start:       start,
		accept:      end,
	}
}

// union: fresh start branching by epsilon into both operands, both
// accept states feeding a fresh end by epsilon.
func (b *fragBuilder) union(f1, f2 fragment) fragment {
	start, end := b.fresh(), b.fresh()
	t := mergeTransitions(f1.transitions, f2.transitions)
	t.add(start, Epsilon, f1.start, f2.start)
	t.add(f1.accept, Epsilon, end)
	t.add(f2.accept, Epsilon, end)
	states := f1.states
	for s := range f2.states {
		states[s] = struct{}{}
	}
	states.add(start, end)
	return fragment{
		states:      states,
		alphabet:    mergeAlphabets(f1.alphabet, f2.alphabet),
		transitions: t,
		start:       start,
		accept:      end,
	}
}

// concat: epsilon from the first operand's accept state to the second
// operand's start; no fresh interior states are needed beyond the two
// each operand already contributed.
func (b *fragBuilder) concat(f1, f2 fragment) fragment {
	t := mergeTransitions(f1.transitions, f2.transitions)
	t.add(f1.accept, Epsilon, f2.start)
	states := f1.states
	for s := range f2.states {
		states[s] = struct{}{}
	}
	return fragment{
		states:      states,
		alphabet:    mergeAlphabets(f1.alphabet, f2.alphabet),
		transitions: t,
		start:       f1.start,
		accept:      f2.accept,
	}
}

// mergeTransitions folds both tables into one. Fragment state sets are
// disjoint by construction, so rows never collide.
func mergeTransitions(t1, t2 Transitions) Transitions {
	for from, row := range t2 {
		t1[from] = row
	}
	return t1
}

func mergeAlphabets(a1, a2 SymbolSet) SymbolSet {
	for s := range a2 {
		a1[s] = struct{}{}
	}
	return a1
}

// ToNFAE runs Thompson's construction over the token sequence with an
// operand stack of fragments. Underflow or a final stack holding other
// than exactly one fragment is ErrMalformedPattern. The finished
// automaton is validated like any other NFA-ε, so a pattern whose
// construction wires an epsilon cycle (star over an epsilon-skippable
// fragment, e.g. "a**") reports ErrCircularEpsilon.
func (r *Regex) ToNFAE() (*NFAE, error) {
	b := &fragBuilder{}
	var stack []fragment

	pop := func() (fragment, bool) {
		if len(stack) == 0 {
			return fragment{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}

	for _, tok := range r.tokens {
		switch tok.Kind {
		case TokenLiteral:
			stack = append(stack, b.literal(tok.Literal))
		case TokenStar:
			f, ok := pop()
			if !ok {
				return nil, fmt.Errorf("%w: star without an operand in %q", ErrMalformedPattern, r.pattern)
			}
			stack = append(stack, b.star(f))
		case TokenUnion:
			f2, ok2 := pop()
			f1, ok1 := pop()
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("%w: union needs two operands in %q", ErrMalformedPattern, r.pattern)
			}
			stack = append(stack, b.union(f1, f2))
		case TokenConcat:
			f2, ok2 := pop()
			f1, ok1 := pop()
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("%w: concatenation needs two operands in %q", ErrMalformedPattern, r.pattern)
			}
			stack = append(stack, b.concat(f1, f2))
		default:
			return nil, fmt.Errorf("%w: unknown token kind %d", ErrMalformedPattern, tok.Kind)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d fragments left on the stack for %q", ErrMalformedPattern, len(stack), r.pattern)
	}
	f := stack[0]
	return NewNFAE(f.states.sorted(), f.alphabet.sorted(), f.transitions, f.start, []State{f.accept})
}

// ToDFA composes Thompson's construction with subset construction,
// bypassing epsilon elimination.
func (r *Regex) ToDFA() (*DFA, error) {
	e, err := r.ToNFAE()
	if err != nil {
		return nil, err
	}
	return e.ToDFA()
}
