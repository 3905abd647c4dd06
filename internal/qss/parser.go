package qss

import (
	"strings"

	"themed/internal/errors"
)

// Parse parses stylesheet source into a Stylesheet. The name identifies the
// source in error positions and becomes the sheet's Source. Property names
// are normalized to lower case; selector classes, states and values are kept
// as written. Malformed input returns a *errors.ParseError carrying the
// 1-based line and column of the offending input.
func Parse(src, name string) (*Stylesheet, error) {
	s := newScanner(src, name)
	sheet := &Stylesheet{Source: name}
	for {
		if err := s.skipSpaceAndComments(); err != nil {
			return nil, err
		}
		if s.eof() {
			break
		}
		if s.peek() == '}' {
			return nil, errors.NewParseError("unexpected '}'", name, s.line, s.col, nil)
		}
		rule, err := s.parseRule()
		if err != nil {
			return nil, err
		}
		sheet.Rules = append(sheet.Rules, *rule)
	}
	return sheet, nil
}

type scanner struct {
	src  string
	name string
	pos  int
	line int
	col  int
}

func newScanner(src, name string) *scanner {
	return &scanner{src: src, name: name, line: 1, col: 1}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	return s.src[s.pos]
}

// advance consumes one byte, counting columns per rune so positions stay
// honest in the face of multi-byte input.
func (s *scanner) advance() byte {
	b := s.src[s.pos]
	s.pos++
	if b == '\n' {
		s.line++
		s.col = 1
	} else if b&0xC0 != 0x80 {
		s.col++
	}
	return b
}

func (s *scanner) atComment() bool {
	return s.peek() == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '*'
}

func (s *scanner) skipComment() error {
	startLine, startCol := s.line, s.col
	s.advance()
	s.advance()
	for !s.eof() {
		if s.peek() == '*' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/' {
			s.advance()
			s.advance()
			return nil
		}
		s.advance()
	}
	return errors.NewParseError("unterminated comment", s.name, startLine, startCol, nil)
}

func (s *scanner) skipSpaceAndComments() error {
	for !s.eof() {
		switch b := s.peek(); {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			s.advance()
		case s.atComment():
			if err := s.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (s *scanner) parseRule() (*Rule, error) {
	selectors, err := s.parseSelectorGroup()
	if err != nil {
		return nil, err
	}
	decls, err := s.parseDeclarations()
	if err != nil {
		return nil, err
	}
	return &Rule{Selectors: selectors, Declarations: decls}, nil
}

// parseSelectorGroup reads comma-separated selector tokens up to and
// including the opening brace.
func (s *scanner) parseSelectorGroup() ([]Selector, error) {
	var sels []Selector
	var cur strings.Builder
	tokLine, tokCol := s.line, s.col

	flush := func() error {
		tok := strings.TrimSpace(cur.String())
		cur.Reset()
		if tok == "" {
			return errors.NewParseError("empty selector", s.name, tokLine, tokCol, nil)
		}
		sel, err := parseSelectorToken(tok, s.name, tokLine, tokCol)
		if err != nil {
			return err
		}
		sels = append(sels, *sel)
		return nil
	}

	for {
		if s.eof() {
			return nil, errors.NewParseError("expected '{' after selector", s.name, s.line, s.col, nil)
		}
		switch b := s.peek(); {
		case s.atComment():
			if err := s.skipComment(); err != nil {
				return nil, err
			}
			cur.WriteByte(' ')
		case b == ',':
			s.advance()
			if err := flush(); err != nil {
				return nil, err
			}
			if err := s.skipSpaceAndComments(); err != nil {
				return nil, err
			}
			tokLine, tokCol = s.line, s.col
		case b == '{':
			s.advance()
			if err := flush(); err != nil {
				return nil, err
			}
			return sels, nil
		case b == '}':
			return nil, errors.NewParseError("unexpected '}' in selector", s.name, s.line, s.col, nil)
		case b == ';':
			return nil, errors.NewParseError("unexpected ';' in selector", s.name, s.line, s.col, nil)
		default:
			cur.WriteByte(s.advance())
		}
	}
}

// parseSelectorToken splits one selector token into its ancestry and subject
// parts. The subject grammar is Class, then #objectName, then ::subElement
// and :state qualifiers in any order after the class.
func parseSelectorToken(tok, name string, line, col int) (*Selector, error) {
	parts := strings.Fields(tok)
	subject := parts[len(parts)-1]
	sel := &Selector{}
	if len(parts) > 1 {
		sel.Ancestors = parts[:len(parts)-1]
	}

	i := 0
	readName := func() string {
		start := i
		for i < len(subject) && subject[i] != '#' && subject[i] != ':' {
			i++
		}
		return subject[start:i]
	}

	sel.Class = readName()
	for i < len(subject) {
		switch subject[i] {
		case '#':
			i++
			objName := readName()
			if objName == "" {
				return nil, errors.NewParseError("empty object name in selector", name, line, col, nil)
			}
			if sel.ObjectName != "" {
				return nil, errors.NewParseError("multiple object names in selector", name, line, col, nil)
			}
			sel.ObjectName = objName
		case ':':
			if i+1 < len(subject) && subject[i+1] == ':' {
				i += 2
				subName := readName()
				if subName == "" {
					return nil, errors.NewParseError("empty sub-element in selector", name, line, col, nil)
				}
				if sel.SubElement != "" {
					return nil, errors.NewParseError("multiple sub-elements in selector", name, line, col, nil)
				}
				sel.SubElement = subName
			} else {
				i++
				start := i
				if i < len(subject) && subject[i] == '!' {
					i++
				}
				readName()
				state := subject[start:i]
				if state == "" || state == "!" {
					return nil, errors.NewParseError("empty state in selector", name, line, col, nil)
				}
				sel.States = append(sel.States, state)
			}
		}
	}
	return sel, nil
}

func (s *scanner) parseDeclarations() ([]Declaration, error) {
	var decls []Declaration
	for {
		if err := s.skipSpaceAndComments(); err != nil {
			return nil, err
		}
		if s.eof() {
			return nil, errors.NewParseError("unterminated block", s.name, s.line, s.col, nil)
		}
		if s.peek() == '}' {
			s.advance()
			return decls, nil
		}
		d, err := s.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, *d)
	}
}

func (s *scanner) parseDeclaration() (*Declaration, error) {
	declLine, declCol := s.line, s.col

	var prop strings.Builder
	for {
		if s.eof() {
			return nil, errors.NewParseError("unterminated block", s.name, s.line, s.col, nil)
		}
		b := s.peek()
		if b == ':' {
			s.advance()
			break
		}
		if b == ';' || b == '}' || b == '{' {
			return nil, errors.NewParseError("expected ':' in declaration", s.name, s.line, s.col, nil)
		}
		if s.atComment() {
			if err := s.skipComment(); err != nil {
				return nil, err
			}
			continue
		}
		prop.WriteByte(s.advance())
	}
	propName := strings.ToLower(strings.TrimSpace(prop.String()))
	if propName == "" {
		return nil, errors.NewParseError("empty property name", s.name, declLine, declCol, nil)
	}
	if strings.ContainsAny(propName, " \t\n") {
		return nil, errors.NewParseError("invalid property name", s.name, declLine, declCol, nil)
	}

	var val strings.Builder
	depth := 0
	for {
		if s.eof() {
			return nil, errors.NewParseError("unterminated block", s.name, s.line, s.col, nil)
		}
		b := s.peek()
		if b == ';' && depth == 0 {
			s.advance()
			break
		}
		if b == '}' && depth == 0 {
			// Trailing semicolon is optional; the block loop consumes the brace.
			break
		}
		if b == '{' {
			return nil, errors.NewParseError("unexpected '{' in declaration", s.name, s.line, s.col, nil)
		}
		if b == ':' && depth == 0 {
			// A bare colon here means the previous declaration was never closed.
			return nil, errors.NewParseError("missing ';' before declaration", s.name, s.line, s.col, nil)
		}
		if b == '"' || b == '\'' {
			if err := s.readQuoted(&val); err != nil {
				return nil, err
			}
			continue
		}
		if s.atComment() {
			if err := s.skipComment(); err != nil {
				return nil, err
			}
			continue
		}
		if b == '(' {
			depth++
		}
		if b == ')' && depth > 0 {
			depth--
		}
		val.WriteByte(s.advance())
	}
	value := strings.TrimSpace(val.String())
	if value == "" {
		return nil, errors.NewParseError("empty value in declaration", s.name, declLine, declCol, nil)
	}
	return &Declaration{Property: propName, Value: value}, nil
}

func (s *scanner) readQuoted(val *strings.Builder) error {
	qLine, qCol := s.line, s.col
	quote := s.advance()
	val.WriteByte(quote)
	for !s.eof() {
		c := s.advance()
		val.WriteByte(c)
		if c == quote {
			return nil
		}
	}
	return errors.NewParseError("unterminated string", s.name, qLine, qCol, nil)
}
