package lisp

import "strings"

// Print renders v as text. In readable mode, strings are double-quoted
// with backslash/quote/newline escaped, matching what the reader
// accepts back; in raw mode a Str prints its bare contents (this is
// what the str/println builtins use). Lists and atoms print their
// elements in the same mode; every other datum prints the same in both
// modes.
func Print(v Value, readable bool) string {
	var sb strings.Builder
	print1(&sb, v, readable)
	return sb.String()
}

func print1(sb *strings.Builder, v Value, readable bool) {
	switch x := v.(type) {
	case Str:
		if readable {
			sb.WriteByte('"')
			for _, r := range string(x) {
				switch r {
				case '"':
					sb.WriteString(`\"`)
				case '\\':
					sb.WriteString(`\\`)
				case '\n':
					sb.WriteString(`\n`)
				default:
					sb.WriteRune(r)
				}
			}
			sb.WriteByte('"')
		} else {
			sb.WriteString(string(x))
		}
	case *List:
		sb.WriteByte('(')
		for cur := x; cur != nil; cur = cur.tail {
			print1(sb, cur.head, readable)
			if cur.tail != nil {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte(')')
	case *Atom:
		sb.WriteString("(atom ")
		print1(sb, x.val, readable)
		sb.WriteByte(')')
	case *Procedure:
		if x.IsMacro {
			sb.WriteString("#<macro")
		} else {
			sb.WriteString("#<procedure")
		}
		if name, ok := x.Name(); ok {
			sb.WriteByte(':')
			sb.WriteString(name.String())
		}
		sb.WriteByte('>')
	default:
		sb.WriteString(v.String())
	}
}
