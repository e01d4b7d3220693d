// Package sanitize prepares raw C source for lexing. It strips
// preprocessor directives and GCC attribute annotations, recording the
// include paths and simple object-like defines it removes so callers
// can restore them in the output. It performs no macro expansion.
package sanitize

import (
	"strings"
)

// Options configures the sanitizing step
type Options struct {
	KeepAttributes bool // Leave __attribute__((...)) in place
}

// Result holds the cleaned source plus the directives removed from it
type Result struct {
	Source   string
	Includes []string // paths from #include lines, angle brackets or quotes stripped
	Defines  []Define // object-like #define NAME VALUE lines
}

// Define records one object-like macro definition
type Define struct {
	Name  string
	Value string
}

// Sanitize removes preprocessor lines and attributes from source.
// Directive lines, including their backslash continuations, are
// dropped wholesale; everything else passes through untouched.
func Sanitize(source string, opts *Options) Result {
	var res Result
	var out strings.Builder
	out.Grow(len(source))

	lines := strings.Split(source, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			// Swallow continuation lines belonging to this directive
			full := trimmed
			for strings.HasSuffix(full, "\\") && i+1 < len(lines) {
				i++
				full = strings.TrimSuffix(full, "\\") + " " + strings.TrimSpace(lines[i])
			}
			res.recordDirective(full)
			// Keep the newline so token line numbers still match the input
			out.WriteByte('\n')
			continue
		}
		if opts == nil || !opts.KeepAttributes {
			line = stripAttributes(line)
		}
		out.WriteString(line)
		if i < len(lines)-1 {
			out.WriteByte('\n')
		}
	}

	res.Source = out.String()
	return res
}

// recordDirective captures #include paths and object-like #defines.
// Other directives (ifdef, pragma, function-like defines) are dropped
// without record.
func (r *Result) recordDirective(line string) {
	rest, ok := directiveBody(line, "include")
	if ok {
		if path := includePath(rest); path != "" {
			r.Includes = append(r.Includes, path)
		}
		return
	}
	rest, ok = directiveBody(line, "define")
	if !ok {
		return
	}
	name, value, _ := strings.Cut(rest, " ")
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, "(") {
		// Function-like macro, not modeled
		return
	}
	r.Defines = append(r.Defines, Define{Name: name, Value: strings.TrimSpace(value)})
}

// directiveBody matches `# name body`, tolerating space after the hash
func directiveBody(line, name string) (string, bool) {
	s := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	if !strings.HasPrefix(s, name) {
		return "", false
	}
	rest := s[len(name):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '<' && rest[0] != '"' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// includePath extracts the path from <path> or "path"
func includePath(s string) string {
	if len(s) < 2 {
		return ""
	}
	switch {
	case s[0] == '<':
		if end := strings.IndexByte(s, '>'); end > 0 {
			return s[1:end]
		}
	case s[0] == '"':
		if end := strings.IndexByte(s[1:], '"'); end >= 0 {
			return s[1 : 1+end]
		}
	}
	return ""
}

// stripAttributes removes every __attribute__((...)) occurrence,
// matching the double parentheses by depth so nested argument lists
// survive intact.
func stripAttributes(line string) string {
	const marker = "__attribute__"
	for {
		start := strings.Index(line, marker)
		if start < 0 {
			return line
		}
		i := start + len(marker)
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) || line[i] != '(' {
			// Bare marker with no argument list, drop just the keyword
			line = line[:start] + line[i:]
			continue
		}
		depth := 0
		end := i
		for ; end < len(line); end++ {
			switch line[end] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				end++
				break
			}
		}
		line = line[:start] + line[end:]
	}
}
