package sanitize

import (
	"strings"
	"testing"
)

func TestDirectiveLinesRemoved(t *testing.T) {
	source := `#include <stdio.h>
#define MAX 10
int main() { return 0; }
`
	res := Sanitize(source, nil)

	if strings.Contains(res.Source, "#") {
		t.Errorf("directives should be removed, got %q", res.Source)
	}
	if !strings.Contains(res.Source, "int main()") {
		t.Errorf("code should survive, got %q", res.Source)
	}
}

func TestIncludeCapture(t *testing.T) {
	source := `#include <stdio.h>
#include "local.h"
#include	<spaced.h>
`
	res := Sanitize(source, nil)

	expected := []string{"stdio.h", "local.h", "spaced.h"}
	if len(res.Includes) != len(expected) {
		t.Fatalf("expected %d includes, got %d: %v", len(expected), len(res.Includes), res.Includes)
	}
	for i, want := range expected {
		if res.Includes[i] != want {
			t.Errorf("include %d: expected %q, got %q", i, want, res.Includes[i])
		}
	}
}

func TestDefineCapture(t *testing.T) {
	source := `#define MAX 10
#define EMPTY
#define SQUARE(x) ((x) * (x))
`
	res := Sanitize(source, nil)

	if len(res.Defines) != 2 {
		t.Fatalf("expected 2 defines, got %d: %v", len(res.Defines), res.Defines)
	}
	if res.Defines[0].Name != "MAX" || res.Defines[0].Value != "10" {
		t.Errorf("expected MAX=10, got %v", res.Defines[0])
	}
	if res.Defines[1].Name != "EMPTY" || res.Defines[1].Value != "" {
		t.Errorf("expected EMPTY with no value, got %v", res.Defines[1])
	}
}

func TestDirectiveContinuationSwallowed(t *testing.T) {
	source := "#define LONG \\\n    10\nint x;\n"
	res := Sanitize(source, nil)

	if strings.Contains(res.Source, "10") {
		t.Errorf("continuation line should be removed, got %q", res.Source)
	}
	if len(res.Defines) != 1 || res.Defines[0].Name != "LONG" {
		t.Fatalf("expected LONG define, got %v", res.Defines)
	}
	if res.Defines[0].Value != "10" {
		t.Errorf("expected value 10, got %q", res.Defines[0].Value)
	}
}

func TestAttributeStripped(t *testing.T) {
	source := `int f(void) __attribute__((noreturn));
struct S { int x; } __attribute__((packed, aligned(4)));
`
	res := Sanitize(source, nil)

	if strings.Contains(res.Source, "__attribute__") {
		t.Errorf("attributes should be stripped, got %q", res.Source)
	}
	if !strings.Contains(res.Source, "int f(void) ;") {
		t.Errorf("declaration should survive, got %q", res.Source)
	}
	if strings.Contains(res.Source, "aligned") {
		t.Errorf("attribute arguments should be stripped, got %q", res.Source)
	}
}

func TestKeepAttributesOption(t *testing.T) {
	source := "int x __attribute__((unused));\n"
	res := Sanitize(source, &Options{KeepAttributes: true})

	if !strings.Contains(res.Source, "__attribute__((unused))") {
		t.Errorf("attributes should be kept, got %q", res.Source)
	}
}

func TestLineNumbersPreserved(t *testing.T) {
	source := "#include <a.h>\n#include <b.h>\nint x;\n"
	res := Sanitize(source, nil)

	lines := strings.Split(res.Source, "\n")
	if len(lines) < 3 || strings.TrimSpace(lines[2]) != "int x;" {
		t.Errorf("int x; should stay on line 3, got %q", res.Source)
	}
}
