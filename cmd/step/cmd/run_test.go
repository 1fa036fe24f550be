/*
File    : step/cmd/step/cmd/run_test.go
Project : Step interpreter
*/
package cmd

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// execProgram runs a source string through the full pipeline and returns
// the exit code with the captured stdout and stderr.
func execProgram(src string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := runProgram(src, &out, &errOut)
	return code, out.String(), errOut.String()
}

// TestRunProgram_Fibonacci snapshots the output of a small program
func TestRunProgram_Fibonacci(t *testing.T) {
	src := `
def fib(n) {
    if (n < 2) {
        return n;
    }
    return fib(n - 1) + fib(n - 2);
}

i = 0;
while (i < 10) {
    print(fib(i));
    i = i + 1;
}
`
	code, out, errOut := execProgram(src)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, errOut)
	}
	snaps.MatchSnapshot(t, out)
}

// TestRunProgram_ListAliasing snapshots aliasing-visible output
func TestRunProgram_ListAliasing(t *testing.T) {
	src := `
a = [1, 2, 3];
b = a;
b[0] = 9;
append(a, 4);
print(a, b);
print(str(a) == str(b));
`
	code, out, errOut := execProgram(src)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, errOut)
	}
	snaps.MatchSnapshot(t, out)
}

// TestRunProgram_ExitCodes verifies the driver's status mapping
func TestRunProgram_ExitCodes(t *testing.T) {
	tests := []struct {
		src  string
		code int
	}{
		{`print(1 + 1);`, 0},
		{`assert(0);`, 1},
		{`x = ;`, 1},
		{`"unterminated`, 1},
		{`[1, 2][5];`, 1},
	}

	for _, tt := range tests {
		code, _, errOut := execProgram(tt.src)
		if code != tt.code {
			t.Errorf("%s: expected exit %d, got %d", tt.src, tt.code, code)
		}
		if tt.code != 0 && errOut == "" {
			t.Errorf("%s: expected a diagnostic on stderr", tt.src)
		}
	}
}
