// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	outer := []string{
		"collatz/internal/appcore", "collatz/internal/app",
		"collatz/internal/cli", "collatz/internal/config", "collatz/cmd/",
	}
	bans := map[string][]string{
		// The library stays importable on its own.
		"collatz/pkg/": {"collatz/internal/", "collatz/cmd/"},
		"collatz/internal/runner": append([]string{
			"collatz/internal/writers", "collatz/internal/output", "collatz/internal/metrics",
		}, outer...),
		"collatz/internal/writers": outer,
		"collatz/internal/output":  append([]string{"collatz/internal/writers"}, outer...),
		"collatz/internal/metrics": append([]string{"collatz/internal/writers", "collatz/internal/output"}, outer...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "collatz/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
