package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var o string
	fs.BoolVar(&b, "steps", false, "")
	fs.StringVar(&o, "output", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--steps", "27", "--output", "json", "1..9", "--", "-5"})
	if len(flagArgs) != 3 || flagArgs[2] != "json" {
		t.Fatalf("unexpected flags: %v", flagArgs)
	}
	if len(posArgs) != 3 || posArgs[0] != "27" || posArgs[1] != "1..9" || posArgs[2] != "-5" {
		t.Fatalf("unexpected positionals: %v", posArgs)
	}
}

func TestSplitFlagsAndPositionals_EqualsForm(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var o string
	fs.StringVar(&o, "output", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--output=jsonl", "9"})
	if len(flagArgs) != 1 || len(posArgs) != 1 || posArgs[0] != "9" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	_ = os.WriteFile(a, []byte("1\n"), 0o644)
	_ = os.WriteFile(b, []byte("2\n"), 0o644)
	got, err := ExpandPaths([]string{filepath.Join(dir, "*.txt"), "-"})
	if err != nil || len(got) != 3 || got[2] != "-" {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestExpandPaths_NoMatch(t *testing.T) {
	if _, err := ExpandPaths([]string{filepath.Join(t.TempDir(), "*.none")}); err == nil {
		t.Fatalf("expected error for unmatched glob")
	}
}
