package filesumcli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ronelsolomon/filesummarize/internal/version"
)

func TestHelpContainsSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--help"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	s := out.String()
	for _, sub := range []string{"filesum", "analyze", "extensions", "models", "history", "watch"} {
		if !strings.Contains(s, sub) {
			t.Fatalf("help missing %q: %s", sub, s)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.String() != version.String()+"\n" {
		t.Fatalf("version output %q", out.String())
	}
}
