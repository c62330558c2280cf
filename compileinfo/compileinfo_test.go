package compileinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	c := CompileInfo{Tool: "runfolderinfo", Module: "github.com/carbocation/runfolder", GoVersion: "go1.18", Commit: "abc123", CommitTime: "2022-05-01T00:00:00Z", Modified: true}
	s := c.String()
	for _, want := range []string{"runfolderinfo", "abc123", "uncommitted"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected %q in %q", want, s)
		}
	}

	c.Commit = ""
	if s := c.String(); !strings.Contains(s, "no VCS information") {
		t.Errorf("Unexpected banner without commit: %q", s)
	}
}

func TestGet(t *testing.T) {
	if got := Get("x"); got.Tool != "x" {
		t.Errorf("Expected tool x, got %+v", got)
	}
}
