// Package compileinfo reports which commit a runfolder tool was built from,
// so output files can be traced back to the code that produced them.
package compileinfo

import (
	"fmt"
	"io"
	"runtime/debug"
)

type CompileInfo struct {
	Tool       string
	Module     string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Commit == "" {
		return fmt.Sprintf("%s (%s, %s): no VCS information was embedded at build time.", c.Tool, c.Module, c.GoVersion)
	}

	mod := ""
	if c.Modified {
		mod = " (with uncommitted changes)"
	}

	return fmt.Sprintf("%s (%s, %s) built from commit %s%s at %s.", c.Tool, c.Module, c.GoVersion, c.Commit, mod, c.CommitTime)
}

// Get reads the build info embedded in the running binary. tool names the
// binary in the banner.
func Get(tool string) CompileInfo {
	out := CompileInfo{Tool: tool}

	z, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = z.GoVersion
	out.Module = z.Main.Path
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func Fprint(w io.Writer, tool string) {
	fmt.Fprintln(w, Get(tool))
}
