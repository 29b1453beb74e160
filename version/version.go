// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running program.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// Info describes a build.
type Info struct {
	// Name is the command name.
	Name string
	// Commit is the VCS revision, if known.
	Commit string
	// Dirty reports whether the working tree had local modifications.
	Dirty bool
	// Go is the Go version used to build the program.
	Go string
	// OS and Arch are the target platform.
	OS, Arch string
}

// String returns a human-readable version string terminated by a newline.
func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString(i.Name)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (commit %s", i.Commit)
		if i.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, " built with %s for %s/%s\n", i.Go, i.OS, i.Arch)
	return sb.String()
}

var info = sync.OnceValue(func() Info {
	i := Info{
		Name: CmdName(),
		Go:   runtime.Version(),
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
})

// Version returns build information of the running program.
func Version() Info { return info() }

// CmdName returns the base name of the running program, without the
// extension on Windows.
func CmdName() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Path != "" {
		return filepath.Base(bi.Path)
	}
	exe, err := os.Executable()
	if err != nil {
		return filepath.Base(os.Args[0])
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}
