package cli

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/alecthomas/kong"
	"go.abhg.dev/carve/internal/carve"
)

// _version is the version of the binary.
// Set with the -X linker flag at release time;
// builds from source report build information instead.
var _version = "dev"

var _debugReadBuildInfo = debug.ReadBuildInfo

// _generateBuildReport reports the VCS revision and timestamp
// recorded in the binary's build information, if any.
var _generateBuildReport = func() string {
	info, ok := _debugReadBuildInfo()
	if !ok {
		return ""
	}

	var (
		revision, timestamp string
		dirty               bool
	)
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		case "vcs.time":
			timestamp = setting.Value
		}
	}

	var report strings.Builder
	if revision != "" {
		report.WriteString(revision)
		if dirty {
			report.WriteString("-dirty")
		}
	}
	if timestamp != "" {
		if report.Len() > 0 {
			report.WriteString(" ")
		}
		report.WriteString(timestamp)
	}
	return report.String()
}

// versionFlag prints the version of the binary and exits.
type versionFlag bool

// BeforeReset runs before flag values are reset to their defaults,
// so --version wins even if the rest of the command line is invalid.
func (versionFlag) BeforeReset(app *kong.Kong, id carve.Identity) error {
	version := _version
	if report := _generateBuildReport(); report != "" {
		version += " (" + report + ")"
	}

	fmt.Fprintln(app.Stdout, id.Name, version)
	app.Exit(0)
	return nil
}
