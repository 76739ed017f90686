package version

import "runtime/debug"

// Version can be set at build time using something like:
// go build -ldflags "-X github.com/kostchei/Yourdio/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision the binary was built from, with a
// -dirty suffix when the tree was modified. Empty when the binary
// carries no build info.
var Hash = vcsHash()

// VersionOrHash prefers the build-time version and falls back to the
// VCS hash.
var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return Hash
}()

func vcsHash() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	modified := false
	for _, setting := range info.Settings {
		if setting.Key == "vcs.modified" && setting.Value == "true" {
			modified = true
			break
		}
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			hash := setting.Value
			if len(hash) > 7 {
				hash = hash[:7]
			}
			if modified {
				return hash + "-dirty"
			}
			return hash
		}
	}
	return ""
}
