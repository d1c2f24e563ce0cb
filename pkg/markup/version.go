package markup

import (
	"log/slog"

	"golang.org/x/mod/semver"

	"github.com/go-drift/livenative/pkg/errors"
)

// ProtocolVersion is the markup protocol version this client renders.
const ProtocolVersion = "1.0.0"

// CheckVersion reports whether a document declaring version can be rendered
// by a client speaking supported. An empty version is accepted. A version
// that is not valid semver is accepted and logged to logger when it is
// non-nil, since older servers send free-form strings. A different major
// version is a *errors.VersionError.
func CheckVersion(logger *slog.Logger, version, supported string) error {
	if version == "" {
		return nil
	}
	v, s := canonical(version), canonical(supported)
	if !semver.IsValid(v) {
		if logger != nil {
			logger.Warn("ignoring unparseable protocol version", "version", version)
		}
		return nil
	}
	if !semver.IsValid(s) {
		return errors.New("invalid supported protocol version " + supported)
	}
	if semver.Major(v) != semver.Major(s) {
		return &errors.VersionError{Got: version, Supported: supported}
	}
	return nil
}

func canonical(v string) string {
	if v != "" && v[0] != 'v' {
		return "v" + v
	}
	return v
}
