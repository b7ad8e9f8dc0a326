package connectivity

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
)

// HostCapability classifies the environment the client runs in.
type HostCapability int

const (
	// HostBrowser is a plain networked client. The live server is the
	// default target.
	HostBrowser HostCapability = iota
	// HostPackagedOffline is the packaged build shipped with a local
	// fallback server. The local server is the default target.
	HostPackagedOffline
)

const (
	// PackagedEnv, when set to a true value, marks the host as packaged.
	PackagedEnv = "INVENTORY_PACKAGED"
	// PackagedMarker is a file placed next to the packaged executable.
	PackagedMarker = ".packaged"
)

func (h HostCapability) String() string {
	if h == HostPackagedOffline {
		return "packaged"
	}
	return "browser"
}

// DetectHostCapability makes the single host classification the resolver
// relies on. An explicit mode wins; in auto mode the PackagedEnv variable is
// consulted first, then the PackagedMarker file next to the executable.
//
// lookupEnv and executable are usually os.LookupEnv and os.Executable.
func DetectHostCapability(mode string, lookupEnv func(string) (string, bool), executable func() (string, error)) HostCapability {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case config.HostBrowser:
		return HostBrowser
	case config.HostPackaged:
		return HostPackagedOffline
	}

	if lookupEnv != nil {
		if raw, ok := lookupEnv(PackagedEnv); ok {
			packaged, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err == nil {
				if packaged {
					return HostPackagedOffline
				}
				return HostBrowser
			}
		}
	}

	if executable != nil {
		if exe, err := executable(); err == nil {
			marker := filepath.Join(filepath.Dir(exe), PackagedMarker)
			if _, err = os.Stat(marker); err == nil {
				return HostPackagedOffline
			}
		}
	}

	return HostBrowser
}
