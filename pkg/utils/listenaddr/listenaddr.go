package listenaddr

import (
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Parse splits a daemon address into a network and an address usable by
// net.Listen and net.Dial. Accepted forms are "unix:///path/to.sock",
// "tcp://host:port" and a bare filesystem path, which means a unix socket.
func Parse(s string) (network, address string, err error) {
	switch {
	case s == "":
		return "", "", pkgerrors.New("empty address")
	case strings.HasPrefix(s, "unix://"):
		network, address = "unix", strings.TrimPrefix(s, "unix://")
	case strings.HasPrefix(s, "tcp://"):
		network, address = "tcp", strings.TrimPrefix(s, "tcp://")
	case strings.Contains(s, "://"):
		return "", "", pkgerrors.Errorf("unsupported address scheme in %q", s)
	default:
		network, address = "unix", s
	}
	if address == "" {
		return "", "", pkgerrors.Errorf("missing address in %q", s)
	}
	return network, address, nil
}
