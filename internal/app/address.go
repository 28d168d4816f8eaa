package app

import (
	"log/slog"
	"net"
	"strings"
)

// ResolveBaseAddress resolves the host both services are reached on and
// returns it with an http scheme. It prefers a non-loopback IPv4 address of
// this machine, assuming the services run on the same LAN host, and falls
// back to defaultHost when none can be found. Resolved once per session.
func ResolveBaseAddress(defaultHost string, logger *slog.Logger) string {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.Contains(defaultHost, "://") {
		return strings.TrimSuffix(defaultHost, "/")
	}

	host := defaultHost
	if ip := localIPv4(); ip != "" {
		host = ip
	} else {
		logger.Debug("no local network address found, using configured host", "host", defaultHost)
	}
	return "http://" + host
}

// localIPv4 returns the first non-loopback IPv4 address of an interface that
// is up, or an empty string.
func localIPv4() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok || ipNet.IP.IsLoopback() {
				continue
			}
			if ip4 := ipNet.IP.To4(); ip4 != nil {
				return ip4.String()
			}
		}
	}
	return ""
}
