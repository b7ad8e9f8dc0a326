package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a local fallback server listen address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-live live server base URL
//	-local local fallback server base URL
//	-host host mode: auto, browser or packaged
//	-log-file client log file path
//	-request-timeout outbound request timeout (e.g., "15s")
//	-probe-timeout reachability probe timeout (e.g., "600ms")
//	-force-local pin requests to the local fallback server
//	-force-local-file flag file that pins requests to the local server while present
//	-resolve-interval base resolver re-check period (e.g., "3s")
//	-sync-interval flush and pull period (e.g., "5m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var (
		databaseDSN     string
		jsonConfigPath  string
		liveAddress     string
		localAddress    string
		hostMode        string
		logFile         string
		forceLocalFile  string
		requestTimeout  time.Duration
		probeTimeout    time.Duration
		resolveInterval time.Duration
		syncInterval    time.Duration
		forceLocal      bool
	)

	fs := flag.NewFlagSet("inventory", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&liveAddress, "live", "", "Live server base URL")
	fs.StringVar(&localAddress, "local", "", "Local fallback server base URL")
	fs.StringVar(&hostMode, "host", "", "Host mode: auto, browser or packaged")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&probeTimeout, "probe-timeout", 0, "Reachability probe timeout (e.g., 600ms)")
	fs.BoolVar(&forceLocal, "force-local", false, "Pin requests to the local fallback server")
	fs.StringVar(&forceLocalFile, "force-local-file", "", "Flag file pinning requests to the local server")
	fs.DurationVar(&resolveInterval, "resolve-interval", 0, "Base resolver re-check period (e.g., 3s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Flush and pull period (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Host:    hostMode,
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Adapter: Adapter{
			LiveAddress:    liveAddress,
			LocalAddress:   localAddress,
			RequestTimeout: requestTimeout,
			ProbeTimeout:   probeTimeout,
		},
		Connectivity: Connectivity{
			ForceLocal:      forceLocal,
			ForceLocalFile:  forceLocalFile,
			ResolveInterval: resolveInterval,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
