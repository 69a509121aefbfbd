package util

import (
	"os"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"
)

// Config is Reportgate base configuration
type Config struct {
	Server       Server       `yaml:"server"`
	ReportServer ReportServer `yaml:"reportserver"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	LogPath       string `yaml:"logPath"`
}

// ReportServer describes the remote SOAP reporting service and how to
// authenticate against it.
type ReportServer struct {
	// Endpoint is the base URL of the report server, e.g.
	// http://reports.example.com/ReportServer
	Endpoint string `yaml:"endpoint"`

	// BypassAuth forces the configured service account for every outbound
	// call, ignoring the caller's identity. Demo installations only.
	BypassAuth bool `yaml:"bypassAuth"`

	Domain   string `yaml:"domain"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// TimeoutSeconds bounds every outbound remote call. Zero means the
	// default of 30 seconds.
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// Timeout returns the per-call deadline for outbound remote calls.
func (r ReportServer) Timeout() time.Duration {
	if r.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// Load loads reportgate config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open configuration file")
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		return errors.Wrap(err, "failed to parse configuration file")
	}

	return nil
}
