package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DBUrl         string
	CSVPath       string
	CSVRequired   bool
	ExposeMetrics bool
	LogFormat     string
	Debug         bool
}

// ParseFlags reads the command line, falling back to SURVEY_* environment
// variables (optionally loaded from a .env file) for anything not given.
func ParseFlags(args []string) (cfg Config, err error) {
	if err = godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}

	env := envDefaults{}

	fs := flag.NewFlagSet("save-survey", flag.ContinueOnError)
	var host string
	fs.StringVar(&host, "host", env.str("SURVEY_HOST", "0.0.0.0"), "listen host name")
	var port uint
	fs.UintVar(&port, "port", env.num("port", "SURVEY_PORT", 8080), "listen port number")
	fs.StringVar(&cfg.DBUrl, "db-url", env.str("SURVEY_DB_URL", "survey_responses.db"), "path to SQLite3 DB file")
	fs.StringVar(&cfg.CSVPath, "csv-path", env.str("SURVEY_CSV_PATH", "survey_responses.csv"), "path to the CSV mirror of saved responses")
	fs.BoolVar(&cfg.CSVRequired, "csv-required", env.toggle("csv-required", "SURVEY_CSV_REQUIRED", false), "fail the request when the CSV mirror cannot be written")
	fs.BoolVar(&cfg.ExposeMetrics, "metrics", env.toggle("metrics", "SURVEY_METRICS", true), "expose Prometheus metrics on /metrics")
	fs.StringVar(&cfg.LogFormat, "log-format", env.str("SURVEY_LOG_FORMAT", "text"), "log format: text or json")
	fs.BoolVar(&cfg.Debug, "debug", env.toggle("debug", "SURVEY_DEBUG", false), "log at DEBUG level")

	if err = fs.Parse(args); err != nil {
		return cfg, err
	}
	// a malformed variable only matters when its flag was not given
	fs.Visit(func(f *flag.Flag) { env.override(f.Name) })
	if err = env.firstErr(); err != nil {
		return cfg, err
	}

	if port == 0 || port > 65535 {
		return cfg, fmt.Errorf("invalid port %d", port)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return cfg, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	if cfg.DBUrl == "" {
		return cfg, errors.New("missing parameter -db-url")
	}
	if cfg.CSVPath == "" {
		return cfg, errors.New("missing parameter -csv-path")
	}

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	return cfg, nil
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

// envDefaults remembers malformed variables by the flag they feed.
type envDefaults struct {
	flags []string
	errs  map[string]error
}

func (e *envDefaults) str(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func (e *envDefaults) num(name, key string, def uint) uint {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		e.fail(name, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return uint(n)
}

func (e *envDefaults) toggle(name, key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(name, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return b
}

func (e *envDefaults) fail(name string, err error) {
	if e.errs == nil {
		e.errs = map[string]error{}
	}
	e.flags = append(e.flags, name)
	e.errs[name] = err
}

func (e *envDefaults) override(name string) {
	delete(e.errs, name)
}

func (e *envDefaults) firstErr() error {
	for _, name := range e.flags {
		if err, ok := e.errs[name]; ok {
			return err
		}
	}
	return nil
}
