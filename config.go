//
// config.go
// Distributed under terms of the MIT license.
//

package ember

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ipv4Regex = regexp.MustCompile(`^((25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])\.){3}(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])$`)

// Config is the Application's bootstrap configuration.
type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	LoggerPath  string `yaml:"logger_path,omitempty"`
	LoggerLevel string `yaml:"logger_level,omitempty"`
	PrettyLog   bool   `yaml:"pretty_log,omitempty"`

	MaxConnections int  `yaml:"max_connections,omitempty"`
	DisableReqLog  bool `yaml:"disable_req_log,omitempty"`

	// AccessLogDriver is one of "", "sqlite", "mysql", "postgres". Empty
	// disables the persisted access log entirely.
	AccessLogDriver string `yaml:"access_log_driver,omitempty"`
	AccessLogDSN    string `yaml:"access_log_dsn,omitempty"`

	// RedisAddr is the address to hand to NewHitCounter. New does not read
	// it: setting it registers no counter by itself.
	RedisAddr string `yaml:"redis_addr,omitempty"`

	TLSConfig *tls.Config `yaml:"-"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) IsValid() error {
	if !ipv4Regex.MatchString(c.Host) {
		return errors.New("invalid host")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("invalid port")
	}
	return nil
}

type Option func(*Config)

func WithHost(host string) Option           { return func(c *Config) { c.Host = host } }
func WithPort(port int) Option              { return func(c *Config) { c.Port = port } }
func WithTLS(cfg *tls.Config) Option        { return func(c *Config) { c.TLSConfig = cfg } }
func WithMaxConnections(n int) Option       { return func(c *Config) { c.MaxConnections = n } }
func WithLoggerPath(path string) Option     { return func(c *Config) { c.LoggerPath = path } }
func WithLoggerLevel(level string) Option   { return func(c *Config) { c.LoggerLevel = level } }
func WithPrettyLog() Option                 { return func(c *Config) { c.PrettyLog = true } }
func WithAccessLog(driver, dsn string) Option {
	return func(c *Config) { c.AccessLogDriver = driver; c.AccessLogDSN = dsn }
}
func WithRedisAddr(addr string) Option { return func(c *Config) { c.RedisAddr = addr } }

// LoadConfigFile reads a YAML config file into a fresh Config. Use its
// fields with the matching With* option (or apply it directly as the base
// before overriding specific fields) when constructing an Application.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadDotEnv loads a .env file into the process environment, ahead of
// whatever config layering the caller does next.
func LoadDotEnv(path string) error {
	return godotenv.Load(path)
}
