package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

const defaultJwtTTLHours = 168 // 7 days

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Addr        string   `yaml:"addr"`
	JwtTTLHours int      `yaml:"jwt_ttl_hours"`
	CorsOrigins []string `yaml:"cors_origins"`
	LogLevel    string   `yaml:"log_level"`
	LogJSON     bool     `yaml:"log_json"`
	OmdbBaseURL string   `yaml:"omdb_base_url"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	JwtKey     string `yaml:"jwt_key"`
	OmdbApiKey string `yaml:"omdb_api_key"`
	Pg         Pg     `yaml:"pg"`
}

func (c *Config) JwtKey() string {
	return c.private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	hours := c.Public.JwtTTLHours
	if hours <= 0 {
		hours = defaultJwtTTLHours
	}
	return time.Duration(hours) * time.Hour
}

func (c *Config) OmdbApiKey() string {
	return c.private.OmdbApiKey
}

func (c *Config) Pg() Pg {
	return c.private.Pg
}

// New builds a config from already-populated sections. Tests and tools use
// this; the server loads from yaml via MustLoad.
func New(public Public, private Private) *Config {
	return &Config{public, private}
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.mustValidate()
	return cfg
}

func (c *Config) mustValidate() {
	if c.private.JwtKey == "" {
		panic("config: jwt_key is required")
	}
	if c.private.Pg.Host == "" || c.private.Pg.Dbname == "" {
		panic("config: pg host and dbname are required")
	}
}
