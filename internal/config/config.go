package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath          = "config.json"
	defaultBaseURL       = "http://www.omdbapi.com/"
	defaultTimeout       = 10 * time.Second
	defaultSlowThreshold = 2 * time.Second
	defaultResultsPath   = "omdb_test_results.json"
)

// 配置文件的原始结构，时间字段用字符串表示
type fileConfig struct {
	BaseURL       string `json:"base_url" yaml:"base_url"`
	APIKey        string `json:"api_key" yaml:"api_key"`
	Timeout       string `json:"timeout" yaml:"timeout"`
	ResultsPath   string `json:"results_path" yaml:"results_path"`
	ExcelPath     string `json:"excel_path" yaml:"excel_path"`
	SlowThreshold string `json:"slow_threshold" yaml:"slow_threshold"`
	Verbose       bool   `json:"verbose" yaml:"verbose"`
}

type Config struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	ResultsPath   string
	ExcelPath     string
	SlowThreshold time.Duration
	Verbose       bool
}

// Load 读取配置文件（.json/.yaml/.yml），再用环境变量覆盖。
// 默认路径的文件不存在时使用默认值。
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultPath
	}

	var fc fileConfig
	if err := readFile(path, &fc); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := applyEnv(&fc); err != nil {
		return nil, err
	}

	cfg := &Config{
		BaseURL:     fc.BaseURL,
		APIKey:      strings.TrimSpace(fc.APIKey),
		ResultsPath: fc.ResultsPath,
		ExcelPath:   fc.ExcelPath,
		Verbose:     fc.Verbose,
	}

	var err error
	if cfg.Timeout, err = parseDuration("timeout", fc.Timeout, defaultTimeout); err != nil {
		return nil, err
	}
	if cfg.SlowThreshold, err = parseDuration("slow_threshold", fc.SlowThreshold, defaultSlowThreshold); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.ResultsPath == "" {
		cfg.ResultsPath = defaultResultsPath
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required: set OMDB_API_KEY or pass -config with api_key")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL, got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.SlowThreshold <= 0 {
		return fmt.Errorf("slow_threshold must be positive")
	}
	return nil
}

func readFile(path string, fc *fileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	case ".json":
		err = json.Unmarshal(data, fc)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(fc *fileConfig) error {
	setFromEnv("OMDB_BASE_URL", &fc.BaseURL)
	setFromEnv("OMDB_API_KEY", &fc.APIKey)
	setFromEnv("OMDB_TIMEOUT", &fc.Timeout)
	setFromEnv("OMDB_RESULTS_PATH", &fc.ResultsPath)
	setFromEnv("OMDB_EXCEL_PATH", &fc.ExcelPath)
	setFromEnv("OMDB_SLOW_THRESHOLD", &fc.SlowThreshold)
	if v := os.Getenv("OMDB_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("OMDB_VERBOSE: %w", err)
		}
		fc.Verbose = b
	}
	return nil
}

func setFromEnv(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func parseDuration(name, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}
