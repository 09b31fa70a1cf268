package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// defaultUserAgent is the fixed desktop Chrome identity sent with every fetch.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/98.0.4758.102 Safari/537.36"

type Config struct {
	Query          string
	OutputFile     string
	UserAgent      string
	PageLoadDelay  time.Duration
	TabTimeout     time.Duration
	MaxBrowserTabs int
	HTTPPort       string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Query:          getEnv("JOB_QUERY", "Data Analyst in kolkata, India"),
		OutputFile:     getEnv("OUTPUT_FILE", "extracted_jobs.json"),
		UserAgent:      getEnv("USER_AGENT", defaultUserAgent),
		PageLoadDelay:  getEnvDuration("PAGE_LOAD_DELAY", 2*time.Second),
		TabTimeout:     getEnvDuration("TAB_TIMEOUT", 60*time.Second),
		MaxBrowserTabs: getEnvInt("MAX_BROWSER_TABS", 4),
		HTTPPort:       getEnv("HTTP_PORT", "8082"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
