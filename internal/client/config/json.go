package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/avolkovs/wpcloud/internal/flagx"
	"github.com/avolkovs/wpcloud/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent from the file" from a zero value so the file
// only overrides what it actually sets. timex.Duration lets intervals be
// written either as strings like "30s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL      *string         `json:"api_base_url"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	VerifyObjectKey *bool           `json:"verify_object_key"`
	LogLevel        *string         `json:"log_level"`
}

func jsonConfigPath() string {
	return flagx.JsonConfigFlags()
}

// parseJson overlays cfg with values from the JSON file at path. An empty
// path means no file was requested and is not an error.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.VerifyObjectKey != nil {
		cfg.VerifyObjectKey = *jc.VerifyObjectKey
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
