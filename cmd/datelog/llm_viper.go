package main

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func llmEndpointFromViper() string {
	return strings.TrimSpace(viper.GetString("llm.endpoint"))
}

// llmAPIKeyFromViper resolves the one AI credential: config key first, then
// the conventional environment variable. It is never written anywhere; the
// value only ever flows into the provider constructor for this process.
func llmAPIKeyFromViper() string {
	if key := strings.TrimSpace(viper.GetString("llm.api_key")); key != "" {
		return key
	}
	return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
}

func llmModelFromViper() string {
	return strings.TrimSpace(viper.GetString("llm.model"))
}

func llmTimeoutFromViper() time.Duration {
	d := viper.GetDuration("llm.timeout")
	if d <= 0 {
		d = 60 * time.Second
	}
	return d
}
