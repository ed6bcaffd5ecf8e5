package main

import (
	"net/http"
	"os"
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/config"
)

func main() {
	envCfg, err := config.ParseEnv()
	if err != nil {
		os.Exit(1)
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(envCfg.HealthcheckURL)
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	// Consider any status < 500 as healthy
	if resp.StatusCode >= 500 {
		os.Exit(1)
	}
	os.Exit(0)
}
