package main

import (
	"net/http"
	"os"
	"time"

	"github.com/MohcineSafi/Battle-Arena/internal/constants"
)

func main() {
	target := os.Getenv(constants.EnvHealthURL)
	if target == "" {
		target = constants.HealthcheckTarget
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(target)
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	// The version endpoint needs no state; anything but 200 means unhealthy.
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
	os.Exit(0)
}
