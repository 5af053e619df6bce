package internal

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port      string
	JWTSecret string

	// Relay upstream. AppscriptURL may be empty: the relay then answers
	// every request with a configuration error instead of failing at boot.
	AppscriptURL string
	AppscriptKey string

	// Base URL the registration workflow talks to. Defaults to this
	// server's own relay route.
	ScriptURL string
}

func ConfigFromEnv() (Config, error) {
	var c Config

	c.Port = strings.TrimSpace(os.Getenv("PORT"))
	if c.Port == "" {
		c.Port = "8080"
	}

	c.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if c.JWTSecret == "" {
		return c, fmt.Errorf("JWT_SECRET is empty")
	}

	c.AppscriptURL = strings.TrimSpace(os.Getenv("APPSCRIPT_URL"))
	c.AppscriptKey = strings.TrimSpace(os.Getenv("APPSCRIPT_KEY"))

	c.ScriptURL = strings.TrimSpace(os.Getenv("GOOGLE_SCRIPT_URL"))
	if c.ScriptURL == "" {
		c.ScriptURL = "http://127.0.0.1:" + c.Port + "/api/relay"
	}

	return c, nil
}
