package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kritagya32/chamba-portal-fresh/internal"
)

func main() {
	_ = godotenv.Load()

	cfg, err := internal.ConfigFromEnv()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	creds := internal.DefaultCredentials()
	sessions := internal.NewSessionStore()
	store := internal.NewScriptStore(cfg.ScriptURL)

	r := internal.NewRouter(cfg, creds, sessions, store)

	logrus.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("server: %v", err)
	}
}
