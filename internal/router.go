package internal

import (
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg Config, creds CredentialProvider, sessions *SessionStore, store *ScriptStore) *gin.Engine {
	r := gin.Default()

	// Relay first: stateless, unauthenticated, domain-blind.
	r.Any("/api/relay", Relay(cfg.AppscriptURL, cfg.AppscriptKey))

	api := r.Group("/api")
	{
		api.GET("/catalog", Catalog())

		api.POST("/auth/login", Login(creds, sessions, cfg.JWTSecret))
		api.POST("/auth/logout", Auth(cfg.JWTSecret), Logout(sessions))
		api.GET("/me", Auth(cfg.JWTSecret), Me())

		// Manager workflow
		mgr := api.Group("", Auth(cfg.JWTSecret), RequireManager())
		{
			mgr.POST("/team", SelectTeam(sessions))
			mgr.GET("/slots", ListSlots(sessions))
			mgr.POST("/slots", CreateSlots(sessions, store))
			mgr.POST("/participants/:i", UpdateParticipant(sessions))
			mgr.POST("/participants/:i/sports", UpdateSport(sessions))
			mgr.POST("/participants/:i/photo", UploadPhoto(sessions))
			mgr.POST("/validate", ValidateAll(sessions))
			mgr.POST("/submit", SubmitAll(sessions, store))
		}

		// Admin view
		admin := api.Group("/admin", Auth(cfg.JWTSecret), RequireAdmin())
		{
			admin.GET("/registrations", AdminRegistrations(store))
			admin.GET("/counts", AdminCounts(store))
			admin.GET("/export.csv", AdminExportCSV(store))
		}
	}

	return r
}
