package internal

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

type Role struct {
	Kind     string
	Team     int // bound team number, managers only
	Username string
}

// CredentialProvider resolves a username/password pair to a role. The static
// list below is the only implementation today; a real identity store can be
// swapped in without touching the workflow handlers.
type CredentialProvider interface {
	Authenticate(username, password string) (Role, bool)
}

type credential struct {
	username string
	password string
}

type StaticCredentials struct {
	admins   []credential
	managers []credential // index i manages team i+1
}

func DefaultCredentials() *StaticCredentials {
	s := &StaticCredentials{
		admins: []credential{
			{"admin1", "Chamba@Admin1"},
			{"admin2", "Chamba@Admin2"},
			{"admin3", "Chamba@Admin3"},
		},
	}
	for i := 1; i <= TeamCount; i++ {
		s.managers = append(s.managers, credential{
			username: fmt.Sprintf("manager_team%d", i),
			password: fmt.Sprintf("Cham@Team%d", i),
		})
	}
	return s
}

// Authenticate checks the admin list first, then the managers. Exact match
// only, no normalization.
func (s *StaticCredentials) Authenticate(username, password string) (Role, bool) {
	for _, c := range s.admins {
		if c.username == username && c.password == password {
			return Role{Kind: RoleAdmin, Username: username}, true
		}
	}
	for i, c := range s.managers {
		if c.username == username && c.password == password {
			return Role{Kind: RoleManager, Team: i + 1, Username: username}, true
		}
	}
	return Role{}, false
}

func Login(creds CredentialProvider, sessions *SessionStore, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": "bad json"})
			return
		}
		if req.Username == "" || req.Password == "" {
			c.JSON(400, gin.H{"error": "fill all fields"})
			return
		}

		role, ok := creds.Authenticate(req.Username, req.Password)
		if !ok {
			c.JSON(401, gin.H{"error": "Invalid username/password"})
			return
		}

		sid := uuid.NewString()
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
			SID:      sid,
			Role:     role.Kind,
			Team:     role.Team,
			Username: role.Username,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    "chamba-portal",
			},
		})
		s, _ := tok.SignedString([]byte(secret))

		secure := os.Getenv("COOKIE_SECURE") == "1"
		c.SetCookie(cookieName, s, 86400, "/", "", secure, true)

		sessions.Create(sid, role.Team)

		msg := "Logged in as admin"
		if role.Kind == RoleManager {
			msg = fmt.Sprintf("Logged in as %s (Team %d)", role.Username, role.Team)
		}
		c.JSON(200, gin.H{"ok": true, "message": msg})
	}
}

// Logout clears the cookie and discards any unsubmitted slots.
func Logout(sessions *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.Drop(sid(c))
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Logged out"})
	}
}

func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		out := gin.H{"username": username(c), "role": role(c)}
		if role(c) == RoleManager {
			out["team"] = team(c)
		}
		c.JSON(200, out)
	}
}
