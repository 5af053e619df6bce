package internal

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Relay is the stateless passthrough between browsers and the Apps Script
// upstream. It exists to sidestep cross-origin restrictions and to keep the
// upstream key off the client; it knows nothing about the domain model.
func Relay(scriptURL, scriptKey string) gin.HandlerFunc {
	client := &http.Client{}
	return func(c *gin.Context) {
		setCORS(c)

		if scriptURL == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "APPSCRIPT_URL not configured on server"})
			return
		}

		target := scriptURL
		if qs := c.Request.URL.RawQuery; qs != "" {
			target += "?" + qs
		}
		if scriptKey != "" {
			if strings.Contains(target, "?") {
				target += "&key=" + url.QueryEscape(scriptKey)
			} else {
				target += "?key=" + url.QueryEscape(scriptKey)
			}
		}

		var body io.Reader
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			body = c.Request.Body
		}

		req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ct := c.GetHeader("Content-Type")
		if ct == "" {
			ct = "application/json"
		}
		req.Header.Set("Content-Type", ct)

		resp, err := client.Do(req)
		if err != nil {
			logrus.Errorf("relay: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			logrus.Errorf("relay read: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		respCT := resp.Header.Get("Content-Type")
		if respCT == "" {
			respCT = "application/json"
		}
		c.Data(resp.StatusCode, respCT, data)
	}
}

func setCORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET,HEAD,POST,OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
}
