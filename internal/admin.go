package internal

import (
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ------------------- Admin view -------------------

// GET /api/admin/registrations
func AdminRegistrations(store *ScriptStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, _, err := store.Export(c.Request.Context())
		if err != nil {
			c.JSON(502, gin.H{"error": "Fetch failed: " + err.Error()})
			return
		}
		c.Data(200, "application/json", raw)
	}
}

// GET /api/admin/counts
func AdminCounts(store *ScriptStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, rows, err := store.Export(c.Request.Context())
		if err != nil {
			c.JSON(502, gin.H{"error": "Fetch failed: " + err.Error()})
			return
		}
		c.JSON(200, gin.H{"counts": tallyTeams(rows)})
	}
}

// tallyTeams groups rows by team key and sorts numerically where both keys
// are numbers, lexically otherwise.
func tallyTeams(rows []Row) []TeamTally {
	counts := map[string]int{}
	for _, r := range rows {
		k := teamKey(r)
		if k == "" {
			k = "Unknown"
		}
		counts[k]++
	}

	out := make([]TeamTally, 0, len(counts))
	for k, n := range counts {
		out = append(out, TeamTally{Team: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		a, aerr := strconv.Atoi(out[i].Team)
		b, berr := strconv.Atoi(out[j].Team)
		if aerr == nil && berr == nil {
			return a < b
		}
		if aerr == nil {
			return true
		}
		if berr == nil {
			return false
		}
		return out[i].Team < out[j].Team
	})
	return out
}

// GET /api/admin/export.csv
func AdminExportCSV(store *ScriptStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, _, err := store.Export(c.Request.Context())
		if err != nil {
			c.JSON(502, gin.H{"error": "Fetch failed: " + err.Error()})
			return
		}
		csvData, err := CSVFromJSON(raw)
		if err != nil {
			c.JSON(502, gin.H{"error": "Fetch failed: " + err.Error()})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="all_registrations.csv"`)
		c.Data(200, "text/csv; charset=utf-8", []byte(csvData))
	}
}
