package webpath

const (
	Home   = "/"
	Player = "/players/:id"
	Theme  = "/theme/:mode"

	Api              = "/api/v1"
	ApiHealth        = "/health"
	ApiOverview      = "/overview"
	ApiPlayers       = "/players"
	ApiPlayer        = "/players/:id"
	ApiPlayerStats   = "/players/:id/stats"
	ApiDistributions = "/distributions/:field"
	ApiCrosstab      = "/crosstab"
	ApiCompare       = "/compare"
	ApiStrokes       = "/strokes"
	ApiSimulation    = "/simulation"
	ApiQuality       = "/quality"
)

// Path exposes link prefixes to the templates.
func Path() map[string]string {
	return map[string]string{
		"Home":     Home,
		"Players":  "/players/",
		"Theme":    "/theme/",
		"Api":      Api,
		"ApiStats": Api + ApiPlayers + "/",
	}
}
