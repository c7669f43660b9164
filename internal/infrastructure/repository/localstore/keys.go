package localstore

// Fixed collection keys, one per entity type plus one for the current
// session. These names are the storage contract.
const (
	keyTournaments = "ligasmart_tournaments"
	keyTeams       = "ligasmart_teams"
	keyPlayers     = "ligasmart_players"
	keyMatches     = "ligasmart_matches"
	keyEvents      = "ligasmart_events"
	keyStandings   = "ligasmart_standings"
	keyReferees    = "ligasmart_referees"
	keyCoaches     = "ligasmart_coaches"
	keyUsers       = "ligasmart_users"
	keySession     = "ligasmart_session"
)
