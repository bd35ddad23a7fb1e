package tennis

const (
	// UnrankedSentinel is the ranking given to players whose rank cannot be
	// parsed, so they sort after every ranked player.
	UnrankedSentinel = 9999
	// DefaultCountry is used when a record carries no IOC code.
	DefaultCountry = "Unknown"
	// DefaultImageTemplate names a player's primary image from their id.
	DefaultImageTemplate = "/images/players/%s.jpg"
)

// Surface is the court type a match was played on.
type Surface string

const (
	SurfaceHard   Surface = "hard"
	SurfaceClay   Surface = "clay"
	SurfaceGrass  Surface = "grass"
	SurfaceCarpet Surface = "carpet"
)

// Player is the consolidated view of one player across the season.
type Player struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Country       string       `json:"country"`
	FlagURL       string       `json:"flag_url"`
	Ranking       int          `json:"ranking"`
	RankingChange int          `json:"ranking_change"`
	ImageURL      string       `json:"image_url"`
	Stats         Record       `json:"stats"`
	SurfaceStats  SurfaceStats `json:"surface_stats"`
}

// Record is a player's aggregate result line.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Titles int `json:"titles"`
}

// SurfaceRecord is the win/loss split on one surface.
type SurfaceRecord struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`
}

// SurfaceStats holds the bucketed surfaces. Carpet is not bucketed.
type SurfaceStats struct {
	Hard  SurfaceRecord `json:"hard"`
	Clay  SurfaceRecord `json:"clay"`
	Grass SurfaceRecord `json:"grass"`
}

// MatchResult is one match seen from a single player's side.
type MatchResult struct {
	ID         string  `json:"id"`
	Tournament string  `json:"tournament"`
	Round      string  `json:"round"`
	Opponent   string  `json:"opponent"`
	Score      string  `json:"score"`
	Date       string  `json:"date"`
	Surface    Surface `json:"surface"`
	IsWin      bool    `json:"is_win"`
}

// Summary bundles a player with figures derived from their match history.
type Summary struct {
	Player        Player   `json:"player"`
	TotalMatches  int      `json:"total_matches"`
	WinPercentage float64  `json:"win_percentage"`
	RecentForm    []string `json:"recent_form"`
}
