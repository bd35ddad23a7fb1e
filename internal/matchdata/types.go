package matchdata

// RawMatch is one row of the season export. Every field is kept as text,
// including numeric-looking ones; a missing value is the empty string.
type RawMatch struct {
	TourneyID    string `json:"tourney_id"`
	TourneyName  string `json:"tourney_name"`
	Surface      string `json:"surface"`
	DrawSize     string `json:"draw_size"`
	TourneyLevel string `json:"tourney_level"`
	TourneyDate  string `json:"tourney_date"`
	MatchNum     string `json:"match_num"`

	WinnerID         string `json:"winner_id"`
	WinnerSeed       string `json:"winner_seed"`
	WinnerEntry      string `json:"winner_entry"`
	WinnerName       string `json:"winner_name"`
	WinnerHand       string `json:"winner_hand"`
	WinnerHeight     string `json:"winner_ht"`
	WinnerIOC        string `json:"winner_ioc"`
	WinnerAge        string `json:"winner_age"`
	WinnerRank       string `json:"winner_rank"`
	WinnerRankPoints string `json:"winner_rank_points"`

	LoserID         string `json:"loser_id"`
	LoserSeed       string `json:"loser_seed"`
	LoserEntry      string `json:"loser_entry"`
	LoserName       string `json:"loser_name"`
	LoserHand       string `json:"loser_hand"`
	LoserHeight     string `json:"loser_ht"`
	LoserIOC        string `json:"loser_ioc"`
	LoserAge        string `json:"loser_age"`
	LoserRank       string `json:"loser_rank"`
	LoserRankPoints string `json:"loser_rank_points"`

	Score   string `json:"score"`
	BestOf  string `json:"best_of"`
	Round   string `json:"round"`
	Minutes string `json:"minutes"`

	// Extra holds every column that is not part of the fixed schema above,
	// e.g. the per-match serve statistics (w_ace, l_df, ...).
	Extra map[string]string `json:"extra,omitempty"`
}

// columns maps a header name to the RawMatch field it populates.
var columns = map[string]func(*RawMatch) *string{
	"tourney_id":         func(m *RawMatch) *string { return &m.TourneyID },
	"tourney_name":       func(m *RawMatch) *string { return &m.TourneyName },
	"surface":            func(m *RawMatch) *string { return &m.Surface },
	"draw_size":          func(m *RawMatch) *string { return &m.DrawSize },
	"tourney_level":      func(m *RawMatch) *string { return &m.TourneyLevel },
	"tourney_date":       func(m *RawMatch) *string { return &m.TourneyDate },
	"match_num":          func(m *RawMatch) *string { return &m.MatchNum },
	"winner_id":          func(m *RawMatch) *string { return &m.WinnerID },
	"winner_seed":        func(m *RawMatch) *string { return &m.WinnerSeed },
	"winner_entry":       func(m *RawMatch) *string { return &m.WinnerEntry },
	"winner_name":        func(m *RawMatch) *string { return &m.WinnerName },
	"winner_hand":        func(m *RawMatch) *string { return &m.WinnerHand },
	"winner_ht":          func(m *RawMatch) *string { return &m.WinnerHeight },
	"winner_ioc":         func(m *RawMatch) *string { return &m.WinnerIOC },
	"winner_age":         func(m *RawMatch) *string { return &m.WinnerAge },
	"winner_rank":        func(m *RawMatch) *string { return &m.WinnerRank },
	"winner_rank_points": func(m *RawMatch) *string { return &m.WinnerRankPoints },
	"loser_id":           func(m *RawMatch) *string { return &m.LoserID },
	"loser_seed":         func(m *RawMatch) *string { return &m.LoserSeed },
	"loser_entry":        func(m *RawMatch) *string { return &m.LoserEntry },
	"loser_name":         func(m *RawMatch) *string { return &m.LoserName },
	"loser_hand":         func(m *RawMatch) *string { return &m.LoserHand },
	"loser_ht":           func(m *RawMatch) *string { return &m.LoserHeight },
	"loser_ioc":          func(m *RawMatch) *string { return &m.LoserIOC },
	"loser_age":          func(m *RawMatch) *string { return &m.LoserAge },
	"loser_rank":         func(m *RawMatch) *string { return &m.LoserRank },
	"loser_rank_points":  func(m *RawMatch) *string { return &m.LoserRankPoints },
	"score":              func(m *RawMatch) *string { return &m.Score },
	"best_of":            func(m *RawMatch) *string { return &m.BestOf },
	"round":              func(m *RawMatch) *string { return &m.Round },
	"minutes":            func(m *RawMatch) *string { return &m.Minutes },
}

// Set assigns value to the named column, falling back to Extra for columns
// outside the fixed schema.
func (m *RawMatch) Set(column, value string) {
	if field, ok := columns[column]; ok {
		*field(m) = value
		return
	}
	if m.Extra == nil {
		m.Extra = make(map[string]string)
	}
	m.Extra[column] = value
}

// Get returns the value of the named column, or "" when absent.
func (m *RawMatch) Get(column string) string {
	if field, ok := columns[column]; ok {
		return *field(m)
	}
	return m.Extra[column]
}
