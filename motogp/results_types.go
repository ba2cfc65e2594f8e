package motogp

import "github.com/shopspring/decimal"

type Season struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Year    int    `json:"year"`
	Current bool   `json:"current"`
}

//nolint:tagliatelle
type Event struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	SponsoredName string  `json:"sponsored_name"`
	ShortName     string  `json:"short_name"`
	DateStart     string  `json:"date_start"`
	DateEnd       string  `json:"date_end"`
	Test          bool    `json:"test"`
	Status        string  `json:"status"`
	ToadAPIUUID   string  `json:"toad_api_uuid"`
	Country       Country `json:"country"`
	Circuit       Circuit `json:"circuit"`
	Season        Season  `json:"season"`
}

//nolint:tagliatelle
type ResultCategory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LegacyID int    `json:"legacy_id"`
}

type SessionCondition struct {
	Track    string `json:"track"`
	Air      string `json:"air"`
	Humidity string `json:"humidity"`
	Ground   string `json:"ground"`
	Weather  string `json:"weather"`
}

type SessionFile struct {
	URL  string `json:"url"`
	Menu string `json:"menu"`
}

//nolint:tagliatelle
type Session struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Number    int                    `json:"number"`
	Date      string                 `json:"date"`
	Status    string                 `json:"status"`
	Condition SessionCondition       `json:"condition"`
	Circuit   string                 `json:"circuit"`
	Category  CategoryRef            `json:"category"`
	Files     map[string]SessionFile `json:"session_files"`
}

type Gap struct {
	First string `json:"first"`
	Lap   string `json:"lap"`
}

type BestLap struct {
	Number int     `json:"number"`
	Time   string  `json:"time"`
	Speed  float64 `json:"speed"`
}

//nolint:tagliatelle
type ClassificationEntry struct {
	ID           string          `json:"id"`
	Position     int             `json:"position"`
	Rider        RiderRef        `json:"rider"`
	Team         TeamRef         `json:"team"`
	Constructor  ConstructorRef  `json:"constructor"`
	AverageSpeed float64         `json:"average_speed"`
	Gap          Gap             `json:"gap"`
	TotalLaps    int             `json:"total_laps"`
	Time         string          `json:"time"`
	Points       decimal.Decimal `json:"points"`
	Status       string          `json:"status"`
	BestLap      BestLap         `json:"best_lap"`
	TopSpeed     float64         `json:"top_speed"`
}

//nolint:tagliatelle
type LapRecord struct {
	Type        string   `json:"type"`
	Rider       RiderRef `json:"rider"`
	BestLap     BestLap  `json:"bestLap"`
	Year        string   `json:"year"`
	Speed       float64  `json:"speed"`
	BestLapTime string   `json:"best_lap_time"`
}

type Classification struct {
	Classification []ClassificationEntry `json:"classification"`
	Records        []LapRecord           `json:"records"`
	File           string                `json:"file"`
}

type Entry struct {
	ID          string         `json:"id"`
	Rider       RiderRef       `json:"rider"`
	Team        TeamRef        `json:"team"`
	Constructor ConstructorRef `json:"constructor"`
}

type EntryList struct {
	Entry []Entry `json:"entry"`
	File  string  `json:"file"`
}

//nolint:tagliatelle
type GridPosition struct {
	ID             string         `json:"id"`
	Position       int            `json:"position"`
	Rider          RiderRef       `json:"rider"`
	Team           TeamRef        `json:"team"`
	Constructor    ConstructorRef `json:"constructor"`
	QualifyingTime string         `json:"qualifying_time"`
	Session        string         `json:"session"`
}

//nolint:tagliatelle
type StandingEntry struct {
	ID          string          `json:"id"`
	Position    int             `json:"position"`
	Rider       RiderRef        `json:"rider"`
	Team        TeamRef         `json:"team"`
	Constructor ConstructorRef  `json:"constructor"`
	Points      decimal.Decimal `json:"points"`
	RaceWins    int             `json:"race_wins"`
	Podiums     int             `json:"podiums"`
}

//nolint:tagliatelle
type Standings struct {
	Classification []StandingEntry `json:"classification"`
	File           string          `json:"file"`
	XLSFile        string          `json:"xls_file"`
}

//nolint:tagliatelle
type StandingsFiles struct {
	File    string `json:"file"`
	XLSFile string `json:"xls_file"`
}

type QualifyingAwardEntry struct {
	Position int             `json:"position"`
	Rider    RiderRef        `json:"rider"`
	Team     TeamRef         `json:"team"`
	Points   decimal.Decimal `json:"points"`
	Poles    int             `json:"poles"`
}

type QualifyingAwardStandings struct {
	Classification []QualifyingAwardEntry `json:"classification"`
	File           string                 `json:"file"`
}
