package motogp

import "github.com/shopspring/decimal"

//nolint:tagliatelle
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Acronym  string `json:"acronym"`
	LegacyID int    `json:"legacy_id"`
}

//nolint:tagliatelle
type BroadcastEvent struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ShortName   string     `json:"shortname"`
	Kind        string     `json:"kind"`
	Status      string     `json:"status"`
	DateStart   string     `json:"date_start"`
	DateEnd     string     `json:"date_end"`
	Test        bool       `json:"test"`
	Sequence    int        `json:"sequence"`
	Circuit     Circuit    `json:"circuit"`
	Country     Country    `json:"country"`
	Categories  []Category `json:"categories"`
	LegacyID    []LegacyID `json:"legacy_id"`
	ToadAPIUUID string     `json:"toad_api_uuid"`
}

//nolint:tagliatelle
type LegacyID struct {
	CategoryID int    `json:"categoryId"`
	EventID    int    `json:"eventId"`
	Name       string `json:"name"`
}

type RiderPictures struct {
	Profile  Picture `json:"profile"`
	Bike     Picture `json:"bike"`
	Helmet   Picture `json:"helmet"`
	Number   string  `json:"number"`
	Portrait string  `json:"portrait"`
}

//nolint:tagliatelle
type CareerStep struct {
	Season        int            `json:"season"`
	Number        int            `json:"number"`
	SponsoredTeam string         `json:"sponsored_team"`
	Team          TeamRef        `json:"team"`
	Category      CategoryRef    `json:"category"`
	InGrid        bool           `json:"in_grid"`
	ShortNickname string         `json:"short_nickname"`
	Current       bool           `json:"current"`
	Pictures      RiderPictures  `json:"pictures"`
	Type          string         `json:"type"`
	Constructor   ConstructorRef `json:"constructor"`
}

//nolint:tagliatelle
type Rider struct {
	ID                string       `json:"id"`
	LegacyID          int          `json:"legacy_id"`
	Name              string       `json:"name"`
	Surname           string       `json:"surname"`
	Nickname          string       `json:"nickname"`
	Country           Country      `json:"country"`
	BirthCity         string       `json:"birth_city"`
	BirthDate         string       `json:"birth_date"`
	YearsOld          int          `json:"years_old"`
	PublishedAt       string       `json:"published_at"`
	CurrentCareerStep *CareerStep  `json:"current_career_step"`
	CareerSteps       []CareerStep `json:"career"`
}

type CategoryTally struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type StatTally struct {
	Total      int             `json:"total"`
	Categories []CategoryTally `json:"categories"`
}

//nolint:tagliatelle
type RiderStats struct {
	GrandPrixVictories    StatTally `json:"grand_prix_victories"`
	Podiums               StatTally `json:"podiums"`
	Poles                 StatTally `json:"poles"`
	RaceFastestLaps       StatTally `json:"race_fastest_laps"`
	WorldChampionshipWins StatTally `json:"world_championship_wins"`
	AllRaces              StatTally `json:"all_races"`
}

//nolint:tagliatelle
type RiderSeasonStat struct {
	Season         string          `json:"season"`
	Category       string          `json:"category"`
	Constructor    string          `json:"constructor"`
	Starts         int             `json:"starts"`
	FirstPosition  int             `json:"first_position"`
	SecondPosition int             `json:"second_position"`
	ThirdPosition  int             `json:"third_position"`
	Podiums        int             `json:"podiums"`
	Poles          int             `json:"poles"`
	Points         decimal.Decimal `json:"points"`
	Position       int             `json:"position"`
}

//nolint:tagliatelle
type TeamRider struct {
	ID                string      `json:"id"`
	LegacyID          int         `json:"legacy_id"`
	Name              string      `json:"name"`
	Surname           string      `json:"surname"`
	Nickname          string      `json:"nickname"`
	Country           Country     `json:"country"`
	CurrentCareerStep *CareerStep `json:"current_career_step"`
}

//nolint:tagliatelle
type Team struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	LegacyID    int            `json:"legacy_id"`
	Color       string         `json:"color"`
	TextColor   string         `json:"text_color"`
	Picture     string         `json:"picture"`
	Constructor ConstructorRef `json:"constructor"`
	Riders      []TeamRider    `json:"riders"`
}
