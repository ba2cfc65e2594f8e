package motogp

// Shapes shared by both API families. Decoding never validates them: fields
// the upstream omits keep their zero value.

type Country struct {
	ISO       string `json:"iso"`
	Name      string `json:"name"`
	RegionISO string `json:"region_iso"` //nolint:tagliatelle
}

//nolint:tagliatelle
type Circuit struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LegacyID int    `json:"legacy_id"`
	Place    string `json:"place"`
	Nation   string `json:"nation"`
}

//nolint:tagliatelle
type CategoryRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LegacyID int    `json:"legacy_id"`
}

//nolint:tagliatelle
type RiderRef struct {
	ID            string  `json:"id"`
	FullName      string  `json:"full_name"`
	Country       Country `json:"country"`
	LegacyID      int     `json:"legacy_id"`
	Number        int     `json:"number"`
	RidersAPIUUID string  `json:"riders_api_uuid"`
}

//nolint:tagliatelle
type TeamRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LegacyID int    `json:"legacy_id"`
}

//nolint:tagliatelle
type ConstructorRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LegacyID int    `json:"legacy_id"`
}

type Picture struct {
	Main      string `json:"main"`
	Secondary string `json:"secondary"`
}
