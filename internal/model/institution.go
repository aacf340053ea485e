package model

// Institution is a catalog entry describing an educational institution and
// its map coordinates. Records are seeded once at startup and read-only via
// the API afterwards.
//
// Only Name and Category are required; every other column is nullable in the
// schema. The repository maps NULLs to Go zero values so the API always
// returns a plain field set.
//
// The json tag on Category is "type" — that is the field name the map
// frontend consumes.
type Institution struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"type"` // University, Institute or Faculty
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Details   string  `json:"details"`
	Website   string  `json:"website"`
	Ranking   string  `json:"ranking"`
	Courses   string  `json:"courses"`
}
