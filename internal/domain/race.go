package domain

// Race describes a supported race. The catalogue is static and loaded
// once at process start; the plan generator only needs DistanceKm.
type Race struct {
	ID                string   `bson:"raceId" json:"race_id"`
	Name              string   `bson:"name" json:"name"`
	DistanceKm        float64  `bson:"distanceKm" json:"distance_km"`
	Location          string   `bson:"location" json:"location"`
	Description       string   `bson:"description" json:"description"`
	ElevationGainM    int      `bson:"elevationGainM" json:"elevation_gain_m"`
	TypicalConditions string   `bson:"typicalConditions" json:"typical_conditions"`
	KeyChallenges     []string `bson:"keyChallenges" json:"key_challenges"`
}

// RaceTip is one piece of advice attached to a race, used by the tips
// endpoint and as retrieval context for the chat agent.
type RaceTip struct {
	Category  string `json:"category"`
	Tip       string `json:"tip"`
	Rationale string `json:"rationale"`
}
