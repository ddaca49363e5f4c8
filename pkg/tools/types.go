package tools

import "github.com/NERVsystems/remotepoint/pkg/geo"

// MostDistantOutput is returned by find_most_distant_point.
type MostDistantOutput struct {
	Point       geo.Location `json:"point"`
	IsolationKm float64      `json:"isolation_km"` // distance to the nearest input
	Seeds       int          `json:"seeds"`        // coarse candidates refined
	InputCount  int          `json:"input_count"`
	Cached      bool         `json:"cached"`
}

// DistanceOutput is returned by distance_between.
type DistanceOutput struct {
	From       geo.Location `json:"from"`
	To         geo.Location `json:"to"`
	DistanceKm float64      `json:"distance_km"`
}

// IsolationOutput is returned by isolation_score.
type IsolationOutput struct {
	Candidate   geo.Location `json:"candidate"`
	IsolationKm float64      `json:"isolation_km"`
	InputCount  int          `json:"input_count"`
}

// InputsOutput is returned by the input set tools.
type InputsOutput struct {
	Inputs      []geo.Location `json:"inputs"`
	MostDistant *geo.Location  `json:"most_distant,omitempty"`
	IsolationKm float64        `json:"isolation_km,omitempty"`
}
