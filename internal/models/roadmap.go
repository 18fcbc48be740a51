package models

type RoadmapStage struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

type Roadmap struct {
	Career  string         `json:"career"`
	Roadmap []RoadmapStage `json:"roadmap"`
}
