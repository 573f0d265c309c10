package data

// State defines a federative unit returned by the location directory.
type State struct {
	ID           int64  `json:"id"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

// City defines a municipality of a state.
type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
