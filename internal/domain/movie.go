package domain

// MovieId is an external catalog identifier (IMDb id, e.g. "tt0111161").
// Favorites membership is exact string equality on these.
type MovieId = string

// Movie is the catalog record as returned by the external movie API.
// Fields mirror the OMDb payload the SPA renders.
type Movie struct {
	ImdbID   string `json:"imdbID"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Type     string `json:"Type"`
	Poster   string `json:"Poster"`
	Plot     string `json:"Plot,omitempty"`
	Genre    string `json:"Genre,omitempty"`
	Director string `json:"Director,omitempty"`
	Actors   string `json:"Actors,omitempty"`
	Runtime  string `json:"Runtime,omitempty"`
	Rating   string `json:"imdbRating,omitempty"`
}
