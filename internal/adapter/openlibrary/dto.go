package openlibrary

// SearchResponse is the body of GET /search.json
type SearchResponse struct {
	NumFound int   `json:"numFound"`
	Start    int   `json:"start,omitempty"`
	Docs     []Doc `json:"docs"`
}

// Doc is a single work returned by the search endpoint.
// Only the fields bookfinder renders are decoded.
type Doc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name,omitempty"`
	CoverI           *int     `json:"cover_i,omitempty"`
	FirstPublishYear *int     `json:"first_publish_year,omitempty"`
	Subject          []string `json:"subject,omitempty"`
	Language         []string `json:"language,omitempty"`
}
