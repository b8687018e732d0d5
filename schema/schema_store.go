package schema

// DatasetStatus summarizes a dataset held by a backend.
type DatasetStatus struct {
	Backend       DatabaseBackend `json:"backend"`
	Location      string          `json:"location"`
	Connected     bool            `json:"connected"`
	Version       uint            `json:"version"` // Applied migration version, 0 when unknown
	TotalRecords  int             `json:"total_records"`
	TotalProducts int             `json:"total_products"`
	Categories    []string        `json:"categories"`
	MinYear       int             `json:"min_year"`
	MaxYear       int             `json:"max_year"`
}
