package confindex

// Confession represents a creed, confession or catechism document.
type Confession struct {
	ID          int64  `json:"id"`
	Country     string `json:"country"`
	FileName    string `json:"fileName"`
	Title       string `json:"title"`
	Tradition   string `json:"tradition"`
	Year        int    `json:"year"`
	Quiz        bool   `json:"quiz"`
	ContentHash string `json:"contentHash"`
}

// Validate returns an error if the confession contains invalid fields.
func (c *Confession) Validate() error {
	if c.FileName == "" {
		return Errorf(EINVALID, "confession file name required")
	}
	if c.Title == "" {
		return Errorf(EINVALID, "confession title required")
	}
	return nil
}

// ConfessionFilter represents a filter for FindConfessions.
type ConfessionFilter struct {
	ID        *int64  `json:"id"`
	FileName  *string `json:"fileName"`
	Tradition *string `json:"tradition"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
