package checklist

// Item is one markdown checkbox line ("- [ ] text").
type Item struct {
	Line    int    // zero-based line number in the content
	Indent  string // leading whitespace
	Checked bool   // true for [x] or [X]
	Text    string
}

// Stats summarizes checklist progress.
type Stats struct {
	Total     int
	Completed int
	Pending   int
	Progress  float64 // completion percentage, 0-100
}
