package model

// Page is one slice of a filtered, normalized catalog.
//
// Total counts every match before pagination, so it is the same for every
// page of a given filter. Message is only set when nothing matched at all,
// which lets callers tell "no data for this filter" from "page past the end".
type Page struct {
	Items    []Game `json:"items"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Message  string `json:"message,omitempty"`
}

// Empty reports whether nothing matched the filter.
func (p *Page) Empty() bool {
	return p.Total == 0
}

// Section is a titled strip of games, as shown on the portal home page.
type Section struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Games []Game `json:"games"`
}
