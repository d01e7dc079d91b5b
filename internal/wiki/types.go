package wiki

// Responses are requested with formatversion=2, so pages come back as a list.

type searchResponse struct {
	Query *struct {
		Search []SearchResult `json:"search"`
	} `json:"query"`
}

type SearchResult struct {
	NS      int    `json:"ns"`
	Title   string `json:"title"`
	PageID  int    `json:"pageid"`
	Snippet string `json:"snippet"`
}

type extractResponse struct {
	Query *struct {
		Pages []Page `json:"pages"`
	} `json:"query"`
}

type Page struct {
	PageID  int    `json:"pageid"`
	Title   string `json:"title"`
	Extract string `json:"extract"`
	Missing bool   `json:"missing"`
}
