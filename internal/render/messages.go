package render

// Messages are the user-facing strings of a result page.
type Messages struct {
	NoArticles     string
	ResultOne      string
	ResultMany     string
	InstantLimit   string
	PageCounter    string
	SearchContent  string
	Previous       string
	Next           string
	TruncationMark string
}

func EnglishMessages() Messages {
	return Messages{
		NoArticles:     "No matching articles.",
		ResultOne:      "%d search result",
		ResultMany:     "%d search results",
		InstantLimit:   ". Only the first %d records are shown.",
		PageCounter:    "Page %d of %d",
		SearchContent:  "Answer:",
		Previous:       "previous page",
		Next:           "next page",
		TruncationMark: "...",
	}
}
