package model

type NewsItem struct {
	Title       string
	Description string
	Publisher   string
	Category    string
	TimeAgo     string
	ImageURL    string
	Link        string
}
