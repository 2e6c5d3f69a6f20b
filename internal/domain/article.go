package domain

import (
	"strings"
	"time"
)

// wordsPerMinute is the reading speed used to derive read time from body length.
const wordsPerMinute = 200

// Source identifies the outlet an article came from.
type Source struct {
	Name        string
	Credibility float64
	Verified    bool
}

// Article is the core read-only input entity produced by the news-fetch layer.
type Article struct {
	ID          string
	Title       string
	Body        string
	Summary     string
	Author      string
	Source      Source
	PublishedAt time.Time
	Category    Category
	ImageURL    string
	Breaking    bool
	Tags        []string
	LikeCount   int
	ShareCount  int
}

// ReadingMinutes estimates read time from body word count, never below one minute.
func (a Article) ReadingMinutes() int {
	words := len(strings.Fields(a.Body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Age returns how long ago the article was published relative to now.
func (a Article) Age(now time.Time) time.Duration {
	return now.Sub(a.PublishedAt)
}

// HasImage reports whether the article carries an image reference.
func (a Article) HasImage() bool {
	return a.ImageURL != ""
}
