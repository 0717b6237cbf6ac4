package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/jonathan/resume-builder/internal/fetch"
)

// Posting is the text of a job posting and where it came from.
type Posting struct {
	URL       string
	Platform  fetch.Platform
	Title     string
	Text      string
	Hash      string // SHA-256 of Text
	FetchedAt time.Time
	// Rendered is set when the text came from the headless browser.
	Rendered bool
}

func newPosting(url string, platform fetch.Platform, title, text string, rendered bool) *Posting {
	sum := sha256.Sum256([]byte(text))
	return &Posting{
		URL:       url,
		Platform:  platform,
		Title:     title,
		Text:      text,
		Hash:      hex.EncodeToString(sum[:]),
		FetchedAt: time.Now().UTC(),
		Rendered:  rendered,
	}
}
