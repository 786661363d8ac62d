package meditation

import (
	"net/url"
	"strings"
)

const (
	embedBase  = "https://www.youtube.com/embed/"
	embedAllow = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"
)

// VideoEmbed is a recognised reading video ready for an iframe.
type VideoEmbed struct {
	ID    string
	Src   string
	Allow string
}

// ExtractVideoID pulls the video id out of a watch URL (…?v=<id>&…) or a
// short link (youtu.be/<id>?…). The v= form wins when both are present.
func ExtractVideoID(rawURL string) (string, bool) {
	if _, after, found := strings.Cut(rawURL, "v="); found {
		id, _, _ := strings.Cut(after, "&")
		return id, id != ""
	}
	if _, after, found := strings.Cut(rawURL, "youtu.be/"); found {
		id, _, _ := strings.Cut(after, "?")
		return id, id != ""
	}
	return "", false
}

// NewVideoEmbed returns nil when rawURL is empty or unrecognised.
func NewVideoEmbed(rawURL string) *VideoEmbed {
	if rawURL == "" {
		return nil
	}
	id, ok := ExtractVideoID(rawURL)
	if !ok {
		return nil
	}
	return &VideoEmbed{
		ID:    id,
		Src:   embedBase + url.PathEscape(id) + "?rel=0",
		Allow: embedAllow,
	}
}
