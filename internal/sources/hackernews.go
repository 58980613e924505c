package sources

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/purplesquirrel/jobengine/internal/fetch"
	"github.com/purplesquirrel/jobengine/internal/types"
)

const (
	hackerNewsPlatform   = "hackernews"
	hackerNewsDefaultURL = "https://hn.algolia.com/api/v1"
	hackerNewsCommentCap = 100
	hackerNewsDescLimit  = 500
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// HackerNews scrapes the latest "Ask HN: Who is hiring?" thread through the
// Algolia API. Postings follow a loose "Company | Location | Role | ..."
// pipe convention; comments that do not fit it are skipped, never fatal.
type HackerNews struct {
	BaseURL string
	Limit   int
}

// NewHackerNews constructs the adapter with production defaults.
func NewHackerNews() *HackerNews {
	return &HackerNews{BaseURL: hackerNewsDefaultURL, Limit: hackerNewsCommentCap}
}

// Name identifies the source platform.
func (h *HackerNews) Name() string { return hackerNewsPlatform }

type hnSearchResponse struct {
	Hits []struct {
		ObjectID string `json:"objectID"`
		Title    string `json:"title"`
	} `json:"hits"`
}

type hnItemResponse struct {
	Children []hnComment `json:"children"`
}

type hnComment struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"created_at_i"`
}

// FetchListings finds the most recent hiring thread and parses up to Limit
// of its top-level comments.
func (h *HackerNews) FetchListings(ctx context.Context) ([]types.RawListing, error) {
	searchURL := h.BaseURL + "/search_by_date?query=" +
		url.QueryEscape("Ask HN: Who is hiring") + "&tags=story"

	var search hnSearchResponse
	if err := fetch.JSON(ctx, searchURL, nil, &search); err != nil {
		return nil, fmt.Errorf("hackernews: search: %w", err)
	}
	if len(search.Hits) == 0 {
		return nil, nil
	}

	threadURL := fmt.Sprintf("%s/items/%s", h.BaseURL, search.Hits[0].ObjectID)
	var thread hnItemResponse
	if err := fetch.JSON(ctx, threadURL, nil, &thread); err != nil {
		return nil, fmt.Errorf("hackernews: thread: %w", err)
	}

	comments := thread.Children
	if len(comments) > h.Limit {
		comments = comments[:h.Limit]
	}

	var listings []types.RawListing
	for _, comment := range comments {
		listing, ok := parseHNComment(comment)
		if !ok {
			continue
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// parseHNComment converts one thread comment into a listing. Comments with
// fewer than two pipe-delimited fields are reported as not-a-listing.
func parseHNComment(comment hnComment) (types.RawListing, bool) {
	if comment.Text == "" {
		return types.RawListing{}, false
	}

	text := htmlTagPattern.ReplaceAllString(comment.Text, " ")
	text = strings.TrimSpace(html.UnescapeString(text))

	fields := strings.Split(text, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 2 {
		return types.RawListing{}, false
	}

	company := fields[0]
	location := fields[1]
	title := fields[1]
	if len(fields) > 2 {
		title = fields[2]
	}
	if title == "" {
		title = "Software Engineer"
	}

	remote := types.RemoteOnsite
	if strings.Contains(strings.ToLower(location), "remote") ||
		strings.Contains(strings.ToLower(text), "remote") {
		remote = types.RemoteFull
	}

	description := truncateRunes(text, hackerNewsDescLimit)

	return types.RawListing{
		Title:          title,
		Company:        company,
		Location:       location,
		Remote:         remote,
		Description:    description,
		Skills:         ExtractSkills(text),
		SourceURL:      "https://news.ycombinator.com/item?id=" + strconv.FormatInt(comment.ID, 10),
		SourcePlatform: hackerNewsPlatform,
		ExternalID:     strconv.FormatInt(comment.ID, 10),
		PostedAt:       time.Unix(comment.CreatedAt, 0),
	}, true
}

// truncateRunes caps s at limit bytes without splitting a multi-byte rune,
// so the stored description stays valid UTF-8.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
