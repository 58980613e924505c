package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/purplesquirrel/jobengine/internal/fetch"
	"github.com/purplesquirrel/jobengine/internal/types"
)

const (
	weWorkRemotelyPlatform   = "weworkremotely"
	weWorkRemotelySiteURL    = "https://weworkremotely.com"
	weWorkRemotelyPath       = "/categories/remote-programming-jobs"
	weWorkRemotelyListingCap = 50
)

// WeWorkRemotely scrapes the programming category page. Markup drift is an
// accepted risk: an item missing its title, company, or link is skipped
// individually rather than failing the whole page.
type WeWorkRemotely struct {
	BaseURL string
	Limit   int
}

// NewWeWorkRemotely constructs the adapter with production defaults.
func NewWeWorkRemotely() *WeWorkRemotely {
	return &WeWorkRemotely{BaseURL: weWorkRemotelySiteURL, Limit: weWorkRemotelyListingCap}
}

// Name identifies the source platform.
func (w *WeWorkRemotely) Name() string { return weWorkRemotelyPlatform }

// FetchListings scrapes up to Limit listings from the category page.
func (w *WeWorkRemotely) FetchListings(ctx context.Context) ([]types.RawListing, error) {
	doc, err := fetch.Document(ctx, w.BaseURL+weWorkRemotelyPath, nil)
	if err != nil {
		return nil, fmt.Errorf("weworkremotely: %w", err)
	}

	var listings []types.RawListing
	doc.Find("section.jobs li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.HasClass("view-all") {
			return true
		}

		title := strings.TrimSpace(sel.Find(".title").First().Text())
		company := strings.TrimSpace(sel.Find(".company").First().Text())
		href, hasHref := sel.Find("a").First().Attr("href")
		if title == "" || company == "" || !hasHref || href == "" {
			return true
		}

		listings = append(listings, types.RawListing{
			Title:          title,
			Company:        company,
			Location:       "Remote",
			Remote:         types.RemoteFull,
			SourceURL:      w.BaseURL + href,
			SourcePlatform: weWorkRemotelyPlatform,
			ExternalID:     href,
			PostedAt:       time.Now(),
		})
		return len(listings) < w.Limit
	})

	return listings, nil
}
