package motogp

import (
	"context"

	"github.com/andyle182810/gomotogp/httpclient"
)

func (c *Client) Categories(ctx context.Context, seasonYear int) ([]Category, error) {
	return get[[]Category](ctx, c, endpoint("categories"), httpclient.Params{
		"seasonYear": seasonYear,
	})
}

func (c *Client) BroadcastEvents(ctx context.Context, seasonYear int) ([]BroadcastEvent, error) {
	return get[[]BroadcastEvent](ctx, c, endpoint("events"), httpclient.Params{
		"seasonYear": seasonYear,
	})
}

func (c *Client) BroadcastEvent(ctx context.Context, eventID string) (BroadcastEvent, error) {
	return get[BroadcastEvent](ctx, c, endpoint("events", eventID), nil)
}

// Riders returns the current-season roster only. Use Teams for past seasons.
func (c *Client) Riders(ctx context.Context) ([]Rider, error) {
	return get[[]Rider](ctx, c, endpoint("riders"), nil)
}

func (c *Client) Rider(ctx context.Context, riderID string) (Rider, error) {
	return get[Rider](ctx, c, endpoint("riders", riderID), nil)
}

func (c *Client) RiderStats(ctx context.Context, legacyID int) (RiderStats, error) {
	return get[RiderStats](ctx, c, endpoint("riders", legacyID, "stats"), nil)
}

func (c *Client) RiderSeasonStats(ctx context.Context, legacyID int) ([]RiderSeasonStat, error) {
	return get[[]RiderSeasonStat](ctx, c, endpoint("riders", legacyID, "statistics"), nil)
}

// Teams returns the teams of a category for the given season along with their
// riders. The upstream API exposes historical rosters only through this
// endpoint.
func (c *Client) Teams(ctx context.Context, categoryID string, seasonYear int) ([]Team, error) {
	return get[[]Team](ctx, c, endpoint("teams"), httpclient.Params{
		"categoryUuid": categoryID,
		"seasonYear":   seasonYear,
	})
}
