package motogp

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/andyle182810/gomotogp/httpclient"
)

const resultsRoot = "results"

// optional maps an unset value to nil so the query encoder drops it.
func optional[T any](v omit.Val[T]) *T {
	if x, ok := v.Get(); ok {
		return &x
	}

	return nil
}

func (c *Client) Seasons(ctx context.Context) ([]Season, error) {
	return get[[]Season](ctx, c, endpoint(resultsRoot, "seasons"), nil)
}

// Events lists a season's events. isFinished narrows the list when set.
func (c *Client) Events(ctx context.Context, seasonID string, isFinished omit.Val[bool]) ([]Event, error) {
	return get[[]Event](ctx, c, endpoint(resultsRoot, "events"), httpclient.Params{
		"seasonUuid": seasonID,
		"isFinished": optional(isFinished),
	})
}

func (c *Client) Event(ctx context.Context, eventID string) (Event, error) {
	return get[Event](ctx, c, endpoint(resultsRoot, "events", eventID), nil)
}

func (c *Client) ResultCategories(ctx context.Context, seasonID string) ([]ResultCategory, error) {
	return get[[]ResultCategory](ctx, c, endpoint(resultsRoot, "categories"), httpclient.Params{
		"seasonUuid": seasonID,
	})
}

func (c *Client) Sessions(ctx context.Context, eventID, categoryID string) ([]Session, error) {
	return get[[]Session](ctx, c, endpoint(resultsRoot, "sessions"), httpclient.Params{
		"eventUuid":    eventID,
		"categoryUuid": categoryID,
	})
}

func (c *Client) Session(ctx context.Context, sessionID string) (Session, error) {
	return get[Session](ctx, c, endpoint(resultsRoot, "sessions", sessionID), nil)
}

// ClassificationParams disambiguates sessions shared between seasons or
// between test and race weekends. Unset fields are not sent.
type ClassificationParams struct {
	SeasonYear omit.Val[int]
	Test       omit.Val[bool]
}

func (c *Client) Classification(
	ctx context.Context,
	sessionID string,
	params ClassificationParams,
) (Classification, error) {
	return get[Classification](ctx, c, endpoint(resultsRoot, "session", sessionID, "classification"), httpclient.Params{
		"seasonYear": optional(params.SeasonYear),
		"test":       optional(params.Test),
	})
}

func (c *Client) EntryList(ctx context.Context, eventID, categoryID string) (EntryList, error) {
	return get[EntryList](ctx, c, endpoint(resultsRoot, "event", eventID, "entry"), httpclient.Params{
		"categoryUuid": categoryID,
	})
}

func (c *Client) GridPositions(ctx context.Context, eventID, categoryID string) ([]GridPosition, error) {
	return get[[]GridPosition](ctx, c, endpoint(resultsRoot, "event", eventID, "category", categoryID, "grid"), nil)
}

func (c *Client) Standings(ctx context.Context, seasonID, categoryID string) (Standings, error) {
	return get[Standings](ctx, c, endpoint(resultsRoot, "standings"), httpclient.Params{
		"seasonUuid":   seasonID,
		"categoryUuid": categoryID,
	})
}

func (c *Client) StandingsFiles(ctx context.Context, seasonID, categoryID string) (StandingsFiles, error) {
	return get[StandingsFiles](ctx, c, endpoint(resultsRoot, "standings", "files"), httpclient.Params{
		"seasonUuid":   seasonID,
		"categoryUuid": categoryID,
	})
}

// QualifyingAwardStandings returns the season-long pole position award table.
func (c *Client) QualifyingAwardStandings(ctx context.Context, seasonID string) (QualifyingAwardStandings, error) {
	return get[QualifyingAwardStandings](ctx, c, endpoint(resultsRoot, "standings", "bmw-awards"), httpclient.Params{
		"seasonUuid": seasonID,
	})
}
