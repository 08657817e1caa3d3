package mcp

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erazemk/kultur/internal/model"
)

type ListCultureInput struct {
	Category string `json:"category,omitempty" jsonschema:"case-insensitive category filter"`
	Query    string `json:"query,omitempty" jsonschema:"search title, summary and tags"`
}

type GetByIDInput struct {
	ID string `json:"id" jsonschema:"identifier"`
}

type SearchPlacesInput struct {
	Query string `json:"query,omitempty" jsonschema:"name or type substring; empty lists all"`
}

type ListEventsInput struct {
	PlaceID string `json:"place_id,omitempty" jsonschema:"only events at this place"`
}

type NoInput struct{}

type CultureListOutput struct {
	Items []model.CultureItem `json:"items"`
}

type CategoriesOutput struct {
	Categories []string `json:"categories"`
}

type PlacesOutput struct {
	Places []model.Place `json:"places"`
}

type EventsOutput struct {
	Events []model.Event `json:"events"`
}

type EventDetailOutput struct {
	Event model.Event  `json:"event"`
	Place *model.Place `json:"place,omitempty"`
}

type FavoritesOutput struct {
	IDs []string `json:"ids"`
}

type FavoriteStateOutput struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_culture",
		Description: "List culture stories newest first, optionally filtered by category or search text",
	}, s.handleListCulture)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_culture",
		Description: "Retrieve a culture story by id",
	}, s.handleGetCulture)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_categories",
		Description: "List the distinct culture categories",
	}, s.handleCategories)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_places",
		Description: "List heritage sites, optionally matching a name or type",
	}, s.handleSearchPlaces)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_place",
		Description: "Retrieve a heritage site by id",
	}, s.handleGetPlace)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "upcoming_events",
		Description: "List events in start date order, optionally at one place",
	}, s.handleUpcomingEvents)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_event",
		Description: "Retrieve an event and the place it is held at",
	}, s.handleGetEvent)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_favorites",
		Description: "List the ids of saved culture stories",
	}, s.handleListFavorites)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "toggle_favorite",
		Description: "Save or unsave a culture story and return the new state",
	}, s.handleToggleFavorite)
}

func (s *Server) handleListCulture(ctx context.Context, req *sdk.CallToolRequest, input ListCultureInput) (*sdk.CallToolResult, CultureListOutput, error) {
	var items []model.CultureItem
	if input.Query != "" {
		items = s.app.Culture.Search(input.Query)
	} else {
		items = s.app.Culture.All()
	}

	output := make([]model.CultureItem, 0, len(items))
	for _, item := range items {
		if input.Category == "" || strings.EqualFold(item.Category, input.Category) {
			output = append(output, item)
		}
	}
	return nil, CultureListOutput{Items: output}, nil
}

func (s *Server) handleGetCulture(ctx context.Context, req *sdk.CallToolRequest, input GetByIDInput) (*sdk.CallToolResult, model.CultureItem, error) {
	if input.ID == "" {
		return nil, model.CultureItem{}, fmt.Errorf("id is required")
	}
	item, ok := s.app.Culture.ByID(input.ID)
	if !ok {
		return nil, model.CultureItem{}, fmt.Errorf("culture item %q not found", input.ID)
	}
	return nil, item, nil
}

func (s *Server) handleCategories(ctx context.Context, req *sdk.CallToolRequest, input NoInput) (*sdk.CallToolResult, CategoriesOutput, error) {
	cats := s.app.Culture.Categories()
	if cats == nil {
		cats = []string{}
	}
	return nil, CategoriesOutput{Categories: cats}, nil
}

func (s *Server) handleSearchPlaces(ctx context.Context, req *sdk.CallToolRequest, input SearchPlacesInput) (*sdk.CallToolResult, PlacesOutput, error) {
	places := s.app.Places.Search(input.Query)
	if places == nil {
		places = []model.Place{}
	}
	return nil, PlacesOutput{Places: places}, nil
}

func (s *Server) handleGetPlace(ctx context.Context, req *sdk.CallToolRequest, input GetByIDInput) (*sdk.CallToolResult, model.Place, error) {
	if input.ID == "" {
		return nil, model.Place{}, fmt.Errorf("id is required")
	}
	place, ok := s.app.Places.ByID(input.ID)
	if !ok {
		return nil, model.Place{}, fmt.Errorf("place %q not found", input.ID)
	}
	return nil, place, nil
}

func (s *Server) handleUpcomingEvents(ctx context.Context, req *sdk.CallToolRequest, input ListEventsInput) (*sdk.CallToolResult, EventsOutput, error) {
	var events []model.Event
	if input.PlaceID != "" {
		events = s.app.Events.AtPlace(input.PlaceID)
	} else {
		events = s.app.Events.Upcoming()
	}
	if events == nil {
		events = []model.Event{}
	}
	return nil, EventsOutput{Events: events}, nil
}

func (s *Server) handleGetEvent(ctx context.Context, req *sdk.CallToolRequest, input GetByIDInput) (*sdk.CallToolResult, EventDetailOutput, error) {
	if input.ID == "" {
		return nil, EventDetailOutput{}, fmt.Errorf("id is required")
	}
	event, ok := s.app.Events.ByID(input.ID)
	if !ok {
		return nil, EventDetailOutput{}, fmt.Errorf("event %q not found", input.ID)
	}

	out := EventDetailOutput{Event: event}
	if place, ok := s.app.Places.ByID(event.PlaceID); ok {
		out.Place = &place
	}
	return nil, out, nil
}

func (s *Server) handleListFavorites(ctx context.Context, req *sdk.CallToolRequest, input NoInput) (*sdk.CallToolResult, FavoritesOutput, error) {
	ids, err := s.app.Favorites.AllIDs(ctx)
	if err != nil {
		return nil, FavoritesOutput{}, err
	}
	return nil, FavoritesOutput{IDs: ids}, nil
}

func (s *Server) handleToggleFavorite(ctx context.Context, req *sdk.CallToolRequest, input GetByIDInput) (*sdk.CallToolResult, FavoriteStateOutput, error) {
	if input.ID == "" {
		return nil, FavoriteStateOutput{}, fmt.Errorf("id is required")
	}
	fav, err := s.app.Favorites.Toggle(ctx, input.ID)
	if err != nil {
		return nil, FavoriteStateOutput{}, err
	}
	return nil, FavoriteStateOutput{ID: input.ID, Favorite: fav}, nil
}
