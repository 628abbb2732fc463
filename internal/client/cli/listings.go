package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/andrisk/realhub/internal/client/models"
)

// Listings prints the cached published listings with their location names.
func (a *App) Listings(ctx context.Context) error {
	properties, err := a.properties.List(ctx)
	if err != nil {
		return err
	}
	names := a.locationNames(ctx)

	shown := 0
	for _, p := range properties {
		if !p.Published {
			continue
		}
		line := fmt.Sprintf("%-10s %6d EUR  %s", p.ID, p.Price, p.Title)
		if name := names[p.LocationID]; name != "" {
			line += ", " + name
		}
		printlnFn(line)
		shown++
	}
	if shown == 0 {
		printlnFn("No listings cached yet.")
	}
	return nil
}

// locationNames resolves the cached location taxonomy into an id-to-name
// map. An empty or unreadable taxonomy just yields an empty map; listings
// render without location names.
func (a *App) locationNames(ctx context.Context) map[string]string {
	locations, err := a.locations.List(ctx)
	if err != nil {
		return nil
	}
	names := make(map[string]string, len(locations))
	for _, l := range locations {
		names[l.ID] = l.Name
	}
	return names
}

// Contact prompts for a message to an agent about a listing and appends it
// to the local message cache.
func (a *App) Contact(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		printlnFn("Sign in to contact an agent.")
		return nil
	}

	propertyID, err := getSimpleText(a.reader, "Property id", os.Stdout)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Your message", os.Stdout)
	if err != nil {
		return err
	}
	if body == "" {
		printlnFn("Empty message discarded.")
		return nil
	}

	msg := models.Message{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		FromName:   user.DisplayName,
		FromEmail:  user.Email,
		Body:       body,
		SentAt:     time.Now().UTC(),
	}
	if err := a.messages.Append(ctx, msg); err != nil {
		return err
	}

	printlnFn("Message sent.")
	return nil
}
