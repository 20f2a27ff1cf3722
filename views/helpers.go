package views

import (
	"context"
	"fmt"
	"path"

	"github.com/AdamBeresnev/food-bracket/internal/bracket"
	"github.com/AdamBeresnev/food-bracket/internal/middleware"
	users "github.com/AdamBeresnev/food-bracket/internal/user"
	"github.com/a-h/templ"
	"github.com/google/uuid"
)

func GetUser(ctx context.Context) *users.User {
	return middleware.GetAuthenticatedUser(ctx)
}

func tournamentURL(id uuid.UUID, parts ...string) templ.SafeURL {
	return templ.SafeURL(path.Join(append([]string{"/tournaments", id.String()}, parts...)...))
}

func tournamentSummary(t bracket.Tournament) string {
	return fmt.Sprintf("· %d places · %s", t.Size, t.Status)
}

func candidateSummary(c bracket.Candidate) string {
	return fmt.Sprintf("%s · %.1f ★ (%d reviews) · %s", c.Category, c.Rating, c.ReviewCount, formatKilometers(c.Distance))
}

func formatKilometers(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}
