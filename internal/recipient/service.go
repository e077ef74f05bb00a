package recipient

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/cashbook/internal/cache"
)

// SuggestionLimit caps the number of names returned by Suggest.
const SuggestionLimit = 15

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recipient
type Repository interface {
	// RecentRecipients returns recipients used on chits of the unit's
	// cashbook containing query, most recently used first.
	RecentRecipients(ctx context.Context, unitID int, query string, limit int) ([]string, error)
}

// MemberSource lists the names of a unit's members in the membership system.
type MemberSource interface {
	MemberNames(ctx context.Context, unitID int, limit int) ([]string, error)
}

type Service struct {
	repo    Repository
	members MemberSource
	cache   *cache.LRU[[]string]
}

// NewService returns a suggestion service. members and c may be nil.
func NewService(repo Repository, members MemberSource, c *cache.LRU[[]string]) *Service {
	return &Service{repo: repo, members: members, cache: c}
}

// Suggest returns recipient names for a unit matching query. Names already
// used on chits come first, followed by unit members. An unavailable
// membership system only drops the member names.
func (s *Service) Suggest(ctx context.Context, unitID int, query string) ([]string, error) {
	query = strings.TrimSpace(query)

	recent, err := s.repo.RecentRecipients(ctx, unitID, query, SuggestionLimit)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, SuggestionLimit)
	seen := make(map[string]struct{}, SuggestionLimit)

	add := func(name string) {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok || len(names) == SuggestionLimit {
			return
		}

		seen[key] = struct{}{}
		names = append(names, name)
	}

	for _, name := range recent {
		add(name)
	}

	members, err := s.memberNames(ctx, unitID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load member names", "unit_id", unitID, "error", err)
		return names, nil
	}

	needle := strings.ToLower(query)

	for _, name := range members {
		if strings.Contains(strings.ToLower(name), needle) {
			add(name)
		}
	}

	return names, nil
}

func (s *Service) memberNames(ctx context.Context, unitID int) ([]string, error) {
	if s.members == nil {
		return nil, nil
	}

	key := strconv.Itoa(unitID)

	if s.cache != nil {
		if names, ok := s.cache.Get(key); ok {
			return names, nil
		}
	}

	// Filtering happens locally, so fetch more than one page of matches.
	names, err := s.members.MemberNames(ctx, unitID, SuggestionLimit*20)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, names)
	}

	return names, nil
}
