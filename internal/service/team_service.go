package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/surhub/startup-weekend/internal/i18n"
	"github.com/surhub/startup-weekend/internal/model"
	"github.com/surhub/startup-weekend/internal/repository"
	"github.com/surhub/startup-weekend/pkg/logger"
)

// TeamService serves the read-only team fixtures, localized for the requested
// language and filtered the way the teams page filters them.
type TeamService struct {
	teams    repository.TeamRepository
	resolver *i18n.Resolver

	latency time.Duration
}

func NewTeamService() *TeamService {
	return &TeamService{}
}

type TeamQuery struct {
	Search   string
	Category string
}

// List resolves the fixture keys into lang and then applies the query:
// case-insensitive substring match on name/description, exact category match.
func (s *TeamService) List(ctx context.Context, lang i18n.Language, query TeamQuery) ([]*model.Team, *Error) {
	l := logger.FromContext(ctx)
	l.Debug("listing teams", zap.String("lang", string(lang)), zap.String("search", query.Search))

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, NewError(ErrorCodeUnspecified, "listing interrupted")
	}

	records, err := s.teams.List(ctx)
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to list teams")
	}

	search := strings.ToLower(query.Search)

	teams := make([]*model.Team, 0, len(records))
	for _, record := range records {
		team := s.localize(lang, record)

		if search != "" &&
			!strings.Contains(strings.ToLower(team.Name), search) &&
			!strings.Contains(strings.ToLower(team.Description), search) {
			continue
		}
		if query.Category != "" && team.Category != query.Category {
			continue
		}

		teams = append(teams, team)
	}
	return teams, nil
}

// Categories returns the distinct localized categories present in the
// fixtures, in fixture order.
func (s *TeamService) Categories(ctx context.Context, lang i18n.Language) ([]string, *Error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, NewError(ErrorCodeUnspecified, "listing interrupted")
	}

	records, err := s.teams.List(ctx)
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to list teams")
	}

	seen := make(map[string]bool)
	categories := make([]string, 0, len(records))
	for _, record := range records {
		category := s.resolver.ResolveIn(lang, record.CategoryKey)
		if !seen[category] {
			seen[category] = true
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (s *TeamService) localize(lang i18n.Language, record *repository.Team) *model.Team {
	members := make([]*model.TeamMember, 0, len(record.Members))
	for _, member := range record.Members {
		members = append(members, &model.TeamMember{
			ID:     member.ID,
			Name:   s.resolver.ResolveIn(lang, member.NameKey),
			Role:   s.resolver.ResolveIn(lang, member.RoleKey),
			Avatar: member.Avatar,
		})
	}

	return &model.Team{
		ID:          record.ID,
		Name:        s.resolver.ResolveIn(lang, record.NameKey),
		Description: s.resolver.ResolveIn(lang, record.DescriptionKey),
		Members:     members,
		ProjectURL:  record.ProjectURL,
		Category:    s.resolver.ResolveIn(lang, record.CategoryKey),
		IsWinner:    record.IsWinner,
	}
}

func (s *TeamService) WithTeamRepo(r repository.TeamRepository) *TeamService {
	s.teams = r
	return s
}

func (s *TeamService) WithResolver(r *i18n.Resolver) *TeamService {
	s.resolver = r
	return s
}

func (s *TeamService) WithLatency(d time.Duration) *TeamService {
	s.latency = d
	return s
}
