package service

import (
	"context"
	"time"

	"github.com/surhub/startup-weekend/internal/i18n"
	"github.com/surhub/startup-weekend/internal/model"
	"github.com/surhub/startup-weekend/internal/repository"
)

// ScheduleService serves the localized three-day event programme.
type ScheduleService struct {
	schedule repository.ScheduleRepository
	resolver *i18n.Resolver

	latency time.Duration
}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{}
}

func (s *ScheduleService) Days(ctx context.Context, lang i18n.Language) ([]*model.ScheduleDay, *Error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, NewError(ErrorCodeUnspecified, "listing interrupted")
	}

	records, err := s.schedule.List(ctx)
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to list schedule")
	}

	days := make([]*model.ScheduleDay, 0, len(records))
	for _, record := range records {
		events := make([]*model.ScheduleEvent, 0, len(record.Events))
		for _, event := range record.Events {
			events = append(events, &model.ScheduleEvent{
				Time:        event.Time,
				Title:       s.resolver.ResolveIn(lang, event.TitleKey),
				Description: s.resolver.ResolveIn(lang, event.DescKey),
				Location:    s.resolver.ResolveIn(lang, event.LocationKey),
			})
		}
		days = append(days, &model.ScheduleDay{
			Day:    record.Day,
			Date:   record.Date,
			Events: events,
		})
	}
	return days, nil
}

func (s *ScheduleService) WithScheduleRepo(r repository.ScheduleRepository) *ScheduleService {
	s.schedule = r
	return s
}

func (s *ScheduleService) WithResolver(r *i18n.Resolver) *ScheduleService {
	s.resolver = r
	return s
}

func (s *ScheduleService) WithLatency(d time.Duration) *ScheduleService {
	s.latency = d
	return s
}
