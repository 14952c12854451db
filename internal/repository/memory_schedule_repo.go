package repository

import (
	"context"
	"time"
)

// Oman standard time; the event dates are local to the venue.
var gulfTime = time.FixedZone("GST", 4*60*60)

type ScheduleDay struct {
	Day    int
	Date   time.Time
	Events []*ScheduleEvent
}

type ScheduleEvent struct {
	Time        string
	TitleKey    string
	DescKey     string
	LocationKey string
}

type ScheduleRepository interface {
	List(ctx context.Context) ([]*ScheduleDay, error)
}

type memoryScheduleRepository struct {
	days []*ScheduleDay
}

func NewMemoryScheduleRepository() ScheduleRepository {
	return &memoryScheduleRepository{days: []*ScheduleDay{
		{
			Day:  1,
			Date: time.Date(2025, time.October, 30, 0, 0, 0, 0, gulfTime),
			Events: []*ScheduleEvent{
				{Time: "16:00", TitleKey: "schedule_checkin", DescKey: "schedule_checkin_desc", LocationKey: "location_main_hall"},
				{Time: "17:00", TitleKey: "schedule_opening", DescKey: "schedule_opening_desc", LocationKey: "location_theater"},
				{Time: "17:30", TitleKey: "schedule_icebreaker", DescKey: "schedule_icebreaker_desc", LocationKey: "location_workshop_a"},
				{Time: "17:45", TitleKey: "schedule_ideation", DescKey: "schedule_ideation_desc", LocationKey: "location_workshop_a"},
				{Time: "18:15", TitleKey: "schedule_problem_analysis", DescKey: "schedule_problem_analysis_desc", LocationKey: "location_workshop_a"},
				{Time: "18:45", TitleKey: "schedule_design_thinking", DescKey: "schedule_design_thinking_desc", LocationKey: "location_workshop_a"},
				{Time: "19:15", TitleKey: "schedule_pitch_voting", DescKey: "schedule_pitch_voting_desc", LocationKey: "location_theater"},
				{Time: "20:15", TitleKey: "schedule_team_formation", DescKey: "schedule_team_formation_desc", LocationKey: "location_main_hall"},
				{Time: "21:00", TitleKey: "schedule_start_working", DescKey: "schedule_start_working_desc", LocationKey: "location_coworking"},
			},
		},
		{
			Day:  2,
			Date: time.Date(2025, time.October, 31, 0, 0, 0, 0, gulfTime),
			Events: []*ScheduleEvent{
				{Time: "08:00", TitleKey: "schedule_breakfast", DescKey: "schedule_breakfast_desc", LocationKey: "location_dining_area"},
				{Time: "09:15", TitleKey: "schedule_day2_briefing", DescKey: "schedule_day2_briefing_desc", LocationKey: "location_main_hall"},
				{Time: "09:30", TitleKey: "schedule_business_work", DescKey: "schedule_business_work_desc", LocationKey: "location_coworking"},
				{Time: "13:00", TitleKey: "schedule_lunch", DescKey: "schedule_lunch_desc", LocationKey: "location_dining_area"},
				{Time: "14:00", TitleKey: "schedule_presentation_workshop", DescKey: "schedule_presentation_workshop_desc", LocationKey: "location_workshop_b"},
				{Time: "15:00", TitleKey: "schedule_team_checkpoint", DescKey: "schedule_team_checkpoint_desc", LocationKey: "location_coworking"},
				{Time: "18:30", TitleKey: "schedule_mentor_sessions", DescKey: "schedule_mentor_sessions_desc", LocationKey: "location_coworking"},
				{Time: "19:30", TitleKey: "schedule_dinner", DescKey: "schedule_dinner_desc", LocationKey: "location_dining_area"},
				{Time: "20:30", TitleKey: "schedule_all_teams_review", DescKey: "schedule_all_teams_review_desc", LocationKey: "location_main_hall"},
			},
		},
		{
			Day:  3,
			Date: time.Date(2025, time.November, 1, 0, 0, 0, 0, gulfTime),
			Events: []*ScheduleEvent{
				{Time: "09:00", TitleKey: "schedule_final_breakfast", DescKey: "schedule_final_breakfast_desc", LocationKey: "location_dining_area"},
				{Time: "10:00", TitleKey: "schedule_final_work", DescKey: "schedule_final_work_desc", LocationKey: "location_coworking"},
				{Time: "13:00", TitleKey: "schedule_pitch_practice", DescKey: "schedule_pitch_practice_desc", LocationKey: "location_workshop_b"},
				{Time: "16:00", TitleKey: "schedule_final_presentations", DescKey: "schedule_final_presentations_desc", LocationKey: "location_theater"},
				{Time: "18:00", TitleKey: "schedule_judging", DescKey: "schedule_judging_desc", LocationKey: "location_main_hall"},
				{Time: "19:00", TitleKey: "schedule_awards", DescKey: "schedule_awards_desc", LocationKey: "location_theater"},
				{Time: "20:00", TitleKey: "schedule_closing", DescKey: "schedule_closing_desc", LocationKey: "location_theater"},
			},
		},
	}}
}

func (m *memoryScheduleRepository) List(_ context.Context) ([]*ScheduleDay, error) {
	days := make([]*ScheduleDay, 0, len(m.days))
	for _, day := range m.days {
		copied := *day
		days = append(days, &copied)
	}
	return days, nil
}
