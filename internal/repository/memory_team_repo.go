package repository

import "context"

// Team fixture records carry bundle keys rather than display strings; the
// team service resolves them for the requested language.
type Team struct {
	ID             string
	NameKey        string
	DescriptionKey string
	Members        []*TeamMember
	ProjectURL     string
	CategoryKey    string
	IsWinner       bool
}

type TeamMember struct {
	ID      string
	NameKey string
	RoleKey string
	Avatar  string
}

type TeamRepository interface {
	List(ctx context.Context) ([]*Team, error)
}

type memoryTeamRepository struct {
	teams []*Team
}

func NewMemoryTeamRepository() TeamRepository {
	return &memoryTeamRepository{teams: []*Team{
		{
			ID:             "1",
			NameKey:        "team_ecotrack_name",
			DescriptionKey: "team_ecotrack_desc",
			Members: []*TeamMember{
				{ID: "1", NameKey: "member_sarah_johnson", RoleKey: "role_product_manager", Avatar: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "2", NameKey: "member_david_chen", RoleKey: "role_developer", Avatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "3", NameKey: "member_emily_rodriguez", RoleKey: "role_designer", Avatar: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "4", NameKey: "member_james_wilson", RoleKey: "role_developer", Avatar: "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
			},
			ProjectURL:  "https://ecotrack.example.com",
			CategoryKey: "category_environment",
			IsWinner:    true,
		},
		{
			ID:             "2",
			NameKey:        "team_mealprep_ai_name",
			DescriptionKey: "team_mealprep_ai_desc",
			Members: []*TeamMember{
				{ID: "5", NameKey: "member_aisha_patel", RoleKey: "role_product_manager", Avatar: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "6", NameKey: "member_michael_brown", RoleKey: "role_developer", Avatar: "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "7", NameKey: "member_sophia_kim", RoleKey: "role_designer", Avatar: "https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
			},
			ProjectURL:  "https://mealprep.example.com",
			CategoryKey: "category_food_tech",
		},
		{
			ID:             "3",
			NameKey:        "team_studybuddy_name",
			DescriptionKey: "team_studybuddy_desc",
			Members: []*TeamMember{
				{ID: "8", NameKey: "member_michael_chen", RoleKey: "role_developer", Avatar: "https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "9", NameKey: "member_jessica_taylor", RoleKey: "role_product_manager", Avatar: "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "10", NameKey: "member_daniel_martinez", RoleKey: "role_developer", Avatar: "https://images.pexels.com/photos/1516680/pexels-photo-1516680.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "11", NameKey: "member_emma_wilson", RoleKey: "role_designer", Avatar: "https://images.pexels.com/photos/1036623/pexels-photo-1036623.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
			},
			ProjectURL:  "https://studybuddy.example.com",
			CategoryKey: "category_edtech",
			IsWinner:    true,
		},
		{
			ID:             "4",
			NameKey:        "team_healthtracker_name",
			DescriptionKey: "team_healthtracker_desc",
			Members: []*TeamMember{
				{ID: "12", NameKey: "member_robert_johnson", RoleKey: "role_developer", Avatar: "https://images.pexels.com/photos/2379005/pexels-photo-2379005.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "13", NameKey: "member_lisa_wang", RoleKey: "role_product_manager", Avatar: "https://images.pexels.com/photos/1181690/pexels-photo-1181690.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "14", NameKey: "member_alex_smith", RoleKey: "role_designer", Avatar: "https://images.pexels.com/photos/1121796/pexels-photo-1121796.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
			},
			ProjectURL:  "https://healthtracker.example.com",
			CategoryKey: "category_healthtech",
		},
		{
			ID:             "5",
			NameKey:        "team_localmarket_name",
			DescriptionKey: "team_localmarket_desc",
			Members: []*TeamMember{
				{ID: "15", NameKey: "member_thomas_lee", RoleKey: "role_developer", Avatar: "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "16", NameKey: "member_olivia_garcia", RoleKey: "role_product_manager", Avatar: "https://images.pexels.com/photos/1587009/pexels-photo-1587009.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "17", NameKey: "member_noah_williams", RoleKey: "role_developer", Avatar: "https://images.pexels.com/photos/1300402/pexels-photo-1300402.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "18", NameKey: "member_ava_martinez", RoleKey: "role_designer", Avatar: "https://images.pexels.com/photos/1382731/pexels-photo-1382731.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
			},
			CategoryKey: "category_ecommerce",
		},
		{
			ID:             "6",
			NameKey:        "team_codementor_name",
			DescriptionKey: "team_codementor_desc",
			Members: []*TeamMember{
				{ID: "19", NameKey: "member_ethan_brown", RoleKey: "role_developer", Avatar: "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "20", NameKey: "member_sophia_davis", RoleKey: "role_product_manager", Avatar: "https://images.pexels.com/photos/1181695/pexels-photo-1181695.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
				{ID: "21", NameKey: "member_liam_johnson", RoleKey: "role_developer", Avatar: "https://images.pexels.com/photos/1516680/pexels-photo-1516680.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
			},
			ProjectURL:  "https://codementor.example.com",
			CategoryKey: "category_edtech",
		},
	}}
}

func (m *memoryTeamRepository) List(_ context.Context) ([]*Team, error) {
	teams := make([]*Team, 0, len(m.teams))
	for _, team := range m.teams {
		copied := *team
		teams = append(teams, &copied)
	}
	return teams, nil
}
