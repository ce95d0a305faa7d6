package roster

import "github.com/limaJavier/interview-scheduling/pkg/model"

// DefaultProfessors is the demo roster shipped with the application
func DefaultProfessors() []model.Professor {
	return []model.Professor{
		{Name: "Lucas", AvailableStart: 10 * 60, AvailableEnd: 18 * 60},
		{Name: "Anselmo", AvailableStart: 7 * 60, AvailableEnd: 15 * 60},
		{Name: "Lucrecia", AvailableStart: 12 * 60, AvailableEnd: 20 * 60},
		{Name: "Renato", AvailableStart: 13 * 60, AvailableEnd: 21 * 60},
		{Name: "Florinda", AvailableStart: 7 * 60, AvailableEnd: 15 * 60},
	}
}

func DefaultTeams() []model.Team {
	return []model.Team{
		{Id: 1, Professors: []string{"Lucas", "Anselmo", "Florinda"}},
		{Id: 2, Professors: []string{"Renato", "Anselmo", "Lucrecia"}},
		{Id: 3, Professors: []string{"Lucas", "Lucrecia", "Florinda"}},
		{Id: 4, Professors: []string{"Renato", "Lucas", "Florinda"}},
		{Id: 5, Professors: []string{"Lucrecia", "Anselmo", "Florinda"}},
		{Id: 6, Professors: []string{"Anselmo", "Lucas", "Florinda"}},
		{Id: 7, Professors: []string{"Anselmo", "Florinda", "Renato"}},
		{Id: 8, Professors: []string{"Lucrecia", "Renato", "Lucas"}},
	}
}
