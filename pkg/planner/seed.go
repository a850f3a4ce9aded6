package planner

import (
	"time"

	"github.com/animaart/planner/pkg/model"
)

// seedTasks is the sample data shown the first time the app runs.
func seedTasks() []model.Task {
	return []model.Task{
		{
			ID:       "1",
			Title:    "Comprar balões para festa da Maria",
			Priority: model.PriorityHigh,
			DueDate:  time.Now().Format(time.RFC3339),
		},
		{
			ID:        "2",
			Title:     "Limpar caixa de som",
			Completed: true,
			Priority:  model.PriorityMedium,
		},
	}
}

func seedParties() []model.Party {
	return []model.Party{
		{
			ID:               "1",
			ClientName:       "Ana Souza",
			ClientPhone:      "(11) 99999-8888",
			BirthdayPerson:   "Pedro",
			Age:              5,
			NumberOfChildren: 20,
			Date:             time.Now().AddDate(0, 0, 2).Format(model.DateLayout),
			Time:             "14:00",
			Location:         "Av. Paulista, 1000, São Paulo",
			Theme:            "Homem Aranha",
			Workshops:        "Oficina de Slime",
			Observations:     "Criança alérgica a amendoim. Levar teia de aranha extra.",
			Status:           model.StatusConfirmed,
		},
	}
}
