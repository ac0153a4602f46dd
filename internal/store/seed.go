package store

import "github.com/dmitrijs2005/kfitness/internal/models"

// seedUsers is the record set written to an empty storage: one admin, one
// student with access until 2025-12-31 and one whose access expired on
// 2023-01-01. All passwords are "123".
func seedUsers() []models.User {
	return []models.User{
		{
			ID:             1,
			Username:       "admin",
			Password:       "123",
			Role:           models.RoleAdmin,
			FullName:       "Admin K-Fitness",
			ExpirationDate: "2099-12-31",
			ProgressPhotos: []models.ProgressPhoto{},
		},
		{
			ID:             2,
			Username:       "joao",
			Password:       "123",
			Role:           models.RoleStudent,
			FullName:       "João da Silva",
			ExpirationDate: "2025-12-31",
			WorkoutPlan: models.WorkoutPlan{
				Monday:    "Peito e Tríceps\n- Supino Reto: 4x10\n- Crucifixo: 3x12\n- Tríceps Testa: 4x10",
				Tuesday:   "Costas e Bíceps\n- Barra Fixa: 3x Máx\n- Remada Curvada: 4x10\n- Rosca Direta: 4x12",
				Wednesday: "Descanso",
				Thursday:  "Pernas\n- Agachamento: 5x5\n- Leg Press: 4x12\n- Cadeira Extensora: 3x15",
				Friday:    "Ombros e Trapézio\n- Desenvolvimento Militar: 4x10\n- Elevação Lateral: 3x15\n- Encolhimento: 4x12",
				Saturday:  "Cardio\n- 45 minutos de corrida leve",
			},
			DietPlan:       joaoDiet(),
			ProgressPhotos: []models.ProgressPhoto{},
		},
		{
			ID:             3,
			Username:       "maria",
			Password:       "123",
			Role:           models.RoleStudent,
			FullName:       "Maria Souza",
			ExpirationDate: "2023-01-01",
			WorkoutPlan: models.WorkoutPlan{
				Monday:    "Treino A",
				Tuesday:   "Treino B",
				Wednesday: "Descanso",
				Thursday:  "Treino C",
				Friday:    "Treino D",
				Saturday:  "Cardio",
			},
			DietPlan: models.UniformDiet(models.Meal{
				Breakfast: "Café",
				Lunch:     "Almoço",
				Snack:     "Lanche",
				Dinner:    "Jantar",
			}),
			ProgressPhotos: []models.ProgressPhoto{},
		},
	}
}

func joaoDiet() models.DietPlan {
	a := models.Meal{
		Breakfast: "Ovos mexidos com aveia",
		Lunch:     "Frango grelhado com batata doce e salada",
		Snack:     "Iogurte com frutas",
		Dinner:    "Salmão com brócolis",
	}
	b := models.Meal{
		Breakfast: "Vitamina de banana com whey",
		Lunch:     "Carne vermelha com arroz integral e feijão",
		Snack:     "Castanhas",
		Dinner:    "Sopa de legumes",
	}
	c := models.Meal{
		Breakfast: "Pão integral com queijo branco",
		Lunch:     "Omelete com salada",
		Snack:     "Fruta",
		Dinner:    "Frango desfiado com mandioca",
	}
	return models.DietPlan{
		Monday:    a,
		Tuesday:   b,
		Wednesday: c,
		Thursday:  a,
		Friday:    b,
		Saturday:  c,
	}
}
