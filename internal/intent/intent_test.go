package intent

import "testing"

func TestClassify_OnePerCategory(t *testing.T) {
	tests := []struct {
		text string
		want PromptType
	}{
		{"Emma a une difficulté en lecture", LearningDifficulty},
		{"Est-il connecté ?", ConnectionStatus},
		{"Quel est son score ?", PerformanceQuery},
		{"Combien de temps passe-t-il sur CubeMatch ?", TimeQuery},
		{"Avez-vous une suggestion ?", RecommendationRequest},
		{"Quelle évolution ce mois-ci ?", ProgressUpdate},
		{"Je souhaiterais qu'Emma lise davantage", ParentWishes},
		{"Quelle orientation pour Lucas ?", CareerPlanning},
		{"Quelles sont ses lacunes ?", WeaknessIdentification},
		{"Comment renforcer sa logique ?", ImprovementGoals},
		{"De quoi a-t-il besoin ?", SpecificNeeds},
		{"Quelle méthode lui convient ?", LearningPreferences},
		{"Quel objectif viser ?", LearningObjectives},
		{"J'ai un souci avec les écrans", ParentConcerns},
		{"Elle a un talent pour le dessin", StrengthIdentification},
		{"Parlez-moi de son caractère", PersonalityInsights},
		{"Bonjour Bubix", GeneralQuery},
		{"", GeneralQuery},
	}

	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if got := Classify("SCORE DE LUCAS"); got != PerformanceQuery {
		t.Errorf("got %s, want %s", got, PerformanceQuery)
	}
}

func TestClassify_RuleOrderPrecedence(t *testing.T) {
	// "amélioration" appears in both the ProgressUpdate and ImprovementGoals
	// keyword sets; ProgressUpdate is declared first and must win.
	if got := Classify("Je m'inquiète de son amélioration"); got != ProgressUpdate {
		t.Errorf("got %s, want %s", got, ProgressUpdate)
	}
	// Likewise "progrès" outranks "inquiet" (ParentConcerns).
	if got := Classify("Je suis inquiet de ses progrès"); got != ProgressUpdate {
		t.Errorf("got %s, want %s", got, ProgressUpdate)
	}
	// "difficulté" is the very first rule and beats everything after it.
	if got := Classify("sa difficulté avec les scores"); got != LearningDifficulty {
		t.Errorf("got %s, want %s", got, LearningDifficulty)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	const text = "je souhaiterais que Emma passe plus de temps sur CubeMatch"
	first := Classify(text)
	for range 5 {
		if got := Classify(text); got != first {
			t.Fatalf("classification not stable: %s then %s", first, got)
		}
	}
	// "temps" (TimeQuery, rule 4) precedes "souhait" (ParentWishes, rule 7).
	if first != TimeQuery {
		t.Errorf("got %s, want %s", first, TimeQuery)
	}
}

func TestAll_EndsWithDefault(t *testing.T) {
	all := All()
	if len(all) != 17 {
		t.Fatalf("got %d categories, want 17", len(all))
	}
	if all[len(all)-1] != GeneralQuery {
		t.Errorf("last category = %s, want %s", all[len(all)-1], GeneralQuery)
	}
}
