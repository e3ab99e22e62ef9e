package persona

import "testing"

func TestSelect_Child(t *testing.T) {
	p := Select(UserTypeChild)
	if p.Kind != KindKid {
		t.Errorf("got kind %q, want %q", p.Kind, KindKid)
	}
	if len(p.Pedagogy.LearningModes) == 0 {
		t.Error("kid persona must define learning modes")
	}
	if len(p.Pedagogy.Tools) != 0 {
		t.Error("kid persona must not define tools")
	}
}

func TestSelect_Parent(t *testing.T) {
	p := Select(UserTypeParent)
	if p.Kind != KindPro {
		t.Errorf("got kind %q, want %q", p.Kind, KindPro)
	}
	if len(p.Pedagogy.Tools) == 0 {
		t.Error("pro persona must define tools")
	}
}

func TestSelect_UnknownFallsBackToPublic(t *testing.T) {
	for _, ut := range []UserType{UserTypePublic, "", "ADMIN", "child"} {
		p := Select(ut)
		if p.Kind != KindPublic {
			t.Errorf("Select(%q): got kind %q, want %q", ut, p.Kind, KindPublic)
		}
	}
}

func TestSelectSubProfile_Table(t *testing.T) {
	tests := []struct {
		text string
		want string // sub-profile key, "" for nil
	}{
		{"Je veux faire des maths", "mathix_le_mage"},
		{"UN CALCUL DIFFICILE", "mathix_le_mage"},
		{"apprendre à coder", "codix_le_robot"},
		{"la programmation des robots", "codix_le_robot"},
		{"une histoire de pirates", "historix_le_conteur"},
		{"la lecture du soir", "historix_le_conteur"},
		{"une expérience de science", "scientix_l_explorateur"},
		{"progresser en anglais", "linguix_le_polyglotte"},
		{"le suivi de mes enfants", "strategix_l_analyste"},
		{"bonjour", ""},
		{"", ""},
	}

	for _, tt := range tests {
		got := SelectSubProfile(tt.text)
		if tt.want == "" {
			if got != nil {
				t.Errorf("SelectSubProfile(%q): got %q, want nil", tt.text, got.Key)
			}
			continue
		}
		if got == nil {
			t.Errorf("SelectSubProfile(%q): got nil, want %q", tt.text, tt.want)
			continue
		}
		if got.Key != tt.want {
			t.Errorf("SelectSubProfile(%q): got %q, want %q", tt.text, got.Key, tt.want)
		}
	}
}

func TestSelectSubProfile_TableOrderWins(t *testing.T) {
	// "math" is checked before "histoire": a query containing both resolves
	// to the math profile because the rule table is evaluated top to bottom.
	got := SelectSubProfile("une histoire de maths")
	if got == nil || got.Key != "mathix_le_mage" {
		t.Fatalf("got %v, want mathix_le_mage", got)
	}
}

func TestMethods_CopyIsIndependent(t *testing.T) {
	a := Methods()
	if len(a) != 7 {
		t.Fatalf("got %d methods, want 7", len(a))
	}
	a[0].Name = "mutated"
	if Methods()[0].Name == "mutated" {
		t.Error("Methods must return a copy")
	}
}
