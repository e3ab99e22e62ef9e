package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cubeai/bubix/internal/llm"
	"github.com/cubeai/bubix/internal/persona"
)

func childInput() Input {
	return Input{
		Role:      RoleChild,
		Persona:   persona.Select(persona.UserTypeChild),
		Methods:   persona.Methods(),
		User:      &User{FirstName: "Emma", LastName: "Martin", UserType: "CHILD", SubscriptionType: "PREMIUM"},
		Context:   "Session active",
		Intent:    "MATH_HELP",
		UserQuery: "Aide-moi avec les fractions",
	}
}

func TestBuildSectionOrder(t *testing.T) {
	system, _ := Build(childInput())

	sections := []string{
		"## 🎯 IDENTITÉ",
		"## 🎭 TRAITS DE PERSONNALITÉ",
		"## 🗣️ VOIX ET COMMUNICATION",
		"## 🎓 APPROCHE PÉDAGOGIQUE",
		"## 🛠️ MÉTHODES CUBEAI ACTIVÉES",
		"## 📊 CONTEXTE UTILISATEUR",
		"## 💬 MESSAGE D'ACCUEIL PERSONNALISÉ",
		"## 🎯 RÈGLES DE COMPORTEMENT SPÉCIFIQUES",
		"## 📊 DONNÉES CONTEXTUELLES",
	}
	pos := -1
	for _, s := range sections {
		i := strings.Index(system, s)
		if i < 0 {
			t.Fatalf("section %q missing from system prompt", s)
		}
		if i < pos {
			t.Errorf("section %q out of order", s)
		}
		pos = i
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, _ := Build(childInput())
	b, _ := Build(childInput())
	if a != b {
		t.Error("same input must produce the same system prompt")
	}
}

func TestBuildMessagesWindow(t *testing.T) {
	in := childInput()
	for i := range 15 {
		role := llm.RoleUser
		if i%2 == 1 {
			role = llm.RoleAssistant
		}
		in.History = append(in.History, llm.Message{Role: role, Content: fmt.Sprintf("message %d", i)})
	}

	_, messages := Build(in)

	if len(messages) != 11 {
		t.Fatalf("got %d messages, want 10 history + 1 query", len(messages))
	}
	if messages[0].Content != "message 5" {
		t.Errorf("window must keep the newest history, first kept = %q", messages[0].Content)
	}
	last := messages[len(messages)-1]
	if last.Role != llm.RoleUser || last.Content != "Aide-moi avec les fractions" {
		t.Errorf("last message must be the user query, got %+v", last)
	}
}

func TestBuildSubProfileSection(t *testing.T) {
	in := childInput()
	in.SubProfile = persona.SelectSubProfile("je veux faire des maths")

	system, _ := Build(in)
	if !strings.Contains(system, "## 🎨 PROFIL SPÉCIALISÉ : Mathix le Mage") {
		t.Error("sub-profile section missing")
	}
	if !strings.Contains(system, "Incarne le profil spécialisé : Mathix le Mage") {
		t.Error("behavior rules must name the sub-profile")
	}
}

func TestBuildAnonymousUser(t *testing.T) {
	in := Input{
		Role:      RolePublic,
		Persona:   persona.Select(persona.UserTypePublic),
		UserQuery: "C'est quoi CubeAI ?",
	}

	system, _ := Build(in)
	if !strings.Contains(system, "- Utilisateur non connecté") {
		t.Error("anonymous users must be marked as not connected")
	}
	if !strings.Contains(system, "Aucune donnée enfant disponible") {
		t.Error("missing child data placeholder")
	}
	if !strings.Contains(system, "**RAG SNIPPETS:** n/a") {
		t.Error("empty RAG must render n/a")
	}
}

func TestWelcomeParentJoinsChildNames(t *testing.T) {
	children := []ChildLine{
		{FirstName: "Emma", LastName: "Martin", UserType: "CHILD"},
		{FirstName: "Lucas", LastName: "Martin", UserType: "CHILD"},
	}
	got := Welcome(RoleParent, &User{FirstName: "Marie"}, children)

	if !strings.Contains(got, "Bonjour Marie !") {
		t.Errorf("parent welcome must greet by first name: %q", got)
	}
	if !strings.Contains(got, "vos enfants Emma et Lucas") {
		t.Errorf("welcome must join child names with \"et\": %q", got)
	}
}

func TestWelcomeParentSingleChildSingular(t *testing.T) {
	got := Welcome(RoleParent, &User{FirstName: "Marie"}, []ChildLine{{FirstName: "Emma"}})
	if !strings.Contains(got, "votre enfant Emma") {
		t.Errorf("single child must use the singular form: %q", got)
	}
}

func TestWelcomeFallsBackToPublic(t *testing.T) {
	got := Welcome(RoleParent, nil, nil)
	if !strings.Contains(got, "l'assistant IA intelligent de CubeAI") {
		t.Errorf("missing user must fall back to the public welcome: %q", got)
	}
}

func TestBehaviorRulesPerRole(t *testing.T) {
	childSystem, _ := Build(childInput())
	if !strings.Contains(childSystem, "**MODE ENFANT - COMPORTEMENT OBLIGATOIRE :**") {
		t.Error("child prompt missing child behavior rules")
	}

	in := Input{
		Role:      RoleParent,
		Persona:   persona.Select(persona.UserTypeParent),
		User:      &User{FirstName: "Marie", LastName: "Martin", UserType: "PARENT", SubscriptionType: "PREMIUM"},
		UserQuery: "Comment progresse Emma ?",
	}
	parentSystem, _ := Build(in)
	if !strings.Contains(parentSystem, "**MODE PARENT - EXPERT PÉDAGOGIQUE CUBEAI:**") {
		t.Error("parent prompt missing parent behavior rules")
	}
	if !strings.Contains(parentSystem, "## 🚫 INTERDICTIONS ABSOLUES (PRIORITÉ MAXIMALE)") {
		t.Error("parent prompt missing the prohibition block")
	}
}
