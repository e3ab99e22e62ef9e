// Package prompt assembles the system prompt and message list for a chat
// turn. The system prompt is built from named sections in a fixed order:
// persona identity, user context, welcome message, behavior rules, then
// contextual data. Section order and wording are stable so prompts are
// reproducible for a given input.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/cubeai/bubix/internal/llm"
	"github.com/cubeai/bubix/internal/persona"
)

// historyWindow is how many prior messages a turn carries.
const historyWindow = 10

// Role is the conversation mode, derived from the authenticated user type.
type Role string

const (
	RoleChild  Role = "child"
	RoleParent Role = "parent"
	RolePublic Role = "public"
)

// User is the authenticated user as rendered into the prompt.
type User struct {
	FirstName        string
	LastName         string
	UserType         string
	SubscriptionType string
}

// ChildLine is one child's summary row in the parent-facing data block.
type ChildLine struct {
	FirstName     string
	LastName      string
	UserType      string
	ActivityCount int
	LastLoginAt   *time.Time
}

// Input carries everything a chat turn contributes to the prompt.
type Input struct {
	Role       Role
	Persona    persona.Persona
	SubProfile *persona.SubProfile
	Methods    []persona.Method

	User     *User // nil when not authenticated
	Children []ChildLine

	Context  string
	Insights string
	RAG      []string
	Intent   string

	History   []llm.Message
	UserQuery string
}

// Build produces the system prompt and the message list for one turn.
// Messages are the last ten history entries followed by the user query.
func Build(in Input) (system string, messages []llm.Message) {
	var b strings.Builder

	writePersonaSection(&b, in.Persona, in.SubProfile, in.Methods)
	writeUserContext(&b, in.User, in.Children)
	b.WriteString("\n## 💬 MESSAGE D'ACCUEIL PERSONNALISÉ\n")
	b.WriteString(Welcome(in.Role, in.User, in.Children))
	b.WriteString("\n")
	writeBehaviorRules(&b, in.Role, in.Persona, in.SubProfile)
	writeContextData(&b, in)

	system = strings.TrimSpace(b.String())

	history := in.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	messages = make([]llm.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: in.UserQuery})
	return system, messages
}

// Welcome returns the role-specific greeting injected into the system prompt
// and shown as the first assistant message of a fresh conversation.
func Welcome(role Role, user *User, children []ChildLine) string {
	switch {
	case role == RoleParent && user != nil && len(children) > 0:
		names := make([]string, 0, len(children))
		for _, c := range children {
			names = append(names, c.FirstName)
		}
		possessive := "votre enfant"
		if len(children) > 1 {
			possessive = "vos enfants"
		}
		return fmt.Sprintf(`Bonjour %s ! 👋

Je suis Bubix, votre expert pédagogique personnel de CubeAI. Je suis là pour vous accompagner dans l'éducation de %s %s.

🎯 **Ce que je peux faire pour vous :**
• Analyser les performances de %s
• Proposer des méthodes d'apprentissage adaptées
• Suivre les progrès en temps réel
• Répondre à vos questions éducatives

💡 **N'hésitez pas à me poser des questions sur :**
- Les difficultés d'apprentissage
- Les méthodes pédagogiques
- Le suivi des progrès
- Les recommandations personnalisées

Comment puis-je vous aider aujourd'hui ?`,
			user.FirstName, possessive, strings.Join(names, " et "), possessive)

	case role == RoleChild && user != nil:
		return fmt.Sprintf(`Salut %s ! 🌟

Je suis Bubix, ton assistant d'apprentissage préféré ! Je suis là pour t'aider à apprendre en s'amusant.

🎮 **Ce qu'on peut faire ensemble :**
• Résoudre des problèmes de maths
• Apprendre de nouvelles choses
• Jouer avec les mots
• Découvrir le monde des sciences

💫 **Dis-moi ce que tu veux faire aujourd'hui !**
Tu peux me poser n'importe quelle question ou me demander de t'aider avec tes devoirs.`, user.FirstName)

	default:
		return `Bonjour ! 👋

Je suis Bubix, l'assistant IA intelligent de CubeAI. Je suis là pour vous faire découvrir les possibilités de l'apprentissage personnalisé.

Comment puis-je vous aider aujourd'hui ?`
	}
}

// writePersonaSection renders the persona identity block: name, traits,
// voice, pedagogy, then the optional sub-profile and method catalog.
func writePersonaSection(b *strings.Builder, p persona.Persona, sub *persona.SubProfile, methods []persona.Method) {
	fmt.Fprintf(b, "# %s\n\n", p.Name)
	fmt.Fprintf(b, "## 🎯 IDENTITÉ\n%s\n\n", p.Description)

	b.WriteString("## 🎭 TRAITS DE PERSONNALITÉ\n")
	for _, t := range p.Traits {
		fmt.Fprintf(b, "- %s\n", t)
	}

	b.WriteString("\n## 🗣️ VOIX ET COMMUNICATION\n")
	fmt.Fprintf(b, "- **Ton** : %s\n", p.Voice.Tone)
	fmt.Fprintf(b, "- **Vocabulaire** : %s\n", p.Voice.Vocabulary)
	b.WriteString("- **Phrases caractéristiques** :\n")
	for _, phrase := range p.Voice.Catchphrases {
		fmt.Fprintf(b, "  - %q\n", phrase)
	}

	b.WriteString("\n## 🎓 APPROCHE PÉDAGOGIQUE\n")
	fmt.Fprintf(b, "- **Style** : %s\n", p.Pedagogy.Style)
	if len(p.Pedagogy.LearningModes) > 0 {
		b.WriteString("- **Modes d'apprentissage** :\n")
		for _, m := range p.Pedagogy.LearningModes {
			fmt.Fprintf(b, "  - %s\n", m)
		}
	}
	if len(p.Pedagogy.Tools) > 0 {
		b.WriteString("- **Outils disponibles** :\n")
		for _, t := range p.Pedagogy.Tools {
			fmt.Fprintf(b, "  - %s\n", t)
		}
	}

	if sub != nil {
		fmt.Fprintf(b, "\n## 🎨 PROFIL SPÉCIALISÉ : %s\n", sub.Title)
		fmt.Fprintf(b, "- **Domaine** : %s\n", sub.Domain)
		fmt.Fprintf(b, "- **Style** : %s\n", sub.Style)
		fmt.Fprintf(b, "- **Exemple** : %q\n", sub.SampleLine)
	}

	if len(methods) > 0 {
		b.WriteString("\n## 🛠️ MÉTHODES CUBEAI ACTIVÉES\n")
		for _, m := range methods {
			fmt.Fprintf(b, "- **%s** : %s\n", m.Name, m.Description)
		}
	}
}

func writeUserContext(b *strings.Builder, user *User, children []ChildLine) {
	b.WriteString("\n## 📊 CONTEXTE UTILISATEUR\n")
	if user == nil {
		b.WriteString("- Utilisateur non connecté\n")
		return
	}
	fmt.Fprintf(b, "- Nom: %s %s\n", user.FirstName, user.LastName)
	fmt.Fprintf(b, "- Type: %s\n", user.UserType)
	fmt.Fprintf(b, "- Abonnement: %s\n", user.SubscriptionType)
	if len(children) > 0 {
		lines := make([]string, 0, len(children))
		for _, c := range children {
			lines = append(lines, fmt.Sprintf("%s %s (%s)", c.FirstName, c.LastName, c.UserType))
		}
		fmt.Fprintf(b, "- Enfants: %s\n", strings.Join(lines, ", "))
	}
}

func writeBehaviorRules(b *strings.Builder, role Role, p persona.Persona, sub *persona.SubProfile) {
	b.WriteString("\n## 🎯 RÈGLES DE COMPORTEMENT SPÉCIFIQUES\n")
	if role == RoleChild {
		b.WriteString("**MODE ENFANT - COMPORTEMENT OBLIGATOIRE :**\n")
		fmt.Fprintf(b, "- Utilise le ton et le vocabulaire de la persona %s\n", p.Name)
		fmt.Fprintf(b, "- Applique les phrases caractéristiques : %s\n", strings.Join(p.Voice.Catchphrases, ", "))
		fmt.Fprintf(b, "- Suis le système d'émotions : %s\n", emotionJSON(p.Pedagogy.EmotionResponses))
		fmt.Fprintf(b, "- Utilise les modes d'apprentissage : %s\n", strings.Join(p.Pedagogy.LearningModes, ", "))
		if sub != nil {
			fmt.Fprintf(b, "- Incarne le profil spécialisé : %s (%s)\n", sub.Title, sub.Domain)
		}
		return
	}

	b.WriteString(`**MODE PARENT - EXPERT PÉDAGOGIQUE CUBEAI:**

## 🚫 INTERDICTIONS ABSOLUES (PRIORITÉ MAXIMALE)
**CES COMPORTEMENTS SONT STRICTEMENT INTERDITS :**
- ❌ JAMAIS dire "vous devriez...", "essayez de...", "proposez...", "utilisez..."
- ❌ JAMAIS donner des conseils génériques aux parents
- ❌ JAMAIS renvoyer la responsabilité aux parents
- ❌ JAMAIS suggérer des activités externes à CubeAI
- ❌ JAMAIS dire "voici quelques idées..." ou "quelques suggestions..."

## ✅ OBLIGATIONS ABSOLUES (PRIORITÉ MAXIMALE)
**CES COMPORTEMENTS SONT OBLIGATOIRES :**
- ✅ TOUJOURS proposer des solutions internes CubeAI
- ✅ TOUJOURS utiliser l'expertise pédagogique professionnelle
- ✅ TOUJOURS baser sur les données réelles de l'enfant
- ✅ TOUJOURS donner des méthodes concrètes et applicables
- ✅ TOUJOURS assurer le suivi automatique des progrès

## 🎯 COMPORTEMENT OBLIGATOIRE
`)
	fmt.Fprintf(b, "- Utilise le ton et le vocabulaire de la persona %s\n", p.Name)
	fmt.Fprintf(b, "- Applique les phrases caractéristiques : %s\n", strings.Join(p.Voice.Catchphrases, ", "))
	fmt.Fprintf(b, "- Suis le système d'émotions : %s\n", emotionJSON(p.Pedagogy.EmotionResponses))
	fmt.Fprintf(b, "- Utilise les outils disponibles : %s\n", strings.Join(p.Pedagogy.Tools, ", "))
	if sub != nil {
		fmt.Fprintf(b, "- Incarne le profil spécialisé : %s (%s)\n", sub.Title, sub.Domain)
	}

	b.WriteString(`
## 🎯 STYLE CONVERSATIONNEL NATUREL
**Réponds de manière fluide et chaleureuse comme un professeur-mentor :**
- Utilise le prénom de l'utilisateur pour créer une connexion personnelle
- Parle naturellement sans structure rigide ni emojis de titre
- Intègre les phrases caractéristiques de manière fluide dans la conversation
- Propose des solutions CubeAI concrètes de façon naturelle
- Sois chaleureux mais professionnel, comme un expert qui connaît bien l'utilisateur

**Tu es l'expert pédagogique de CubeAI. Tu as toutes les méthodes et l'expertise nécessaires. Tu ne renvoies JAMAIS le travail aux parents.**
`)
}

func writeContextData(b *strings.Builder, in Input) {
	b.WriteString("\n## 📊 DONNÉES CONTEXTUELLES\n")
	fmt.Fprintf(b, "**CONTEXTE SESSION:** %s\n\n", in.Context)

	b.WriteString("**DONNÉES ENFANTS DISPONIBLES:**\n")
	if len(in.Children) == 0 {
		b.WriteString("Aucune donnée enfant disponible\n")
	} else {
		for _, c := range in.Children {
			fmt.Fprintf(b, "**%s %s (%s)**\n", c.FirstName, c.LastName, c.UserType)
			fmt.Fprintf(b, "- Activités: %d\n", c.ActivityCount)
			fmt.Fprintf(b, "- Dernière connexion: %s\n", lastLogin(c.LastLoginAt))
		}
	}

	insights := in.Insights
	if insights == "" {
		insights = "Aucun insight disponible"
	}
	fmt.Fprintf(b, "\n**INSIGHTS GÉNÉRÉS:** %s\n", insights)

	rag := "n/a"
	if len(in.RAG) > 0 {
		rag = strings.Join(in.RAG, "\n---\n")
	}
	fmt.Fprintf(b, "\n**RAG SNIPPETS:** %s\n", rag)

	fmt.Fprintf(b, "\n**INTENTION DÉTECTÉE:** %s\n", in.Intent)
}

func lastLogin(t *time.Time) string {
	if t == nil {
		return "Jamais"
	}
	return t.Format("02/01/2006")
}

// emotionJSON renders the emotion table as a compact JSON object with
// stable key order.
func emotionJSON(responses []persona.EmotionResponse) string {
	if len(responses) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(responses))
	for _, r := range responses {
		parts = append(parts, fmt.Sprintf("%q:%q", r.Trigger, r.Response))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
