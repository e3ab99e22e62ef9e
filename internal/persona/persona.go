// Package persona holds the static catalog of Bubix personas, subject
// sub-profiles and pedagogical method descriptors, plus the lookup rules
// that pick them for a given user and query.
package persona

// UserType selects which persona variant answers.
type UserType string

const (
	UserTypeChild  UserType = "CHILD"
	UserTypeParent UserType = "PARENT"
	UserTypePublic UserType = "PUBLIC"
)

// Kind identifies a top-level persona variant.
type Kind string

const (
	KindKid    Kind = "kid"
	KindPro    Kind = "pro"
	KindPublic Kind = "public"
)

// Voice describes how a persona speaks.
type Voice struct {
	Tone         string
	Vocabulary   string
	Catchphrases []string
}

// EmotionResponse maps a detected user emotion to the persona's reaction.
// Order is fixed so prompt output is deterministic.
type EmotionResponse struct {
	Trigger  string // onStress, onSuccess, onConcern...
	Response string
}

// Pedagogy describes a persona's teaching approach. A persona defines
// either LearningModes (kid) or Tools (pro, public), never both.
type Pedagogy struct {
	Style            string
	LearningModes    []string
	Tools            []string
	EmotionResponses []EmotionResponse
}

// Persona is a fixed bundle of identity, voice and pedagogy rules.
type Persona struct {
	Kind        Kind
	Name        string
	Description string
	Traits      []string
	Voice       Voice
	Pedagogy    Pedagogy
	Modes       []string
}

// SubProfile is a subject specialization layered on top of a persona when
// the user's query matches one of its domain keywords.
type SubProfile struct {
	Key         string
	Title       string
	Domain      string
	Style       string
	SampleLine  string
	AgeRange    string
	Specialties []string
}

// Method is a named CubeAI pedagogical method descriptor.
type Method struct {
	Name        string
	Description string
	Technique   string
	Target      string
}
