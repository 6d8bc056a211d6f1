package agent

// Profile describes a tournament participant.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	Color       string `json:"color"`
	Style       string `json:"strategy"`
	Description string `json:"description"`
}

var roster = []Profile{
	{
		ID:          "chatgpt",
		Name:        "ChatGPT-4",
		ShortName:   "GPT-4",
		Color:       "#10a37f",
		Style:       "Adaptive Tit-for-Tat",
		Description: "OpenAI flagship model. Favors cooperation but retaliates against defection.",
	},
	{
		ID:          "claude",
		Name:        "Claude 3.5",
		ShortName:   "Claude",
		Color:       "#d4a574",
		Style:       "Forgiving Cooperator",
		Description: "Anthropic model. Highly cooperative, forgives occasional defections.",
	},
	{
		ID:          "gemini",
		Name:        "Gemini Ultra",
		ShortName:   "Gemini",
		Color:       "#4285f4",
		Style:       "Strategic Analyzer",
		Description: "Google model. Analyzes patterns to maximize long-term score.",
	},
	{
		ID:          "deepseek",
		Name:        "DeepSeek V3",
		ShortName:   "DeepSeek",
		Color:       "#7c3aed",
		Style:       "Game Theory Optimal",
		Description: "Chinese model. Uses advanced game theory for optimal play.",
	},
	{
		ID:          "llama",
		Name:        "Llama 3.1",
		ShortName:   "Llama",
		Color:       "#0668e1",
		Style:       "Random Cooperator",
		Description: "Meta model. Unpredictable with a cooperation bias.",
	},
	{
		ID:          "grok",
		Name:        "Grok-2",
		ShortName:   "Grok",
		Color:       "#1da1f2",
		Style:       "Aggressive Defector",
		Description: "xAI model. Plays aggressively, frequent defection.",
	},
}

// Roster returns a copy of the built-in participants in tournament order.
func Roster() []Profile {
	out := make([]Profile, len(roster))
	copy(out, roster)
	return out
}

// Find returns the profile with the given id from profiles.
func Find(profiles []Profile, id string) (Profile, bool) {
	for _, p := range profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}
