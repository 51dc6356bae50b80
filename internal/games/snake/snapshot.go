package snake

// Snapshot captures the complete game state for determinism testing and
// the headless simulator's report.
type Snapshot struct {
	Tick     uint64 `yaml:"tick"`
	Score    int    `yaml:"score"`
	SnakeLen int    `yaml:"snake_len"`
	HeadX    int    `yaml:"head_x"`
	HeadY    int    `yaml:"head_y"`
	Heading  string `yaml:"heading"`
	FoodX    int    `yaml:"food_x"`
	FoodY    int    `yaml:"food_y"`
	Phase    string `yaml:"phase"`
	Outcome  string `yaml:"outcome"`
	Policy   string `yaml:"policy"`
	Paused   bool   `yaml:"paused"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	head := s.Body.Head()
	return Snapshot{
		Tick:     s.Tick,
		Score:    s.Score,
		SnakeLen: s.Body.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Heading:  s.Router.Active().String(),
		FoodX:    s.Food.X,
		FoodY:    s.Food.Y,
		Phase:    s.Phase.String(),
		Outcome:  s.Last.String(),
		Policy:   g.settings.Policy.String(),
		Paused:   g.paused,
	}
}
