package action

import (
	"slices"
	"strings"

	"github.com/NikitaCOEUR/scriptcomplete/internal/buffer"
	"github.com/NikitaCOEUR/scriptcomplete/internal/logger"
	"github.com/NikitaCOEUR/scriptcomplete/internal/snippet"
	"github.com/sahilm/fuzzy"
)

// Insert is a statically registered text block
type Insert struct {
	Name string
	Text string
}

// Catalog assembles the candidate list for a cursor context. It keeps the
// static sources only; every Build starts from the buffer as it is now.
type Catalog struct {
	registry     *snippet.Registry
	words        []string
	inserts      []Insert
	filterInsert bool
	log          *logger.Logger
}

// Option configures a Catalog
type Option func(*Catalog)

// WithWords registers word completion targets
func WithWords(words ...string) Option {
	return func(c *Catalog) {
		for _, w := range words {
			if w != "" && !slices.Contains(c.words, w) {
				c.words = append(c.words, w)
			}
		}
	}
}

// WithInserts registers text insertions
func WithInserts(inserts ...Insert) Option {
	return func(c *Catalog) {
		c.inserts = append(c.inserts, inserts...)
	}
}

// WithInsertFiltering offers text inserts only when their name fuzzy
// matches the word under the caret (all of them when there is no word)
func WithInsertFiltering(enabled bool) Option {
	return func(c *Catalog) {
		c.filterInsert = enabled
	}
}

// WithLogger sets the logger
func WithLogger(log *logger.Logger) Option {
	return func(c *Catalog) {
		c.log = log
	}
}

// NewCatalog creates a catalog over registry
func NewCatalog(registry *snippet.Registry, opts ...Option) *Catalog {
	c := &Catalog{
		registry:     registry,
		filterInsert: true,
		log:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Build returns word actions, then text inserts, then the dynamic snippet
// actions of the first matching trigger rule
func (c *Catalog) Build(buf buffer.Buffer) []Action {
	word := buffer.CurrentWord(buf)

	actions := make([]Action, 0, len(c.words)+len(c.inserts)+3)
	actions = append(actions, c.wordActions(word)...)
	actions = append(actions, c.insertActions(word)...)

	rule, names := c.registry.Candidates(buf.CurrentLine(), buf.Caret())
	if rule != nil {
		c.log.Debug().
			Str("rule", rule.Name()).
			Strs("candidates", names).
			Msg("Trigger matched")
		for _, name := range names {
			actions = append(actions, &DynamicSnippet{Rule: rule, Candidate: name})
		}
	}

	c.log.Debug().
		Str("word", word).
		Int("actions", len(actions)).
		Msg("Built actions")

	return actions
}

func (c *Catalog) wordActions(word string) []Action {
	if word == "" {
		return nil
	}
	lower := strings.ToLower(word)

	var out []Action
	for _, target := range c.words {
		if len(target) > len(word) && strings.HasPrefix(strings.ToLower(target), lower) {
			out = append(out, &WordExtend{Target: target})
		}
	}
	return out
}

func (c *Catalog) insertActions(word string) []Action {
	if len(c.inserts) == 0 {
		return nil
	}

	keep := make([]bool, len(c.inserts))
	if !c.filterInsert || word == "" {
		for i := range keep {
			keep[i] = true
		}
	} else {
		names := make([]string, len(c.inserts))
		for i, ins := range c.inserts {
			names[i] = ins.Name
		}
		for _, match := range fuzzyFind(word, names) {
			keep[match.Index] = true
		}
	}

	var out []Action
	for i, ins := range c.inserts {
		if keep[i] {
			out = append(out, &TextInsert{Name: ins.Name, Text: ins.Text})
		}
	}
	return out
}

// Execute runs actions[index] against buf. An index outside the list is a
// cancelled pick and does nothing. The returned bool reports whether an
// action ran.
func (c *Catalog) Execute(buf buffer.Buffer, actions []Action, index int) (bool, error) {
	if index < 0 || index >= len(actions) {
		c.log.Debug().Int("index", index).Msg("Selection cancelled")
		return false, nil
	}
	a := actions[index]

	if d, ok := a.(*DynamicSnippet); ok && !d.Applicable(buf) {
		c.log.Info().
			Str("rule", d.Rule.Name()).
			Str("candidate", d.Candidate).
			Msg("Trigger no longer matches, nothing to expand")
		return false, nil
	}

	if err := a.Execute(buf); err != nil {
		c.log.Error().
			Str("candidate", a.DisplayName()).
			Err(err).
			Msg("Action failed")
		return false, err
	}

	c.log.Debug().Str("candidate", a.DisplayName()).Msg("Executed action")
	return true, nil
}

// Names returns the display names of actions
func Names(actions []Action) []string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.DisplayName()
	}
	return names
}

// Index returns the position of the action named name, or -1
func Index(actions []Action, name string) int {
	for i, a := range actions {
		if a.DisplayName() == name {
			return i
		}
	}
	return -1
}

// Filter keeps the actions whose display name fuzzy matches query, in
// their original order. An empty query keeps everything.
func Filter(actions []Action, query string) []Action {
	if query == "" {
		return actions
	}

	matches := fuzzyFind(query, Names(actions))
	idx := make([]int, 0, len(matches))
	for _, m := range matches {
		idx = append(idx, m.Index)
	}
	slices.Sort(idx)

	out := make([]Action, 0, len(idx))
	for _, i := range idx {
		out = append(out, actions[i])
	}
	return out
}

// fuzzyFind matches case-insensitively
func fuzzyFind(pattern string, names []string) fuzzy.Matches {
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}
	return fuzzy.Find(strings.ToLower(pattern), lowered)
}
