package corpus

import (
	"fmt"
	"os"

	"soundkey-be/internal/entity"
	"soundkey-be/pkg/notation"

	"gopkg.in/yaml.v3"
)

// Corpus is the full set of chords and scales the query engine reads from.
type Corpus struct {
	ScaleGroups []*entity.ScaleGroup  `yaml:"scale_groups"`
	Scales      []*entity.ScaleRecord `yaml:"scales"`
	Chords      []*entity.ChordRecord `yaml:"chords"`
}

// Generate builds the stock corpus: every chord and scale template on each
// of the 12 roots. Chord notes come from spelling the generated symbol so
// stored rows always round-trip through the parser.
func Generate(parser notation.Notation) (*Corpus, error) {
	c := &Corpus{
		ScaleGroups: make([]*entity.ScaleGroup, len(scaleGroups)),
	}
	groupNames := make(map[int]string, len(scaleGroups))
	for i, g := range scaleGroups {
		c.ScaleGroups[i] = &entity.ScaleGroup{Id: g.Id, Name: g.Name}
		groupNames[g.Id] = g.Name
	}

	for _, root := range entity.Alphabet {
		for _, tmpl := range chordTemplates {
			symbol := string(root) + tmpl.Suffix
			chord, err := parser.ChordFromSymbol(symbol)
			if err != nil {
				return nil, fmt.Errorf("failed to spell %s: %w", symbol, err)
			}
			rec := &entity.ChordRecord{
				Symbol:   symbol,
				Name:     tmpl.Name,
				Root:     root,
				Category: tmpl.Category,
				Notes:    entity.RotateFromRoot(chord.Pitches(), root),
			}
			if tmpl.Triad != nil {
				base := string(root) + *tmpl.Triad
				rec.TriadBase = &base
			}
			c.Chords = append(c.Chords, rec)
		}

		for _, tmpl := range scaleTemplates() {
			notes := make([]entity.PitchClass, len(tmpl.Intervals))
			for i, interval := range tmpl.Intervals {
				notes[i] = root.Transpose(interval)
			}
			c.Scales = append(c.Scales, &entity.ScaleRecord{
				Name:      tmpl.Name,
				Root:      root,
				GroupId:   tmpl.GroupId,
				GroupName: groupNames[tmpl.GroupId],
				Notes:     entity.RotateFromRoot(notes, root),
			})
		}
	}
	return c, nil
}

// Load reads a corpus from a YAML file.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML corpus data and validates it.
func Parse(data []byte) (*Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse corpus YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal renders the corpus as YAML, the format Load reads.
func (c *Corpus) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes the corpus to path as YAML.
func (c *Corpus) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks that every note is canonical, every object contains its
// root and every scale points at a known group.
func (c *Corpus) Validate() error {
	groups := make(map[int]string, len(c.ScaleGroups))
	for _, g := range c.ScaleGroups {
		groups[g.Id] = g.Name
	}

	for _, ch := range c.Chords {
		if err := validateNotes(ch.Symbol, ch.Root, ch.Notes); err != nil {
			return err
		}
	}
	for _, s := range c.Scales {
		label := string(s.Root) + " " + s.Name
		if err := validateNotes(label, s.Root, s.Notes); err != nil {
			return err
		}
		name, ok := groups[s.GroupId]
		if !ok {
			return fmt.Errorf("scale %s: unknown group %d", label, s.GroupId)
		}
		if s.GroupName == "" {
			s.GroupName = name
		}
	}
	return nil
}

func validateNotes(label string, root entity.PitchClass, notes []entity.PitchClass) error {
	if !root.IsValid() {
		return fmt.Errorf("%s: invalid root %q", label, root)
	}
	if len(notes) == 0 {
		return fmt.Errorf("%s: no notes", label)
	}
	hasRoot := false
	for _, n := range notes {
		if !n.IsValid() {
			return fmt.Errorf("%s: invalid note %q", label, n)
		}
		if n == root {
			hasRoot = true
		}
	}
	if !hasRoot {
		return fmt.Errorf("%s: root %s missing from notes", label, root)
	}
	return nil
}
