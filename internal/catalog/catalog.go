package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	apperrors "github.com/awerner/promptquest/internal/errors"
	"github.com/awerner/promptquest/internal/game"
)

//go:embed data/cores.yaml
var coresYAML []byte

//go:embed data/techniques.yaml
var techniquesYAML []byte

//go:embed data/quests.yaml
var questsYAML []byte

// Catalog is the decoded, validated game content.
type Catalog struct {
	Cores      []game.LLMCore
	Techniques []game.Technique
	Quests     []game.Quest
}

var (
	loadOnce        sync.Once
	embeddedCatalog Catalog
	loadError       error
)

type coreYAML struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Description    string  `yaml:"description"`
	BaseCost       int     `yaml:"base_cost"`
	BaseAccuracy   float64 `yaml:"base_accuracy"`
	Hallucination  float64 `yaml:"hallucination"`
	CreativityBias float64 `yaml:"creativity_bias"`
	LogicBias      float64 `yaml:"logic_bias"`
	Unlocked       bool    `yaml:"unlocked"`
	Icon           string  `yaml:"icon"`
}

type techniqueYAML struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Level       int    `yaml:"level"`
	MaxLevel    int    `yaml:"max_level"`
	EnergyCost  int    `yaml:"energy_cost"`
	Unlocked    bool   `yaml:"unlocked"`
	Icon        string `yaml:"icon"`
}

type requirementYAML struct {
	Type   string `yaml:"type"`
	Target string `yaml:"target"`
	Value  int    `yaml:"value"`
}

type rewardYAML struct {
	Type   string `yaml:"type"`
	Target string `yaml:"target"`
	Value  int    `yaml:"value"`
}

type questYAML struct {
	ID              string            `yaml:"id"`
	Name            string            `yaml:"name"`
	Description     string            `yaml:"description"`
	Type            string            `yaml:"type"`
	Difficulty      string            `yaml:"difficulty"`
	Objective       string            `yaml:"objective"`
	Requirements    []requirementYAML `yaml:"requirements"`
	Rewards         []rewardYAML      `yaml:"rewards"`
	Available       bool              `yaml:"available"`
	PromptTemplate  string            `yaml:"prompt_template"`
	ExpectedOutcome string            `yaml:"expected_outcome"`
	Hints           []string          `yaml:"hints"`
}

// Load returns the embedded catalog, decoding and validating it on first
// use. The returned collections are fresh copies.
func Load() (Catalog, error) {
	loadOnce.Do(func() {
		embeddedCatalog, loadError = loadEmbedded()
	})
	if loadError != nil {
		return Catalog{}, loadError
	}
	return copyCatalog(embeddedCatalog), nil
}

func loadEmbedded() (Catalog, error) {
	cores, err := decodeCores(coresYAML)
	if err != nil {
		return Catalog{}, err
	}
	techniques, err := decodeTechniques(techniquesYAML)
	if err != nil {
		return Catalog{}, err
	}
	quests, err := decodeQuests(questsYAML, cores, techniques)
	if err != nil {
		return Catalog{}, err
	}
	return Catalog{Cores: cores, Techniques: techniques, Quests: quests}, nil
}

func decodeCores(raw []byte) ([]game.LLMCore, error) {
	var doc struct {
		Cores []coreYAML `yaml:"cores"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogInvalidValue, "decode cores", err)
	}

	seen := make(map[string]struct{}, len(doc.Cores))
	cores := make([]game.LLMCore, 0, len(doc.Cores))
	for _, c := range doc.Cores {
		id := strings.TrimSpace(c.ID)
		if id == "" || strings.TrimSpace(c.Name) == "" {
			return nil, apperrors.New(apperrors.CodeCatalogInvalidValue,
				"core id and name are required")
		}
		if _, dup := seen[id]; dup {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogDuplicateID,
				"duplicate core id", map[string]string{"id": id})
		}
		seen[id] = struct{}{}

		for field, v := range map[string]float64{
			"base_accuracy":   c.BaseAccuracy,
			"hallucination":   c.Hallucination,
			"creativity_bias": c.CreativityBias,
			"logic_bias":      c.LogicBias,
		} {
			if v < 0 || v > 1 {
				return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidValue,
					fmt.Sprintf("core %s must stay within [0, 1]", field),
					map[string]string{"id": id, "value": fmt.Sprintf("%v", v)})
			}
		}
		if c.BaseCost < 0 {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidValue,
				"core base_cost must not be negative", map[string]string{"id": id})
		}

		cores = append(cores, game.LLMCore{
			ID:             id,
			Name:           c.Name,
			Description:    c.Description,
			BaseCost:       c.BaseCost,
			BaseAccuracy:   c.BaseAccuracy,
			Hallucination:  c.Hallucination,
			CreativityBias: c.CreativityBias,
			LogicBias:      c.LogicBias,
			Unlocked:       c.Unlocked,
			Icon:           c.Icon,
		})
	}
	return cores, nil
}

func decodeTechniques(raw []byte) ([]game.Technique, error) {
	var doc struct {
		Techniques []techniqueYAML `yaml:"techniques"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogInvalidValue, "decode techniques", err)
	}

	seen := make(map[string]struct{}, len(doc.Techniques))
	techniques := make([]game.Technique, 0, len(doc.Techniques))
	for _, t := range doc.Techniques {
		id := strings.TrimSpace(t.ID)
		if id == "" || strings.TrimSpace(t.Name) == "" {
			return nil, apperrors.New(apperrors.CodeCatalogInvalidValue,
				"technique id and name are required")
		}
		if _, dup := seen[id]; dup {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogDuplicateID,
				"duplicate technique id", map[string]string{"id": id})
		}
		seen[id] = struct{}{}

		if t.MaxLevel < 1 || t.Level < 0 || t.Level > t.MaxLevel {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidValue,
				"technique levels out of range", map[string]string{"id": id})
		}
		if t.EnergyCost < 0 {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidValue,
				"technique energy_cost must not be negative", map[string]string{"id": id})
		}

		techniques = append(techniques, game.Technique{
			ID:          id,
			Name:        t.Name,
			Description: t.Description,
			Level:       t.Level,
			MaxLevel:    t.MaxLevel,
			EnergyCost:  t.EnergyCost,
			Unlocked:    t.Unlocked,
			Icon:        t.Icon,
		})
	}
	return techniques, nil
}

func decodeQuests(raw []byte, cores []game.LLMCore, techniques []game.Technique) ([]game.Quest, error) {
	var doc struct {
		Quests []questYAML `yaml:"quests"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogInvalidValue, "decode quests", err)
	}

	coreIDs := make(map[string]struct{}, len(cores))
	for _, c := range cores {
		coreIDs[c.ID] = struct{}{}
	}
	techniqueIDs := make(map[string]struct{}, len(techniques))
	for _, t := range techniques {
		techniqueIDs[t.ID] = struct{}{}
	}
	questIDs := make(map[string]struct{}, len(doc.Quests))
	for _, q := range doc.Quests {
		questIDs[strings.TrimSpace(q.ID)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(doc.Quests))
	quests := make([]game.Quest, 0, len(doc.Quests))
	for _, q := range doc.Quests {
		id := strings.TrimSpace(q.ID)
		if id == "" || strings.TrimSpace(q.Name) == "" {
			return nil, apperrors.New(apperrors.CodeCatalogInvalidValue,
				"quest id and name are required")
		}
		if _, dup := seen[id]; dup {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogDuplicateID,
				"duplicate quest id", map[string]string{"id": id})
		}
		seen[id] = struct{}{}

		questType := game.QuestType(q.Type)
		if !questType.IsValid() {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidValue,
				"unknown quest type", map[string]string{"id": id, "type": q.Type})
		}
		difficulty := game.Difficulty(q.Difficulty)
		if !difficulty.IsValid() {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidValue,
				"unknown quest difficulty", map[string]string{"id": id, "difficulty": q.Difficulty})
		}

		requirements := make([]game.Requirement, 0, len(q.Requirements))
		for _, r := range q.Requirements {
			req, err := parseRequirement(id, r, questIDs, techniqueIDs)
			if err != nil {
				return nil, err
			}
			requirements = append(requirements, req)
		}

		rewards := make([]game.Reward, 0, len(q.Rewards))
		for _, r := range q.Rewards {
			reward, err := parseReward(id, r, coreIDs, techniqueIDs)
			if err != nil {
				return nil, err
			}
			rewards = append(rewards, reward)
		}

		quests = append(quests, game.Quest{
			ID:             id,
			Name:           q.Name,
			Description:    q.Description,
			Type:           questType,
			Difficulty:     difficulty,
			Objective:      q.Objective,
			Requirements:   requirements,
			Rewards:        rewards,
			Available:      q.Available,
			PromptTemplate: q.PromptTemplate,
			Outcome:        game.ParseOutcome(q.ExpectedOutcome),
			Hints:          append([]string(nil), q.Hints...),
		})
	}
	return quests, nil
}

func parseRequirement(questID string, r requirementYAML, questIDs, techniqueIDs map[string]struct{}) (game.Requirement, error) {
	switch r.Type {
	case "level":
		if r.Value < 1 {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidValue,
				"level requirement needs a positive value", map[string]string{"quest": questID})
		}
		return game.LevelRequirement{Min: r.Value}, nil
	case "stat":
		stat := game.Stat(r.Target)
		if !statKnown(stat) {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogUnknownReference,
				"stat requirement names an unknown stat",
				map[string]string{"quest": questID, "stat": r.Target})
		}
		return game.StatRequirement{Stat: stat, Min: r.Value}, nil
	case "technique":
		if _, ok := techniqueIDs[r.Target]; !ok {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogUnknownReference,
				"technique requirement names an unknown technique",
				map[string]string{"quest": questID, "technique": r.Target})
		}
		return game.TechniqueRequirement{TechniqueID: r.Target}, nil
	case "quest":
		if _, ok := questIDs[r.Target]; !ok {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogUnknownReference,
				"quest requirement names an unknown quest",
				map[string]string{"quest": questID, "target": r.Target})
		}
		return game.QuestRequirement{QuestID: r.Target}, nil
	default:
		return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidValue,
			"unknown requirement type", map[string]string{"quest": questID, "type": r.Type})
	}
}

func parseReward(questID string, r rewardYAML, coreIDs, techniqueIDs map[string]struct{}) (game.Reward, error) {
	switch r.Type {
	case "xp":
		if r.Value < 1 {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidValue,
				"xp reward needs a positive value", map[string]string{"quest": questID})
		}
		return game.XPReward{Amount: r.Value}, nil
	case "tokens":
		if r.Value < 1 {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidValue,
				"token reward needs a positive value", map[string]string{"quest": questID})
		}
		return game.TokenReward{Amount: r.Value}, nil
	case "technique":
		if _, ok := techniqueIDs[r.Target]; !ok {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogUnknownReference,
				"technique reward names an unknown technique",
				map[string]string{"quest": questID, "technique": r.Target})
		}
		return game.TechniqueReward{TechniqueID: r.Target}, nil
	case "core":
		if _, ok := coreIDs[r.Target]; !ok {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogUnknownReference,
				"core reward names an unknown core",
				map[string]string{"quest": questID, "core": r.Target})
		}
		return game.CoreReward{CoreID: r.Target}, nil
	case "stat_boost":
		stat := game.Stat(r.Target)
		if !statKnown(stat) {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogUnknownReference,
				"stat boost names an unknown stat",
				map[string]string{"quest": questID, "stat": r.Target})
		}
		if r.Value < 1 {
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidValue,
				"stat boost needs a positive value", map[string]string{"quest": questID})
		}
		return game.StatBoostReward{Stat: stat, Amount: r.Value}, nil
	default:
		return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidValue,
			"unknown reward type", map[string]string{"quest": questID, "type": r.Type})
	}
}

func statKnown(stat game.Stat) bool {
	for _, s := range game.AllStats {
		if s == stat {
			return true
		}
	}
	return false
}

func copyCatalog(source Catalog) Catalog {
	out := Catalog{
		Cores:      append([]game.LLMCore(nil), source.Cores...),
		Techniques: append([]game.Technique(nil), source.Techniques...),
		Quests:     append([]game.Quest(nil), source.Quests...),
	}
	return out
}
