package journal

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/awerner/promptquest/internal/errors"
	"github.com/awerner/promptquest/internal/game"
)

// CharacterRenamedPayload captures the payload for character.renamed events.
type CharacterRenamedPayload struct {
	Name string `json:"name"`
}

// XPGainedPayload captures the payload for character.xp_gained events.
type XPGainedPayload struct {
	Amount int `json:"amount"`
}

// StatIncreasedPayload captures the payload for character.stat_increased events.
type StatIncreasedPayload struct {
	Stat string `json:"stat"`
}

// EnergyChangedPayload captures the payload for energy_spent and
// energy_restored events.
type EnergyChangedPayload struct {
	Amount int `json:"amount"`
}

// TokensChangedPayload captures the payload for tokens_earned and
// tokens_spent events.
type TokensChangedPayload struct {
	Amount int `json:"amount"`
}

// TechniquePayload captures the payload for technique.unlocked and
// technique.upgraded events.
type TechniquePayload struct {
	TechniqueID string `json:"technique_id"`
}

// CorePayload captures the payload for core.unlocked and core.activated
// events.
type CorePayload struct {
	CoreID string `json:"core_id"`
}

// ConfigUpdatedPayload captures the payload for prompt.config_updated events.
type ConfigUpdatedPayload struct {
	Patch game.PromptConfigPatch `json:"patch"`
}

// TextPayload captures the payload for prompt.text_set and
// prompt.response_set events.
type TextPayload struct {
	Text string `json:"text"`
}

// QuestPayload captures the payload for quest.started and quest.completed
// events.
type QuestPayload struct {
	QuestID string `json:"quest_id"`
}

// PhaseSetPayload captures the payload for game.phase_set events.
type PhaseSetPayload struct {
	Phase string `json:"phase"`
}

// EncodeAction converts a game action into its event type and JSON payload.
func EncodeAction(a game.Action) (Type, []byte, error) {
	var (
		typ     Type
		payload any
	)

	switch act := a.(type) {
	case game.SetCharacterName:
		typ, payload = TypeCharacterRenamed, CharacterRenamedPayload{Name: act.Name}
	case game.GainXP:
		typ, payload = TypeXPGained, XPGainedPayload{Amount: act.Amount}
	case game.IncreaseStat:
		typ, payload = TypeStatIncreased, StatIncreasedPayload{Stat: string(act.Stat)}
	case game.SpendEnergy:
		typ, payload = TypeEnergySpent, EnergyChangedPayload{Amount: act.Amount}
	case game.RestoreEnergy:
		typ, payload = TypeEnergyRestored, EnergyChangedPayload{Amount: act.Amount}
	case game.EarnTokens:
		typ, payload = TypeTokensEarned, TokensChangedPayload{Amount: act.Amount}
	case game.SpendTokens:
		typ, payload = TypeTokensSpent, TokensChangedPayload{Amount: act.Amount}
	case game.UnlockTechnique:
		typ, payload = TypeTechniqueUnlocked, TechniquePayload{TechniqueID: act.TechniqueID}
	case game.UpgradeTechnique:
		typ, payload = TypeTechniqueUpgraded, TechniquePayload{TechniqueID: act.TechniqueID}
	case game.UnlockCore:
		typ, payload = TypeCoreUnlocked, CorePayload{CoreID: act.CoreID}
	case game.SetActiveCore:
		typ, payload = TypeCoreActivated, CorePayload{CoreID: act.CoreID}
	case game.UpdatePromptConfig:
		typ, payload = TypeConfigUpdated, ConfigUpdatedPayload{Patch: act.Patch}
	case game.SetCurrentPrompt:
		typ, payload = TypePromptSet, TextPayload{Text: act.Text}
	case game.SetResponse:
		typ, payload = TypeResponseSet, TextPayload{Text: act.Text}
	case game.StartQuest:
		typ, payload = TypeQuestStarted, QuestPayload{QuestID: act.QuestID}
	case game.CompleteQuest:
		typ, payload = TypeQuestCompleted, QuestPayload{QuestID: act.QuestID}
	case game.AdvanceTutorial:
		return TypeTutorialAdvanced, nil, nil
	case game.CompleteTutorial:
		return TypeTutorialCompleted, nil, nil
	case game.SetGamePhase:
		typ, payload = TypePhaseSet, PhaseSetPayload{Phase: string(act.Phase)}
	default:
		return "", nil, apperrors.New(apperrors.CodeJournalUnknownEvent,
			fmt.Sprintf("no event type for action %T", a))
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.CodeJournalUnknownEvent,
			"encode event payload", err)
	}
	return typ, raw, nil
}

// DecodeAction converts an event type and JSON payload back into the game
// action it was encoded from.
func DecodeAction(typ Type, payloadJSON []byte) (game.Action, error) {
	decode := func(v any) error {
		if len(payloadJSON) == 0 {
			return nil
		}
		return json.Unmarshal(payloadJSON, v)
	}

	switch typ {
	case TypeCharacterRenamed:
		var p CharacterRenamedPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.SetCharacterName{Name: p.Name}, nil
	case TypeXPGained:
		var p XPGainedPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.GainXP{Amount: p.Amount}, nil
	case TypeStatIncreased:
		var p StatIncreasedPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.IncreaseStat{Stat: game.Stat(p.Stat)}, nil
	case TypeEnergySpent:
		var p EnergyChangedPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.SpendEnergy{Amount: p.Amount}, nil
	case TypeEnergyRestored:
		var p EnergyChangedPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.RestoreEnergy{Amount: p.Amount}, nil
	case TypeTokensEarned:
		var p TokensChangedPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.EarnTokens{Amount: p.Amount}, nil
	case TypeTokensSpent:
		var p TokensChangedPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.SpendTokens{Amount: p.Amount}, nil
	case TypeTechniqueUnlocked:
		var p TechniquePayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.UnlockTechnique{TechniqueID: p.TechniqueID}, nil
	case TypeTechniqueUpgraded:
		var p TechniquePayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.UpgradeTechnique{TechniqueID: p.TechniqueID}, nil
	case TypeCoreUnlocked:
		var p CorePayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.UnlockCore{CoreID: p.CoreID}, nil
	case TypeCoreActivated:
		var p CorePayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.SetActiveCore{CoreID: p.CoreID}, nil
	case TypeConfigUpdated:
		var p ConfigUpdatedPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.UpdatePromptConfig{Patch: p.Patch}, nil
	case TypePromptSet:
		var p TextPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.SetCurrentPrompt{Text: p.Text}, nil
	case TypeResponseSet:
		var p TextPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.SetResponse{Text: p.Text}, nil
	case TypeQuestStarted:
		var p QuestPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.StartQuest{QuestID: p.QuestID}, nil
	case TypeQuestCompleted:
		var p QuestPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.CompleteQuest{QuestID: p.QuestID}, nil
	case TypeTutorialAdvanced:
		return game.AdvanceTutorial{}, nil
	case TypeTutorialCompleted:
		return game.CompleteTutorial{}, nil
	case TypePhaseSet:
		var p PhaseSetPayload
		if err := decode(&p); err != nil {
			return nil, decodeError(typ, err)
		}
		return game.SetGamePhase{Phase: game.Phase(p.Phase)}, nil
	default:
		return nil, apperrors.New(apperrors.CodeJournalUnknownEvent,
			fmt.Sprintf("unknown event type %q", typ))
	}
}

func decodeError(typ Type, err error) error {
	return apperrors.Wrap(apperrors.CodeJournalUnknownEvent,
		fmt.Sprintf("decode %s payload", typ), err)
}
