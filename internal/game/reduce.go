package game

import "errors"

// Apply is the state transition function: given the current state and one
// action it returns the next state and any notifications the transition
// produced. Transitions are total: every action yields a defined next state,
// possibly identical to the input when the action is rejected or references
// an unknown id.
func Apply(s State, a Action) (State, []Note) {
	next := s.Clone()

	switch a := a.(type) {
	case SetCharacterName:
		next.Character.Name = a.Name
		return next, nil

	case GainXP:
		return applyXPGain(next, a.Amount)

	case IncreaseStat:
		updated, _, _, err := ApplyStatIncrease(next.Character, a.Stat)
		if errors.Is(err, ErrNoUnassignedPoints) {
			return s, []Note{warnf("No skill points available!")}
		}
		if err != nil {
			return s, nil
		}
		next.Character = updated
		return next, nil

	case SpendEnergy:
		updated, _, _, err := ApplyEnergySpend(next.Character, a.Amount)
		if errors.Is(err, ErrInsufficientEnergy) {
			return s, []Note{warnf("Not enough energy!")}
		}
		if err != nil {
			return s, nil
		}
		next.Character = updated
		return next, nil

	case RestoreEnergy:
		updated, _, _, err := ApplyEnergyRestore(next.Character, a.Amount)
		if err != nil {
			return s, nil
		}
		next.Character = updated
		return next, nil

	case EarnTokens:
		updated, _, _, err := ApplyTokensEarn(next.Character, a.Amount)
		if err != nil {
			return s, nil
		}
		next.Character = updated
		return next, nil

	case SpendTokens:
		updated, _, _, err := ApplyTokensSpend(next.Character, a.Amount)
		if errors.Is(err, ErrInsufficientTokens) {
			return s, []Note{warnf("Not enough tokens!")}
		}
		if err != nil {
			return s, nil
		}
		next.Character = updated
		return next, nil

	case UnlockTechnique:
		idx := next.techniqueIndex(a.TechniqueID)
		if idx < 0 {
			return s, nil
		}
		next.Techniques[idx].Unlocked = true
		next.Techniques[idx].Level = 1
		if !next.Character.HasTechnique(a.TechniqueID) {
			next.Character.UnlockedTechniques = append(next.Character.UnlockedTechniques, a.TechniqueID)
		}
		return next, nil

	case UpgradeTechnique:
		idx := next.techniqueIndex(a.TechniqueID)
		if idx < 0 || next.Techniques[idx].Level >= next.Techniques[idx].MaxLevel {
			return s, nil
		}
		next.Techniques[idx].Level++
		return next, nil

	case UnlockCore:
		idx := next.coreIndex(a.CoreID)
		if idx < 0 {
			return s, nil
		}
		next.Cores[idx].Unlocked = true
		return next, []Note{successf("New LLM Core unlocked: %s!", next.Cores[idx].Name)}

	case SetActiveCore:
		next.ActiveCore = a.CoreID
		return next, nil

	case UpdatePromptConfig:
		next.PromptConfig = a.Patch.Merge(next.PromptConfig)
		return next, nil

	case SetCurrentPrompt:
		next.CurrentPrompt = a.Text
		return next, nil

	case SetResponse:
		next.LastResponse = a.Text
		return next, nil

	case StartQuest:
		next.Character.ActiveQuest = a.QuestID
		return next, nil

	case CompleteQuest:
		return applyCompleteQuest(s, next, a.QuestID)

	case AdvanceTutorial:
		next.Tutorial.CurrentStep++
		return next, nil

	case CompleteTutorial:
		next.Tutorial.Completed = true
		next.Phase = PhaseMain
		return next, nil

	case SetGamePhase:
		next.Phase = a.Phase
		return next, nil
	}

	return s, nil
}

func applyXPGain(next State, amount int) (State, []Note) {
	updated, leveled, err := ApplyXPGain(next.Character, amount)
	if err != nil {
		return next, nil
	}
	next.Character = updated
	if !leveled {
		return next, nil
	}

	// A new level can satisfy level-gated quest requirements.
	for i := range next.Quests {
		if levelRequirementMet(next.Quests[i], updated.Level) {
			next.Quests[i].Available = true
		}
	}
	return next, []Note{successf("Level Up! You are now level %d!", updated.Level)}
}

func levelRequirementMet(q Quest, level int) bool {
	for _, req := range q.Requirements {
		if lr, ok := req.(LevelRequirement); ok {
			return level >= lr.Min
		}
	}
	return false
}

// applyCompleteQuest finishes a quest as one atomic transition: mark it
// completed, fold its rewards back through Apply in declaration order, then
// make quests gated on it available. Unknown or already-completed quests
// are a no-op, so rewards can never be applied twice.
func applyCompleteQuest(prev, next State, questID string) (State, []Note) {
	idx := next.questIndex(questID)
	if idx < 0 || next.Quests[idx].Completed {
		return prev, nil
	}

	next.Quests[idx].Completed = true
	if !next.Character.HasCompletedQuest(questID) {
		next.Character.CompletedQuests = append(next.Character.CompletedQuests, questID)
	}
	if next.Character.ActiveQuest == questID {
		next.Character.ActiveQuest = ""
	}

	notes := []Note{successf("Quest Completed: %s!", next.Quests[idx].Name)}

	for _, reward := range next.Quests[idx].Rewards {
		if action, ok := rewardAction(reward); ok {
			var rewardNotes []Note
			next, rewardNotes = Apply(next, action)
			notes = append(notes, rewardNotes...)
			continue
		}
		if boost, ok := reward.(StatBoostReward); ok && boost.Stat.IsValid() && boost.Amount > 0 {
			next.Character.Stats = next.Character.Stats.WithIncrement(boost.Stat, boost.Amount)
		}
	}

	for i := range next.Quests {
		if questRequirementMet(next.Quests[i], questID) {
			next.Quests[i].Available = true
		}
	}

	return next, notes
}

// rewardAction maps a reward onto the action that grants it. Stat boosts
// have no standalone action and are applied inline by the caller.
func rewardAction(r Reward) (Action, bool) {
	switch r := r.(type) {
	case XPReward:
		return GainXP{Amount: r.Amount}, true
	case TokenReward:
		return EarnTokens{Amount: r.Amount}, true
	case TechniqueReward:
		return UnlockTechnique{TechniqueID: r.TechniqueID}, true
	case CoreReward:
		return UnlockCore{CoreID: r.CoreID}, true
	default:
		return nil, false
	}
}

func questRequirementMet(q Quest, completedID string) bool {
	for _, req := range q.Requirements {
		if qr, ok := req.(QuestRequirement); ok && qr.QuestID == completedID {
			return true
		}
	}
	return false
}
