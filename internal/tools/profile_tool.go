package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/profile"
)

// ProfileTool reads and updates the persistent learning profile.
type ProfileTool struct {
	store       profile.Store
	defaultUser string
}

// NewProfileTool creates the tool over the given store. defaultUser is
// used when a call omits user_id.
func NewProfileTool(store profile.Store, defaultUser string) *ProfileTool {
	return &ProfileTool{store: store, defaultUser: defaultUser}
}

func (t *ProfileTool) Name() string { return "knowledge_profile_manager" }

func (t *ProfileTool) Description() string {
	return `Manages user learning progress and state. Use this tool to:
- Read the user's current learning profile (action='read')
- Update progress after completing a module (action='update', requires skill, module_title, score)
- Get a summary of the user's overall progress (action='get_summary')

Always use this tool before generating a quiz to check current progress.`
}

var profileArgsSchema = &llm.Schema{
	Name:        "knowledge-profile-args",
	Description: "Arguments for the knowledge profile manager",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"action": map[string]any{
				"type":        "string",
				"description": "Action to perform: 'read', 'update', or 'get_summary'",
			},
			"user_id": map[string]any{
				"type":        "string",
				"description": "User identifier. Omit for the current user.",
			},
			"skill": map[string]any{
				"type":        "string",
				"description": "Skill name for updates",
			},
			"module_title": map[string]any{
				"type":        "string",
				"description": "Module title for updates",
			},
			"score": map[string]any{
				"type":        "number",
				"description": "Mastery score (0-100) for updates",
			},
		},
		"required":             []any{"action"},
		"additionalProperties": false,
	},
}

func (t *ProfileTool) ArgsSchema() *llm.Schema { return profileArgsSchema }

type profileArgs struct {
	Action      string   `json:"action"`
	UserID      string   `json:"user_id"`
	Skill       string   `json:"skill"`
	ModuleTitle string   `json:"module_title"`
	Score       *float64 `json:"score"`
}

func (t *ProfileTool) Call(ctx context.Context, raw json.RawMessage) (string, error) {
	var args profileArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", fmt.Errorf("decode arguments: %w", err)
	}
	if args.UserID == "" {
		args.UserID = t.defaultUser
	}

	p, err := t.store.Load(ctx, args.UserID)
	if err != nil {
		return "", fmt.Errorf("load profile: %w", err)
	}

	switch args.Action {
	case "read":
		return profile.FormatProfile(p), nil

	case "update":
		if args.Skill == "" || args.ModuleTitle == "" || args.Score == nil {
			return "Error: update action requires skill, module_title, and score", nil
		}
		if err := p.RecordCompletion(args.Skill, args.ModuleTitle, *args.Score); err != nil {
			return "", fmt.Errorf("record completion: %w", err)
		}
		if err := t.store.Save(ctx, p); err != nil {
			return "", fmt.Errorf("save profile: %w", err)
		}
		return fmt.Sprintf(
			"Profile updated successfully!\nModule: %s\nScore: %.1f%%\nTotal modules completed: %d\nOverall average: %.1f%%",
			args.ModuleTitle, *args.Score, p.TotalModulesCompleted, p.OverallAvgScore,
		), nil

	case "get_summary":
		return profile.FormatSummary(p), nil

	default:
		return fmt.Sprintf("Error: Unknown action %q. Use 'read', 'update', or 'get_summary'", args.Action), nil
	}
}
