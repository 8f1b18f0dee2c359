// Package store holds the in-memory document and applies actions to it.
package store

import "github.com/jonathan/devfolio/internal/types"

// ActionType names one of the closed set of document transitions.
type ActionType string

// Action types accepted by Reduce.
const (
	ActionLogin                  ActionType = "LOGIN"
	ActionLogout                 ActionType = "LOGOUT"
	ActionAddProject             ActionType = "ADD_PROJECT"
	ActionUpdateProject          ActionType = "UPDATE_PROJECT"
	ActionDeleteProject          ActionType = "DELETE_PROJECT"
	ActionAddSkill               ActionType = "ADD_SKILL"
	ActionUpdateSkill            ActionType = "UPDATE_SKILL"
	ActionDeleteSkill            ActionType = "DELETE_SKILL"
	ActionUpdateProfile          ActionType = "UPDATE_PROFILE"
	ActionChangePassword         ActionType = "CHANGE_PASSWORD"
	ActionUpdateSecuritySettings ActionType = "UPDATE_SECURITY_SETTINGS"
	ActionUpdateTheme            ActionType = "UPDATE_THEME"
	ActionAddMessage             ActionType = "ADD_MESSAGE"
	ActionDeleteMessage          ActionType = "DELETE_MESSAGE"
	ActionMarkMessageRead        ActionType = "MARK_MESSAGE_READ"
)

// Action is a named transition with its payload.
//
// Payload types by action:
//
//	LOGIN, LOGOUT                                   nil
//	ADD_PROJECT, UPDATE_PROJECT                     types.Project
//	ADD_SKILL, UPDATE_SKILL                         types.Skill
//	UPDATE_PROFILE                                  types.ProfilePatch
//	CHANGE_PASSWORD                                 string
//	UPDATE_SECURITY_SETTINGS                        SecuritySettings
//	UPDATE_THEME                                    types.Theme
//	ADD_MESSAGE                                     types.ContactMessage
//	DELETE_PROJECT, DELETE_SKILL, DELETE_MESSAGE,
//	MARK_MESSAGE_READ                               string (entry id)
type Action struct {
	Type    ActionType
	Payload any
}

// SecuritySettings is the UPDATE_SECURITY_SETTINGS payload.
type SecuritySettings struct {
	Question string
	Answer   string
}

// Login marks the session as authenticated.
func Login() Action { return Action{Type: ActionLogin} }

// Logout clears the authenticated flag.
func Logout() Action { return Action{Type: ActionLogout} }

// AddProject appends a project.
func AddProject(p types.Project) Action { return Action{Type: ActionAddProject, Payload: p} }

// UpdateProject replaces the project with the same id.
func UpdateProject(p types.Project) Action { return Action{Type: ActionUpdateProject, Payload: p} }

// DeleteProject removes the project with the given id.
func DeleteProject(id string) Action { return Action{Type: ActionDeleteProject, Payload: id} }

// AddSkill appends a skill.
func AddSkill(s types.Skill) Action { return Action{Type: ActionAddSkill, Payload: s} }

// UpdateSkill replaces the skill with the same id.
func UpdateSkill(s types.Skill) Action { return Action{Type: ActionUpdateSkill, Payload: s} }

// DeleteSkill removes the skill with the given id.
func DeleteSkill(id string) Action { return Action{Type: ActionDeleteSkill, Payload: id} }

// UpdateProfile shallow-merges patch onto the profile.
func UpdateProfile(patch types.ProfilePatch) Action {
	return Action{Type: ActionUpdateProfile, Payload: patch}
}

// ChangePassword sets a new admin password.
func ChangePassword(password string) Action {
	return Action{Type: ActionChangePassword, Payload: password}
}

// UpdateSecuritySettings replaces the recovery question and answer.
func UpdateSecuritySettings(question, answer string) Action {
	return Action{Type: ActionUpdateSecuritySettings, Payload: SecuritySettings{Question: question, Answer: answer}}
}

// UpdateTheme replaces the whole theme.
func UpdateTheme(t types.Theme) Action { return Action{Type: ActionUpdateTheme, Payload: t} }

// AddMessage prepends a contact message.
func AddMessage(m types.ContactMessage) Action { return Action{Type: ActionAddMessage, Payload: m} }

// DeleteMessage removes the message with the given id.
func DeleteMessage(id string) Action { return Action{Type: ActionDeleteMessage, Payload: id} }

// MarkMessageRead sets the read flag on the message with the given id.
func MarkMessageRead(id string) Action { return Action{Type: ActionMarkMessageRead, Payload: id} }
