package store

import "github.com/jonathan/devfolio/internal/types"

// Reduce applies action to doc and returns the next document. doc is never
// modified. handled is false, and doc itself is returned, when the action type
// is unknown or its payload has the wrong type. A handled action that matches
// no entry (for example deleting a missing id) still reports handled.
func Reduce(doc *types.Document, action Action) (next *types.Document, handled bool) {
	if doc == nil {
		return nil, false
	}

	switch action.Type {
	case ActionLogin:
		next = doc.Clone()
		next.IsAuthenticated = true

	case ActionLogout:
		next = doc.Clone()
		next.IsAuthenticated = false

	case ActionAddProject:
		p, ok := action.Payload.(types.Project)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		next.Projects = append(next.Projects, p.Clone())

	case ActionUpdateProject:
		p, ok := action.Payload.(types.Project)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		for i := range next.Projects {
			if next.Projects[i].ID == p.ID {
				next.Projects[i] = p.Clone()
			}
		}

	case ActionDeleteProject:
		id, ok := action.Payload.(string)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		next.Projects = removeByID(next.Projects, id, func(p types.Project) string { return p.ID })

	case ActionAddSkill:
		s, ok := action.Payload.(types.Skill)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		next.Skills = append(next.Skills, s)

	case ActionUpdateSkill:
		s, ok := action.Payload.(types.Skill)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		for i := range next.Skills {
			if next.Skills[i].ID == s.ID {
				next.Skills[i] = s
			}
		}

	case ActionDeleteSkill:
		id, ok := action.Payload.(string)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		next.Skills = removeByID(next.Skills, id, func(s types.Skill) string { return s.ID })

	case ActionUpdateProfile:
		patch, ok := action.Payload.(types.ProfilePatch)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		next.Profile = patch.Apply(next.Profile)

	case ActionChangePassword:
		password, ok := action.Payload.(string)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		next.AdminPassword = password

	case ActionUpdateSecuritySettings:
		settings, ok := action.Payload.(SecuritySettings)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		next.SecurityQuestion = settings.Question
		next.SecurityAnswer = settings.Answer

	case ActionUpdateTheme:
		theme, ok := action.Payload.(types.Theme)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		next.Theme = theme

	case ActionAddMessage:
		m, ok := action.Payload.(types.ContactMessage)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		next.Messages = append([]types.ContactMessage{m}, next.Messages...)

	case ActionDeleteMessage:
		id, ok := action.Payload.(string)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		next.Messages = removeByID(next.Messages, id, func(m types.ContactMessage) string { return m.ID })

	case ActionMarkMessageRead:
		id, ok := action.Payload.(string)
		if !ok {
			return doc, false
		}
		next = doc.Clone()
		for i := range next.Messages {
			if next.Messages[i].ID == id {
				next.Messages[i].Read = true
			}
		}

	default:
		return doc, false
	}

	return next, true
}

// removeByID returns items without the entries whose id matches. The result is
// never nil when items is non-nil, so an emptied list still encodes as [].
func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	if items == nil {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
