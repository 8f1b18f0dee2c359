package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/devfolio/internal/types"
)

func testDoc() *types.Document {
	doc := types.DefaultDocument()
	doc.Messages = []types.ContactMessage{
		{ID: "m1", Name: "Sam", Email: "sam@example.com", Message: "hi", Date: "2024-01-01T00:00:00Z"},
	}
	return doc
}

func TestReduce_Pure(t *testing.T) {
	actions := []Action{
		Login(),
		Logout(),
		AddProject(types.Project{ID: "new", Title: "New", Description: "d", Technologies: []string{"Go"}}),
		UpdateProject(types.Project{ID: "1", Title: "Renamed", Description: "d"}),
		DeleteProject("1"),
		AddSkill(types.Skill{ID: "s", Name: "Go", Category: types.CategoryTechnical, Level: 80}),
		UpdateSkill(types.Skill{ID: "1", Name: "SQL!", Category: types.CategoryTechnical, Level: 99}),
		DeleteSkill("1"),
		UpdateProfile(types.ProfilePatch{Name: types.StringPtr("Jordan")}),
		ChangePassword("newpass"),
		UpdateSecuritySettings("Pet?", "Rex"),
		UpdateTheme(types.Theme{PrimaryColor: "#ff0000", BackgroundColor: "#000000", CardColor: "#111111", TextColor: "#ffffff"}),
		AddMessage(types.ContactMessage{ID: "m2", Name: "Kim"}),
		DeleteMessage("m1"),
		MarkMessageRead("m1"),
	}

	for _, action := range actions {
		t.Run(string(action.Type), func(t *testing.T) {
			doc := testDoc()
			before := doc.Clone()

			first, handled := Reduce(doc, action)
			require.True(t, handled)
			second, _ := Reduce(doc, action)

			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("Reduce not deterministic (-first +second):\n%s", diff)
			}
			if diff := cmp.Diff(before, doc); diff != "" {
				t.Errorf("Reduce modified its input (-before +after):\n%s", diff)
			}
		})
	}
}

func TestReduce_UnknownAction(t *testing.T) {
	doc := testDoc()
	next, handled := Reduce(doc, Action{Type: "EXPLODE"})

	assert.False(t, handled)
	assert.Same(t, doc, next)
}

func TestReduce_MistypedPayload(t *testing.T) {
	tests := []Action{
		{Type: ActionAddProject, Payload: "not a project"},
		{Type: ActionUpdateSkill, Payload: 42},
		{Type: ActionDeleteMessage, Payload: 7},
		{Type: ActionUpdateProfile, Payload: types.Profile{}},
		{Type: ActionChangePassword, Payload: nil},
		{Type: ActionUpdateSecuritySettings, Payload: map[string]string{"question": "q"}},
		{Type: ActionUpdateTheme, Payload: &types.Theme{}},
	}

	for _, action := range tests {
		t.Run(string(action.Type), func(t *testing.T) {
			doc := testDoc()
			next, handled := Reduce(doc, action)
			assert.False(t, handled)
			assert.Same(t, doc, next)
		})
	}
}

func TestReduce_NilDocument(t *testing.T) {
	next, handled := Reduce(nil, Login())
	assert.Nil(t, next)
	assert.False(t, handled)
}

func TestReduce_LoginLogout(t *testing.T) {
	doc, _ := Reduce(testDoc(), Login())
	assert.True(t, doc.IsAuthenticated)

	doc, _ = Reduce(doc, Logout())
	assert.False(t, doc.IsAuthenticated)
}

func TestReduce_AddProjectAppends(t *testing.T) {
	doc := testDoc()
	n := len(doc.Projects)

	next, _ := Reduce(doc, AddProject(types.Project{ID: "new", Title: "New"}))
	require.Len(t, next.Projects, n+1)
	assert.Equal(t, "new", next.Projects[n].ID)
}

func TestReduce_UpdateProjectPreservesOrder(t *testing.T) {
	doc := testDoc()
	target := doc.Projects[1]
	target.Title = "Updated"

	next, handled := Reduce(doc, UpdateProject(target))
	require.True(t, handled)

	want := doc.Clone()
	want.Projects[1] = target
	if diff := cmp.Diff(want.Projects, next.Projects); diff != "" {
		t.Errorf("projects mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce_DeleteMissingIDIsNoOp(t *testing.T) {
	doc := testDoc()

	next, handled := Reduce(doc, DeleteProject("does-not-exist"))
	assert.True(t, handled)
	if diff := cmp.Diff(doc.Projects, next.Projects); diff != "" {
		t.Errorf("projects changed (-want +got):\n%s", diff)
	}

	next, _ = Reduce(doc, DeleteSkill("does-not-exist"))
	assert.Equal(t, doc.Skills, next.Skills)
}

func TestReduce_DeleteProject(t *testing.T) {
	doc := testDoc()
	id := doc.Projects[0].ID

	next, _ := Reduce(doc, DeleteProject(id))
	assert.Len(t, next.Projects, len(doc.Projects)-1)
	_, found := next.FindProject(id)
	assert.False(t, found)
}

func TestReduce_SkillCRUD(t *testing.T) {
	doc := testDoc()
	skill := types.Skill{ID: "go", Name: "Go", Category: types.CategoryTechnical, Level: 70}

	doc, _ = Reduce(doc, AddSkill(skill))
	got, ok := doc.FindSkill("go")
	require.True(t, ok)
	assert.Equal(t, skill, got)

	skill.Level = 90
	doc, _ = Reduce(doc, UpdateSkill(skill))
	got, _ = doc.FindSkill("go")
	assert.Equal(t, 90, got.Level)

	doc, _ = Reduce(doc, DeleteSkill("go"))
	_, ok = doc.FindSkill("go")
	assert.False(t, ok)
}

func TestReduce_UpdateProfileShallowMerge(t *testing.T) {
	doc := testDoc()
	newExperience := []types.Experience{{ID: "x", Role: "CTO", Company: "Startup", Period: "2024", Description: "d"}}

	next, _ := Reduce(doc, UpdateProfile(types.ProfilePatch{
		Bio:        types.StringPtr("New bio"),
		Experience: &newExperience,
	}))

	assert.Equal(t, "New bio", next.Profile.Bio)
	assert.Equal(t, doc.Profile.Name, next.Profile.Name)
	assert.Equal(t, newExperience, next.Profile.Experience)
	assert.Equal(t, doc.Profile.Education, next.Profile.Education)
}

func TestReduce_AuthFields(t *testing.T) {
	doc, _ := Reduce(testDoc(), ChangePassword("hunter2"))
	assert.Equal(t, "hunter2", doc.AdminPassword)

	doc, _ = Reduce(doc, UpdateSecuritySettings("First pet?", "Rex"))
	assert.Equal(t, "First pet?", doc.SecurityQuestion)
	assert.Equal(t, "Rex", doc.SecurityAnswer)
}

func TestReduce_UpdateThemeReplaces(t *testing.T) {
	theme := types.Theme{PrimaryColor: "#ff0000", BackgroundColor: "#000000", CardColor: "#111111", TextColor: "#ffffff"}
	doc, _ := Reduce(testDoc(), UpdateTheme(theme))
	assert.Equal(t, theme, doc.Theme)
}

func TestReduce_AddMessagePrepends(t *testing.T) {
	doc := testDoc()
	doc.Messages = []types.ContactMessage{}

	doc, _ = Reduce(doc, AddMessage(types.ContactMessage{ID: "first"}))
	doc, _ = Reduce(doc, AddMessage(types.ContactMessage{ID: "second"}))

	require.Len(t, doc.Messages, 2)
	assert.Equal(t, "second", doc.Messages[0].ID)
	assert.Equal(t, "first", doc.Messages[1].ID)
}

func TestReduce_MessageReadAndDelete(t *testing.T) {
	doc := testDoc()

	doc, _ = Reduce(doc, MarkMessageRead("m1"))
	assert.True(t, doc.Messages[0].Read)
	assert.Equal(t, 0, doc.UnreadCount())

	doc, _ = Reduce(doc, DeleteMessage("m1"))
	assert.NotNil(t, doc.Messages)
	assert.Empty(t, doc.Messages)
}

func TestReduce_NoAliasing(t *testing.T) {
	doc := testDoc()
	p := types.Project{ID: "alias", Title: "t", Technologies: []string{"Go"}}

	next, _ := Reduce(doc, AddProject(p))
	p.Technologies[0] = "Rust"

	got, ok := next.FindProject("alias")
	require.True(t, ok)
	assert.Equal(t, []string{"Go"}, got.Technologies)
}
