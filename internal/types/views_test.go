//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_FeaturedAndSkillLimits(t *testing.T) {
	doc := DefaultDocument()
	for i := 0; i < 5; i++ {
		doc.Projects = append(doc.Projects, Project{ID: fmt.Sprintf("f%d", i), Featured: true})
		doc.Skills = append(doc.Skills, Skill{ID: fmt.Sprintf("s%d", i), Name: "x", Category: CategoryTools, Level: 10})
	}

	home := doc.Home()
	require.Len(t, home.FeaturedProjects, 3)
	assert.Equal(t, "1", home.FeaturedProjects[0].ID)
	assert.Equal(t, "2", home.FeaturedProjects[1].ID)
	assert.Equal(t, "f0", home.FeaturedProjects[2].ID)
	assert.Len(t, home.Skills, 10)
}

func TestHome_HidesResumePayload(t *testing.T) {
	doc := DefaultDocument()
	doc.Profile.ResumeURL = "data:application/pdf;base64,AAAA"

	assert.Equal(t, "/resume", doc.Home().Profile.ResumeURL)
	assert.Equal(t, "data:application/pdf;base64,AAAA", doc.Profile.ResumeURL)
}

func TestProjectList_Filter(t *testing.T) {
	doc := DefaultDocument()

	all := doc.ProjectList("")
	assert.Len(t, all.Projects, 3)
	assert.Equal(t, "Python", all.Technologies[0])
	assert.Contains(t, all.Technologies, "BigQuery")

	sql := doc.ProjectList("SQL")
	require.Len(t, sql.Projects, 2)
	assert.Equal(t, "2", sql.Projects[0].ID)
	assert.Equal(t, "3", sql.Projects[1].ID)

	none := doc.ProjectList("COBOL")
	assert.Empty(t, none.Projects)
}

func TestAbout_GroupsByCategory(t *testing.T) {
	about := DefaultDocument().About()

	require.Len(t, about.SkillGroups, 3)
	assert.Equal(t, CategoryTechnical, about.SkillGroups[0].Category)
	assert.Len(t, about.SkillGroups[0].Skills, 4)
	assert.Equal(t, CategoryTools, about.SkillGroups[1].Category)
	assert.Equal(t, CategorySoft, about.SkillGroups[2].Category)
}

func TestContact(t *testing.T) {
	doc := DefaultDocument()
	c := doc.Contact()
	assert.Equal(t, doc.Profile.ContactIntro, c.Intro)
	assert.Equal(t, "alex.data@example.com", c.Email)
}

func TestContact_DefaultIntro(t *testing.T) {
	doc := DefaultDocument()
	doc.Profile.ContactIntro = ""

	assert.Equal(t, DefaultContactIntro, doc.Contact().Intro)
	assert.Empty(t, doc.Profile.ContactIntro, "fallback is not written back")
}
