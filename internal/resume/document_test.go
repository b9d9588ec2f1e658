package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymxu/resumefill/internal/common"
)

func sampleDoc() *Document {
	return &Document{Sections: []Section{
		{
			Name: "基本信息",
			Groups: []Group{
				{Entries: []Entry{{Label: "姓名", Value: "张三"}}},
			},
		},
		{
			Name: "教育",
			Groups: []Group{
				{Title: "本科", Entries: []Entry{{Label: "学校", Value: "清华"}}},
			},
		},
	}}
}

func TestAddSection(t *testing.T) {
	d := &Document{}

	require.NoError(t, d.AddSection("技能", ""))
	require.NoError(t, d.AddSection("项目", "开源"))

	require.Len(t, d.Sections, 2)
	assert.Equal(t, "技能", d.Sections[0].Name)
	require.Len(t, d.Sections[0].Groups, 1)
	assert.Equal(t, "", d.Sections[0].Groups[0].Title)
	assert.Equal(t, "开源", d.Sections[1].Groups[0].Title)
}

func TestAddSection_RequiresName(t *testing.T) {
	d := &Document{}
	err := d.AddSection("   ", "g")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, d.Sections)
}

func TestAddEntry_NoSpecificGroup(t *testing.T) {
	d := sampleDoc()

	// -1 reuses the section's first group.
	require.NoError(t, d.AddEntry(0, -1, Entry{Label: "电话", Value: "13800138000"}))
	assert.Len(t, d.Sections[0].Groups[0].Entries, 2)

	// -1 creates an untitled group when the section has none.
	require.NoError(t, d.AddSection("空模块", ""))
	d.Sections[2].Groups = nil
	require.NoError(t, d.AddEntry(2, -1, Entry{Value: "内容"}))
	require.Len(t, d.Sections[2].Groups, 1)
	assert.Equal(t, "", d.Sections[2].Groups[0].Title)
}

func TestAddEntry_RejectsEmpty(t *testing.T) {
	d := sampleDoc()
	err := d.AddEntry(0, 0, Entry{Label: "  ", Value: "\n"})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestAddEntry_UnknownSection(t *testing.T) {
	d := sampleDoc()
	err := d.AddEntry(9, 0, Entry{Value: "x"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEditEntry(t *testing.T) {
	d := sampleDoc()

	require.NoError(t, d.EditEntry(0, 0, 0, "姓名", "李四"))
	assert.Equal(t, "李四", d.Sections[0].Groups[0].Entries[0].Value)

	assert.ErrorIs(t, d.EditEntry(0, 0, 5, "x", "y"), common.ErrNotFound)
	assert.ErrorIs(t, d.EditEntry(0, 0, 0, "", ""), common.ErrValidation)
}

func TestDeleteEntry_PrunesUntitledGroup(t *testing.T) {
	d := sampleDoc()

	require.NoError(t, d.DeleteEntry(0, 0, 0))
	assert.Empty(t, d.Sections[0].Groups, "untitled group must disappear with its last entry")
}

func TestDeleteEntry_KeepsTitledGroup(t *testing.T) {
	d := sampleDoc()

	require.NoError(t, d.DeleteEntry(1, 0, 0))
	require.Len(t, d.Sections[1].Groups, 1, "titled group survives empty")
	assert.Empty(t, d.Sections[1].Groups[0].Entries)
}

func TestDeleteSection(t *testing.T) {
	d := sampleDoc()

	require.NoError(t, d.DeleteSection(0))
	require.Len(t, d.Sections, 1)
	assert.Equal(t, "教育", d.Sections[0].Name)

	assert.ErrorIs(t, d.DeleteSection(7), common.ErrNotFound)
}

func TestAppendGroup(t *testing.T) {
	d := &Document{}

	d.AppendGroup("A", "", []Entry{{Value: "1"}})
	d.AppendGroup("A", "g", []Entry{{Value: "2"}})
	d.AppendGroup("A", "g", []Entry{{Value: "3"}})
	d.AppendGroup("", "", []Entry{{Value: "4"}})
	d.AppendGroup("B", "", nil) // dropped

	require.Len(t, d.Sections, 2)
	assert.Equal(t, "A", d.Sections[0].Name)
	assert.Len(t, d.Sections[0].Groups, 3, "same (section, title) stays separate groups")
	assert.Equal(t, DefaultSectionName, d.Sections[1].Name)
}
