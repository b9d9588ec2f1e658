package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymxu/resumefill/internal/resume"
)

func docWith(entries ...resume.Entry) *resume.Document {
	return &resume.Document{Sections: []resume.Section{{
		Name:   "简历",
		Groups: []resume.Group{{Entries: entries}},
	}}}
}

func TestExtract_ScalarLastWriteWins(t *testing.T) {
	doc := docWith(
		resume.Entry{Label: "姓名", Value: "张三"},
		resume.Entry{Label: "姓名", Value: "李四"},
		resume.Entry{Label: "邮箱", Value: "a@b.cn"},
	)

	values := Extract(doc)
	assert.Equal(t, "李四", values[TypeName])
	assert.Equal(t, "a@b.cn", values[TypeEmail])
}

func TestExtract_ListTypesConcatenate(t *testing.T) {
	doc := docWith(
		resume.Entry{Label: "工作经历", Value: "腾讯后端"},
		resume.Entry{Label: "工作经验", Value: "字节网关"},
		resume.Entry{Label: "教育", Value: "清华本科"},
		resume.Entry{Label: "学历", Value: "计算机硕士"},
	)

	values := Extract(doc)
	assert.Equal(t, "腾讯后端\n\n字节网关", values[TypeExperience])
	assert.Equal(t, "清华本科\n\n计算机硕士", values[TypeEducation])
}

func TestExtract_EducationBackgroundGoesToEducation(t *testing.T) {
	doc := docWith(
		resume.Entry{Label: "教育经历", Value: "清华大学"},
	)

	values := Extract(doc)
	assert.Equal(t, "清华大学", values[TypeEducation])
	assert.NotContains(t, values, TypeExperience)
}

func TestExtract_SkillsJoinedWithSeparator(t *testing.T) {
	doc := docWith(
		resume.Entry{Label: "技能", Value: "Go"},
		resume.Entry{Label: "专业技能", Value: "Kubernetes"},
	)

	assert.Equal(t, "Go、Kubernetes", Extract(doc)[TypeSkill])
}

func TestExtract_SkipsUnmatchedAndEmpty(t *testing.T) {
	doc := docWith(
		resume.Entry{Label: "星座", Value: "射手"},
		resume.Entry{Label: "姓名", Value: ""},
		resume.Entry{Value: "无标签内容"},
	)

	require.Empty(t, Extract(doc))
}

func TestExtract_SpansSectionsAndGroups(t *testing.T) {
	doc := &resume.Document{Sections: []resume.Section{
		{Name: "基本", Groups: []resume.Group{{Entries: []resume.Entry{{Label: "电话", Value: "138"}}}}},
		{Name: "工作", Groups: []resume.Group{
			{Title: "腾讯", Entries: []resume.Entry{{Label: "工作经历", Value: "一段"}}},
			{Title: "字节", Entries: []resume.Entry{{Label: "工作经历", Value: "二段"}}},
		}},
	}}

	values := Extract(doc)
	assert.Equal(t, "138", values[TypePhone])
	assert.Equal(t, "一段\n\n二段", values[TypeExperience])
}
