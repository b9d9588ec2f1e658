// Package fields maps free-text descriptions of form fields and resume
// entry labels onto a fixed set of semantic field types.
package fields

// Type is one of the canonical semantic field categories.
type Type string

const (
	TypeName         Type = "name"
	TypePhone        Type = "phone"
	TypeEmail        Type = "email"
	TypeAddress      Type = "address"
	TypeCompany      Type = "company"
	TypePosition     Type = "position"
	TypeExperience   Type = "experience"
	TypeEducation    Type = "education"
	TypeSkill        Type = "skill"
	TypeIntroduction Type = "introduction"
)

// Order is the fixed priority in which types are tried during keyword
// identification. Earlier types win when a field's text matches several.
var Order = []Type{
	TypeName,
	TypePhone,
	TypeEmail,
	TypeAddress,
	TypeCompany,
	TypePosition,
	TypeExperience,
	TypeEducation,
	TypeSkill,
	TypeIntroduction,
}

// keywordSet holds the match vocabulary for one type. Keywords are matched
// as case-insensitive substrings against field attributes and against
// resume entry labels alike. Autocomplete tokens are only consulted for
// DOM fields carrying an autocomplete attribute.
type keywordSet struct {
	keywords     []string
	autocomplete []string
}

// taxonomy is the single keyword table shared by DOM-field identification
// and entry-label matching. Keeping one table keeps the two sides'
// type coverage identical by construction.
var taxonomy = map[Type]keywordSet{
	TypeName: {
		keywords:     []string{"name", "姓名", "真实姓名", "fullname", "full-name", "user-name", "username"},
		autocomplete: []string{"name", "given-name", "family-name"},
	},
	TypePhone: {
		keywords:     []string{"phone", "tel", "mobile", "电话", "手机", "联系电话", "手机号", "手机号码", "telephone"},
		autocomplete: []string{"tel", "tel-national", "tel-country-code"},
	},
	TypeEmail: {
		keywords:     []string{"email", "e-mail", "mail", "邮箱", "邮件", "电子邮箱", "email-address"},
		autocomplete: []string{"email"},
	},
	TypeAddress: {
		keywords:     []string{"address", "地址", "住址", "居住地址", "详细地址", "street", "street-address"},
		autocomplete: []string{"street-address", "address-line1", "address-line2"},
	},
	TypeCompany: {
		keywords:     []string{"company", "公司", "单位", "工作单位", "employer", "organization", "org"},
		autocomplete: []string{"organization"},
	},
	TypePosition: {
		keywords:     []string{"position", "job", "title", "职位", "岗位", "职务", "job-title", "jobtitle"},
		autocomplete: []string{"organization-title"},
	},
	TypeExperience: {
		keywords: []string{"experience", "工作经历", "工作经验", "work-experience", "workexperience", "工作履历"},
	},
	TypeEducation: {
		keywords: []string{"education", "教育", "学历", "毕业院校", "学校", "school", "university", "college"},
	},
	TypeSkill: {
		keywords: []string{"skill", "技能", "专业技能", "能力", "skills", "abilities"},
	},
	TypeIntroduction: {
		keywords: []string{"introduction", "介绍", "简介", "自我介绍", "个人简介", "描述", "description", "about", "bio", "biography"},
	},
}

// Valid reports whether t is one of the canonical types.
func Valid(t Type) bool {
	_, ok := taxonomy[t]
	return ok
}

// Keywords returns the keyword list for a type. The slice must not be
// mutated by callers.
func Keywords(t Type) []string {
	return taxonomy[t].keywords
}

// AutocompleteTokens returns the autocomplete allow-list for a type.
func AutocompleteTokens(t Type) []string {
	return taxonomy[t].autocomplete
}
