package importer

// role is what a column holds.
type role int

const (
	roleName role = iota
	roleEnabled
	roleList
	roleRequired
)

// Profile describes a header layout. Header cells are matched against the
// accepted names case-insensitively.
type Profile struct {
	Name     string
	Kind     Kind
	Columns  map[role][]string
	Required []role
}

var (
	enabledNames  = []string{"enabled", "active", "habilitado", "activo"}
	requiredNames = []string{"required", "obligatorio"}
)

// profiles are tried in order, so layouts with more required columns come
// first.
var profiles = []Profile{
	{
		Name: "tag lists",
		Kind: KindTags,
		Columns: map[role][]string{
			roleList:     {"list", "tag list", "level", "lista", "nivel"},
			roleName:     {"tag", "name", "etiqueta", "nombre"},
			roleEnabled:  enabledNames,
			roleRequired: requiredNames,
		},
		Required: []role{roleList, roleName},
	},
	{
		Name: "tags",
		Kind: KindTags,
		Columns: map[role][]string{
			roleName:    {"tag", "etiqueta"},
			roleEnabled: enabledNames,
		},
		Required: []role{roleName},
	},
	{
		Name: "categories",
		Kind: KindCategories,
		Columns: map[role][]string{
			roleName:    {"category", "name", "categoría", "categoria", "nombre"},
			roleEnabled: enabledNames,
		},
		Required: []role{roleName},
	},
}

// defaultTagList names the single list of a file without a list column.
const defaultTagList = "Tag"
