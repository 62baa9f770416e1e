package core

// Tag is a loose label attached to a component. The constants below
// are the suggested vocabulary; anything else is kept verbatim as a
// custom tag.
type Tag string

const (
	TagBuilding      Tag = "building"
	TagCombat        Tag = "combat"
	TagCompatibility Tag = "compatibility"
	TagDimensions    Tag = "dimensions"
	TagFarming       Tag = "farming"
	TagGear          Tag = "gear"
	TagLibrary       Tag = "library"
	TagMobs          Tag = "mobs"
	TagOverworld     Tag = "overworld"
	TagPerformance   Tag = "performance"
	TagProgression   Tag = "progression"
	TagQol           Tag = "qol"
	TagStorage       Tag = "storage"
	TagTechnology    Tag = "technology"
	TagVisual        Tag = "visual"
	TagWildlife      Tag = "wildlife"
)

func (t Tag) String() string {
	return string(t)
}

// TagInformation groups a component's main tag with its secondary
// ones. The main tag decides which subfolder a metadata record is
// first saved to; the others are purely informational.
type TagInformation struct {
	Main   *Tag  `yaml:"main,omitempty"`
	Others []Tag `yaml:"others,omitempty"`
}

func Untagged() TagInformation {
	return TagInformation{}
}
