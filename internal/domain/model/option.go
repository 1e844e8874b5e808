package model

// OptionSiteTitle is the option holding the site name.
const OptionSiteTitle = "blogname"

type Option struct {
	Name  string `bson:"_id"`
	Value string `bson:"value"`
}
