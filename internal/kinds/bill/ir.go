package bill

import "encoding/xml"

// IR is the deserialised shape of a bill package. It is produced only by a
// schema-validated parse; the mapper can rely on required fields being
// present and dates being parseable.
type IR struct {
	XMLName       xml.Name    `xml:"bill"`
	OfficialTitle string      `xml:"officialTitle"`
	Sponsors      []SponsorIR `xml:"sponsors>item"`
	Actions       []ActionIR  `xml:"actions>item"`
	TextVersions  []TextIR    `xml:"textVersions>item"`
}

// IRKind returns the kind code the IR belongs to.
func (*IR) IRKind() string { return Kind }

// SponsorIR is a sponsor descriptor as it appears in the source.
type SponsorIR struct {
	Name  string `xml:"name"`
	Party string `xml:"party"`
	State string `xml:"state"`
}

// ActionIR is an action descriptor as it appears in the source.
type ActionIR struct {
	Date    string `xml:"date"`
	Chamber string `xml:"chamber"`
	Text    string `xml:"text"`
}

// TextIR is one text segment of the bill body.
type TextIR struct {
	Format  string `xml:"format,attr"`
	Content string `xml:",chardata"`
}
