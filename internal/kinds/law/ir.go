package law

import "encoding/xml"

// IR is the deserialised shape of a public law package.
type IR struct {
	XMLName  xml.Name    `xml:"law"`
	Title    string      `xml:"title"`
	Enacted  string      `xml:"enacted"`
	Sections []SectionIR `xml:"sections>section"`
}

// IRKind returns the kind code the IR belongs to.
func (*IR) IRKind() string { return Kind }

// SectionIR is one section of the law text.
type SectionIR struct {
	Number string `xml:"number,attr"`
	Text   string `xml:",chardata"`
}
