package runfolder

// Namespace is the target namespace of the setup schema.
const Namespace = "setup.xml.molmed"

// Unbounded is the MaxOccurs of an element with maxOccurs="unbounded".
const Unbounded = -1

// ElementRule maps one Runfolder field to its child element.
type ElementRule struct {
	Field     string
	Element   string
	Order     int
	MinOccurs int
	MaxOccurs int
}

// ContentModel describes the children an element may hold, in sequence.
type ContentModel struct {
	Namespace string
	Root      string
	Elements  []ElementRule
}

// Schema is the runfolder content model:
//
//	<xs:sequence>
//	  <xs:element name="report" type="xs:string"/>
//	  <xs:element ref="samplefolder" maxOccurs="unbounded"/>
//	</xs:sequence>
//
// The codec and the validate package both read element names from here, so a
// schema change is made in this table.
var Schema = ContentModel{
	Namespace: Namespace,
	Root:      "runfolder",
	Elements: []ElementRule{
		{Field: "Report", Element: "report", Order: 0, MinOccurs: 1, MaxOccurs: 1},
		{Field: "Samplefolders", Element: "samplefolder", Order: 1, MinOccurs: 1, MaxOccurs: Unbounded},
	},
}

// Rule returns the rule for the named child element.
func (c ContentModel) Rule(element string) (ElementRule, bool) {
	for _, r := range c.Elements {
		if r.Element == element {
			return r, true
		}
	}

	return ElementRule{}, false
}

func (c ContentModel) mustRule(field string) ElementRule {
	for _, r := range c.Elements {
		if r.Field == field {
			return r
		}
	}

	panic("runfolder: no schema rule for field " + field)
}
