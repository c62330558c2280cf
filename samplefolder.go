package runfolder

import "encoding/xml"

// Samplefolder is one <samplefolder> child of a runfolder. Its content model
// is defined elsewhere in the setup schema, so it is carried opaquely: every
// attribute and the raw inner XML survive a decode/encode round trip intact.
type Samplefolder struct {
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",innerxml"`
}

// NewSamplefolder returns a samplefolder carrying attrs as given, namespaces
// included. A namespaced attribute is written with the prefix the runfolder
// declares for its Space (see Runfolder.DeclareNamespace).
func NewSamplefolder(attrs ...xml.Attr) Samplefolder {
	if len(attrs) == 0 {
		return Samplefolder{}
	}

	return Samplefolder{Attrs: append([]xml.Attr(nil), attrs...)}
}

// Attr returns the value of the first attribute whose local name matches.
// Decoded prefixed attributes are named "prefix:local".
func (s Samplefolder) Attr(local string) (string, bool) {
	for _, a := range s.Attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}

	return "", false
}

// SetAttr returns a copy of s with the attribute set. The attribute slice is
// never modified in place, since copies of a Samplefolder share it.
func (s Samplefolder) SetAttr(local, value string) Samplefolder {
	attrs := make([]xml.Attr, 0, len(s.Attrs)+1)
	found := false
	for _, a := range s.Attrs {
		if a.Name.Local == local && !found {
			a.Value = value
			found = true
		}
		attrs = append(attrs, a)
	}
	if !found {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: local}, Value: value})
	}
	s.Attrs = attrs

	return s
}

// Inner returns the raw XML between <samplefolder> and </samplefolder>.
func (s Samplefolder) Inner() string {
	return s.Content
}
