package runfolder

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

var (
	ErrUnexpectedElement = errors.New("unexpected element")
	ErrReportUnset       = errors.New("report is required but unset")
)

// MarshalXML writes r as <runfolder xmlns="setup.xml.molmed">, children in
// schema order. An unset report is omitted rather than written empty.
func (r *Runfolder) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{
		Name: xml.Name{Space: Schema.Namespace, Local: Schema.Root},
		Attr: r.startAttrs(),
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if report, ok := r.Report(); ok {
		el := xml.StartElement{Name: xml.Name{Local: Schema.mustRule("Report").Element}}
		if err := e.EncodeElement(report, el); err != nil {
			return err
		}
	}

	sfName := xml.Name{Local: Schema.mustRule("Samplefolders").Element}
	for _, sf := range r.Samplefolders().items {
		sf.Attrs = r.encodeAttrs(sf.Attrs)
		if err := e.EncodeElement(sf, xml.StartElement{Name: sfName}); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// UnmarshalXML fills r from a <runfolder> element in any namespace. The
// report is set and samplefolders are appended in document order. Prefix
// declarations on the element are kept so they can be written back.
// Children the schema does not know, including those in a namespace other
// than the runfolder's, are skipped; validate.Document reports them.
func (r *Runfolder) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if start.Name.Local != Schema.Root {
		return fmt.Errorf("got <%s>, want <%s>: %w", start.Name.Local, Schema.Root, ErrUnexpectedElement)
	}

	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" {
			r.DeclareNamespace(a.Name.Local, a.Value)
		}
	}

	reportElement := Schema.mustRule("Report").Element
	sfElement := Schema.mustRule("Samplefolders").Element

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if !InNamespace(t.Name, start.Name.Space) {
				name = ""
			}

			switch name {
			case reportElement:
				var report string
				if err := d.DecodeElement(&report, &t); err != nil {
					return err
				}
				r.SetReport(report)
			case sfElement:
				var sf Samplefolder
				if err := d.DecodeElement(&sf, &t); err != nil {
					return err
				}
				r.Samplefolders().Append(r.adoptSamplefolder(sf))
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// InNamespace reports whether a child element name belongs to a parent in
// namespace space. An empty Space means the child inherited it.
func InNamespace(child xml.Name, space string) bool {
	return child.Space == "" || child.Space == space
}

// NewDecoder returns an xml.Decoder that understands the non-UTF-8 encodings
// (typically ISO-8859-1) that setup files are sometimes written in.
func NewDecoder(r io.Reader) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	return d
}

// Decode reads the first <runfolder> element from r.
func Decode(r io.Reader) (*Runfolder, error) {
	rf := NewRunfolder()
	if err := NewDecoder(r).Decode(rf); err != nil {
		return nil, fmt.Errorf("decoding runfolder: %w", err)
	}

	return rf, nil
}

// Encode writes rf as an indented XML document. Required-ness of report is
// not enforced; see EncodeStrict.
func Encode(w io.Writer, rf *Runfolder) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(rf); err != nil {
		return fmt.Errorf("encoding runfolder: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// EncodeStrict is Encode, except that it refuses to write a runfolder whose
// report is unset. Nothing is written in that case.
func EncodeStrict(w io.Writer, rf *Runfolder) error {
	if _, ok := rf.Report(); !ok {
		return ErrReportUnset
	}

	return Encode(w, rf)
}
