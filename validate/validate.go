// Package validate checks runfolders against the content model in
// runfolder.Schema. The runfolder binding itself never validates; this is
// where a missing report or an empty samplefolder list becomes an error.
package validate

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/runfolder"
)

var (
	ErrCardinality    = errors.New("wrong number of occurrences")
	ErrOrder          = errors.New("element out of order")
	ErrUnknownElement = errors.New("element not allowed here")
	ErrMixedContent   = errors.New("text not allowed here")
	ErrRoot           = errors.New("wrong root element")
	ErrNamespace      = errors.New("element in a foreign namespace")
)

// Errors collects every problem found in one record or document.
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, "; ")
}

// Is reports whether any of the collected errors matches target.
func (e Errors) Is(target error) bool {
	for _, err := range e {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func (e Errors) orNil() error {
	if len(e) == 0 {
		return nil
	}

	return e
}

// Record checks the occurrence counts of rf's fields.
func Record(rf *runfolder.Runfolder) error {
	counts := make(map[string]int)
	if _, ok := rf.Report(); ok {
		counts["Report"] = 1
	}
	counts["Samplefolders"] = rf.Samplefolders().Len()

	var errs Errors
	for _, rule := range runfolder.Schema.Elements {
		if err := checkOccurs(rule, counts[rule.Field]); err != nil {
			errs = append(errs, err)
		}
	}

	return errs.orNil()
}

// Document checks the first element of an XML document: its name, which
// children it has and in what order, and how many of each.
func Document(r io.Reader) error {
	d := runfolder.NewDecoder(r)

	start, err := firstStartElement(d)
	if err != nil {
		return err
	}

	schema := runfolder.Schema
	if start.Name.Local != schema.Root {
		return Errors{fmt.Errorf("got <%s>, want <%s>: %w", start.Name.Local, schema.Root, ErrRoot)}
	}

	var errs Errors
	if start.Name.Space != "" && start.Name.Space != schema.Namespace {
		errs = append(errs, fmt.Errorf("<%s> is in namespace %q, want %q: %w", schema.Root, start.Name.Space, schema.Namespace, ErrRoot))
	}

	counts := make(map[string]int)
	lastOrder := -1
	lastElement := ""

Children:
	for {
		tok, err := d.Token()
		if err != nil {
			return append(errs, fmt.Errorf("reading <%s>: %w", schema.Root, err))
		}

		switch t := tok.(type) {
		case xml.StartElement:
			rule, ok := schema.Rule(t.Name.Local)
			if !runfolder.InNamespace(t.Name, start.Name.Space) {
				errs = append(errs, fmt.Errorf("<%s> is in namespace %q, want %q: %w", t.Name.Local, t.Name.Space, start.Name.Space, ErrNamespace))
			} else if !ok {
				errs = append(errs, fmt.Errorf("<%s> in <%s>: %w", t.Name.Local, schema.Root, ErrUnknownElement))
			} else {
				if rule.Order < lastOrder {
					errs = append(errs, fmt.Errorf("<%s> after <%s>: %w", t.Name.Local, lastElement, ErrOrder))
				} else {
					lastOrder = rule.Order
					lastElement = rule.Element
				}
				counts[rule.Field]++
			}

			if err := d.Skip(); err != nil {
				return append(errs, fmt.Errorf("reading <%s>: %w", t.Name.Local, err))
			}
		case xml.CharData:
			if text := strings.TrimSpace(string(t)); text != "" {
				errs = append(errs, fmt.Errorf("%q in <%s>: %w", text, schema.Root, ErrMixedContent))
			}
		case xml.EndElement:
			break Children
		}
	}

	for _, rule := range schema.Elements {
		if err := checkOccurs(rule, counts[rule.Field]); err != nil {
			errs = append(errs, err)
		}
	}

	return errs.orNil()
}

// MustBuild builds a runfolder from b and panics if it does not validate.
// Intended for fixtures.
func MustBuild(b *runfolder.Builder) *runfolder.Runfolder {
	rf := b.Build()
	if err := Record(rf); err != nil {
		panic(err)
	}

	return rf
}

func checkOccurs(rule runfolder.ElementRule, n int) error {
	if n < rule.MinOccurs {
		return fmt.Errorf("<%s> occurs %d times, want at least %d: %w", rule.Element, n, rule.MinOccurs, ErrCardinality)
	}
	if rule.MaxOccurs != runfolder.Unbounded && n > rule.MaxOccurs {
		return fmt.Errorf("<%s> occurs %d times, want at most %d: %w", rule.Element, n, rule.MaxOccurs, ErrCardinality)
	}

	return nil
}

func firstStartElement(d *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return xml.StartElement{}, Errors{fmt.Errorf("no root element: %w", ErrRoot)}
		} else if err != nil {
			return xml.StartElement{}, err
		}

		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}
