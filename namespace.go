package runfolder

import "encoding/xml"

const xmlNamespaceURI = "http://www.w3.org/XML/1998/namespace"

// nsDecl is one xmlns:prefix="uri" declaration written on <runfolder>.
type nsDecl struct {
	prefix string
	uri    string
}

// DeclareNamespace binds prefix to uri on the <runfolder> element, so that
// prefixed attributes and raw inner XML of samplefolders can use it.
// Declaring an existing prefix again replaces its URI.
func (r *Runfolder) DeclareNamespace(prefix, uri string) {
	for i, ns := range r.namespaces {
		if ns.prefix == prefix {
			r.namespaces[i].uri = uri
			return
		}
	}

	r.namespaces = append(r.namespaces, nsDecl{prefix: prefix, uri: uri})
}

// Namespaces returns the prefix declarations carried on <runfolder>, in the
// order they were declared.
func (r *Runfolder) Namespaces() []xml.Attr {
	out := make([]xml.Attr, 0, len(r.namespaces))
	for _, ns := range r.namespaces {
		out = append(out, xml.Attr{Name: xml.Name{Local: ns.prefix}, Value: ns.uri})
	}

	return out
}

func (r *Runfolder) namespaceURI(prefix string) (string, bool) {
	for _, ns := range r.namespaces {
		if ns.prefix == prefix {
			return ns.uri, true
		}
	}

	return "", false
}

// prefixFor finds the prefix bound to uri, looking first at declarations
// local to one samplefolder. The decoder leaves an undeclared prefix in
// Name.Space, so an unknown uri is returned as-is.
func (r *Runfolder) prefixFor(uri string, local map[string]string) string {
	for prefix, u := range local {
		if u == uri {
			return prefix
		}
	}
	for _, ns := range r.namespaces {
		if ns.uri == uri {
			return ns.prefix
		}
	}
	if uri == xmlNamespaceURI {
		return "xml"
	}

	return uri
}

// startAttrs returns the xmlns:prefix attributes for the <runfolder> start
// element.
func (r *Runfolder) startAttrs() []xml.Attr {
	out := make([]xml.Attr, 0, len(r.namespaces))
	for _, ns := range r.namespaces {
		out = append(out, xml.Attr{Name: xml.Name{Local: "xmlns:" + ns.prefix}, Value: ns.uri})
	}

	return out
}

// adoptSamplefolder rewrites the attributes of a decoded samplefolder so that
// they encode back to what was read. Prefix declarations move up to the
// runfolder unless they rebind a prefix the runfolder already uses
// differently, in which case they stay on the samplefolder. Namespaced
// attributes are named "prefix:local" with an empty Space.
func (r *Runfolder) adoptSamplefolder(sf Samplefolder) Samplefolder {
	if len(sf.Attrs) == 0 {
		return sf
	}

	local := make(map[string]string)
	attrs := make([]xml.Attr, 0, len(sf.Attrs))
	for _, a := range sf.Attrs {
		if a.Name.Space != "xmlns" {
			continue
		}
		if uri, ok := r.namespaceURI(a.Name.Local); ok && uri != a.Value {
			local[a.Name.Local] = a.Value
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "xmlns:" + a.Name.Local}, Value: a.Value})
			continue
		}
		r.DeclareNamespace(a.Name.Local, a.Value)
	}

	for _, a := range sf.Attrs {
		switch a.Name.Space {
		case "xmlns":
		case "":
			attrs = append(attrs, a)
		default:
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: r.prefixFor(a.Name.Space, local) + ":" + a.Name.Local}, Value: a.Value})
		}
	}
	sf.Attrs = attrs

	return sf
}

// encodeAttrs names namespaced attributes by a declared prefix where one
// exists. Attributes in an undeclared namespace keep their Space, and the
// encoder declares a prefix for them.
func (r *Runfolder) encodeAttrs(attrs []xml.Attr) []xml.Attr {
	out := make([]xml.Attr, 0, len(attrs))
	for _, a := range attrs {
		switch a.Name.Space {
		case "":
		case "xmlns":
			a.Name = xml.Name{Local: "xmlns:" + a.Name.Local}
		default:
			if prefix := r.prefixFor(a.Name.Space, nil); prefix != a.Name.Space {
				a.Name = xml.Name{Local: prefix + ":" + a.Name.Local}
			}
		}
		out = append(out, a)
	}

	return out
}
