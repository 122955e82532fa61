package manifest

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/rename"
)

func readYAML(r io.Reader) ([]rename.Rename, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid YAML manifest")
	}
	return doc.Renames, nil
}

func readTOML(r io.Reader) ([]rename.Rename, error) {
	var doc document
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		e := errors.Wrap(err, errors.ErrManifestParse, "invalid TOML manifest")
		var decodeErr *toml.DecodeError
		if stderrors.As(err, &decodeErr) {
			row, _ := decodeErr.Position()
			e = e.WithDetail("line", row)
		}
		return nil, e
	}
	return doc.Renames, nil
}

func readJSON(r io.Reader) ([]rename.Rename, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid JSON manifest")
	}
	return doc.Renames, nil
}

// readXML accepts both <rename source="a" target="b"/> and
// <rename><source>a</source><target>b</target></rename>.
func readXML(r io.Reader) ([]rename.Rename, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestRead, "failed to read manifest")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid XML manifest")
	}

	root := doc.Root()
	if root == nil {
		return nil, nil
	}
	if root.Tag != "renames" {
		return nil, errors.Newf(errors.ErrManifestParse, "unexpected root element <%s>, want <renames>", root.Tag)
	}

	var renames []rename.Rename
	for i, el := range root.ChildElements() {
		if el.Tag != "rename" {
			return nil, errors.Newf(errors.ErrManifestParse, "unexpected element <%s>, want <rename>", el.Tag).
				WithDetail("entry", i+1)
		}
		renames = append(renames, rename.New(xmlField(el, "source"), xmlField(el, "target")))
	}
	return renames, nil
}

func xmlField(el *etree.Element, name string) string {
	if child := el.SelectElement(name); child != nil {
		return child.Text()
	}
	return el.SelectAttrValue(name, "")
}
