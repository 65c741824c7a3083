package convert

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"mime"
	"path"
	"regexp"
	"strconv"
	"strings"
)

const (
	documentPart  = "word/document.xml"
	relsPart      = "word/_rels/document.xml.rels"
	numberingPart = "word/numbering.xml"
	stylesPart    = "word/styles.xml"
)

// xnode is a generic WordprocessingML element. Only local names are used;
// namespace prefixes are ignored.
type xnode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []xnode    `xml:",any"`
	Text    string     `xml:",chardata"`
}

func (n *xnode) name() string {
	return n.XMLName.Local
}

func (n *xnode) attr(local string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func (n *xnode) child(local string) *xnode {
	for i := range n.Nodes {
		if n.Nodes[i].name() == local {
			return &n.Nodes[i]
		}
	}
	return nil
}

// find returns the first descendant with the given local name.
func (n *xnode) find(local string) *xnode {
	for i := range n.Nodes {
		c := &n.Nodes[i]
		if c.name() == local {
			return c
		}
		if d := c.find(local); d != nil {
			return d
		}
	}
	return nil
}

// toggle reports whether an on/off property such as <w:b/> is set.
func (n *xnode) toggle(local string) bool {
	c := n.child(local)
	if c == nil {
		return false
	}
	switch strings.ToLower(c.attr("val")) {
	case "0", "false", "off", "none":
		return false
	}
	return true
}

type relationships struct {
	Items []struct {
		ID         string `xml:"Id,attr"`
		Target     string `xml:"Target,attr"`
		TargetMode string `xml:"TargetMode,attr"`
	} `xml:"Relationship"`
}

type numbering struct {
	Abstract []struct {
		ID     string `xml:"abstractNumId,attr"`
		Levels []struct {
			Ilvl string `xml:"ilvl,attr"`
			Fmt  struct {
				Val string `xml:"val,attr"`
			} `xml:"numFmt"`
		} `xml:"lvl"`
	} `xml:"abstractNum"`
	Nums []struct {
		ID       string `xml:"numId,attr"`
		Abstract struct {
			Val string `xml:"val,attr"`
		} `xml:"abstractNumId"`
	} `xml:"num"`
}

type styles struct {
	Items []struct {
		ID   string `xml:"styleId,attr"`
		Name struct {
			Val string `xml:"val,attr"`
		} `xml:"name"`
	} `xml:"style"`
}

// docx holds the parts of an opened archive that markup conversion needs.
type docx struct {
	files   map[string]*zip.File
	body    *xnode
	links   map[string]string // relationship id -> external target
	media   map[string]string // relationship id -> archive path
	formats map[string]string // numId/ilvl -> numFmt
	heads   map[string]int    // styleId -> heading level
}

func openDOCX(data []byte) (*docx, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}

	d := &docx{
		files:   make(map[string]*zip.File, len(zr.File)),
		links:   make(map[string]string),
		media:   make(map[string]string),
		formats: make(map[string]string),
		heads:   make(map[string]int),
	}
	for _, f := range zr.File {
		d.files[f.Name] = f
	}

	if _, ok := d.files[documentPart]; !ok {
		return nil, fmt.Errorf("%s not found in archive", documentPart)
	}
	var root xnode
	if err := d.decode(documentPart, &root); err != nil {
		return nil, err
	}
	d.body = root.child("body")
	if d.body == nil {
		return nil, fmt.Errorf("%s has no body", documentPart)
	}

	if err := d.loadRels(); err != nil {
		return nil, err
	}
	if err := d.loadNumbering(); err != nil {
		return nil, err
	}
	if err := d.loadStyles(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *docx) read(name string) ([]byte, error) {
	f, ok := d.files[name]
	if !ok {
		return nil, fmt.Errorf("%s not found in archive", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func (d *docx) decode(name string, v any) error {
	data, err := d.read(name)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// optional decodes a part that a minimal archive may omit.
func (d *docx) optional(name string, v any) (bool, error) {
	if _, ok := d.files[name]; !ok {
		return false, nil
	}
	return true, d.decode(name, v)
}

func (d *docx) loadRels() error {
	var rels relationships
	ok, err := d.optional(relsPart, &rels)
	if !ok || err != nil {
		return err
	}
	for _, r := range rels.Items {
		if strings.EqualFold(r.TargetMode, "External") {
			d.links[r.ID] = r.Target
			continue
		}
		// Internal targets are relative to word/ unless absolute in the archive.
		if strings.HasPrefix(r.Target, "/") {
			d.media[r.ID] = strings.TrimPrefix(r.Target, "/")
		} else {
			d.media[r.ID] = path.Join("word", r.Target)
		}
	}
	return nil
}

func (d *docx) loadNumbering() error {
	var num numbering
	ok, err := d.optional(numberingPart, &num)
	if !ok || err != nil {
		return err
	}
	abstract := make(map[string]map[string]string, len(num.Abstract))
	for _, a := range num.Abstract {
		levels := make(map[string]string, len(a.Levels))
		for _, l := range a.Levels {
			levels[l.Ilvl] = l.Fmt.Val
		}
		abstract[a.ID] = levels
	}
	for _, n := range num.Nums {
		for ilvl, format := range abstract[n.Abstract.Val] {
			d.formats[n.ID+"/"+ilvl] = format
		}
	}
	return nil
}

var headingName = regexp.MustCompile(`(?i)^heading\s*([1-6])$`)

func headingLevel(name string) int {
	if strings.EqualFold(name, "title") {
		return 1
	}
	if m := headingName.FindStringSubmatch(name); m != nil {
		level, _ := strconv.Atoi(m[1])
		return level
	}
	return 0
}

func (d *docx) loadStyles() error {
	var st styles
	ok, err := d.optional(stylesPart, &st)
	if !ok || err != nil {
		return err
	}
	for _, s := range st.Items {
		if level := headingLevel(s.Name.Val); level > 0 {
			d.heads[s.ID] = level
		}
	}
	return nil
}

// heading returns the heading level for a paragraph style, falling back to
// the style id itself when styles.xml does not name it.
func (d *docx) heading(styleID string) int {
	if level, ok := d.heads[styleID]; ok {
		return level
	}
	return headingLevel(styleID)
}

// ordered reports whether a numbered paragraph belongs to an ordered list.
func (d *docx) ordered(numID, ilvl string) bool {
	switch d.formats[numID+"/"+ilvl] {
	case "", "bullet", "none":
		return false
	}
	return true
}

// image returns the data URI for an embedded image relationship.
func (d *docx) image(relID string) (string, error) {
	name, ok := d.media[relID]
	if !ok {
		return "", fmt.Errorf("image relationship %q not found", relID)
	}
	data, err := d.read(name)
	if err != nil {
		return "", err
	}
	mediaType := mime.TypeByExtension(path.Ext(name))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
