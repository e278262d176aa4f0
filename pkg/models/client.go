package models

import (
	"fmt"
	"strings"
	"unicode"
)

// View is one mapping line between depot and workspace paths.
type View struct {
	Left  string
	Right string
}

// ParseView splits a view line into its two sides. Sides containing spaces
// are double-quoted in spec output.
func ParseView(line string) (View, error) {
	parts := splitQuoted(line)
	if len(parts) != 2 {
		return View{}, fmt.Errorf("view line %q: expected two paths, found %d", line, len(parts))
	}
	return View{Left: parts[0], Right: parts[1]}, nil
}

func (v View) String() string {
	left, right := v.Left, v.Right
	if strings.ContainsRune(left, ' ') {
		left = `"` + left + `"`
	}
	if strings.ContainsRune(right, ' ') {
		right = `"` + right + `"`
	}
	return left + " " + right
}

func splitQuoted(s string) []string {
	var parts []string
	var cur strings.Builder
	quoted := false
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
		case unicode.IsSpace(r) && !quoted:
			if cur.Len() > 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

// ClientOptions is the switch set from a workspace spec's Options line.
type ClientOptions struct {
	AllWrite bool
	Clobber  bool
	Compress bool
	Locked   bool
	ModTime  bool
	RmDir    bool
}

// ParseClientOptions reads an options line such as
// "noallwrite noclobber nocompress unlocked nomodtime normdir".
func ParseClientOptions(line string) ClientOptions {
	set := make(map[string]bool)
	for _, word := range strings.Fields(line) {
		set[word] = true
	}
	return ClientOptions{
		AllWrite: set["allwrite"],
		Clobber:  set["clobber"],
		Compress: set["compress"],
		Locked:   set["locked"],
		ModTime:  set["modtime"],
		RmDir:    set["rmdir"],
	}
}

func (o ClientOptions) String() string {
	pick := func(on bool, yes, no string) string {
		if on {
			return yes
		}
		return no
	}
	return strings.Join([]string{
		pick(o.AllWrite, "allwrite", "noallwrite"),
		pick(o.Clobber, "clobber", "noclobber"),
		pick(o.Compress, "compress", "nocompress"),
		pick(o.Locked, "locked", "nolocked"),
		pick(o.ModTime, "modtime", "nomodtime"),
		pick(o.RmDir, "rmdir", "normdir"),
	}, " ")
}

// Client is a p4 client workspace specification.
type Client struct {
	Name        string
	Owner       string
	Host        string
	Description string

	// Root is the workspace root directory on the local host; view
	// right-hand sides are relative to it.
	Root string

	// Stream is set when the workspace is bound to a stream.
	Stream string

	Options       ClientOptions
	SubmitOptions SubmitOptions
	Type          ClientType

	// Access is when the workspace was last used in any way.
	Access DateTime

	// Update is when the workspace spec was last modified.
	Update DateTime

	// Views maps depot files to workspace files, from View0..Vn lines.
	Views []View
}

// ParseClient builds a Client from the field map of a `p4 client -o` record.
func ParseClient(fields map[string]string) (*Client, error) {
	var c Client
	var err error

	if c.Name, err = required(fields, "client", "Client"); err != nil {
		return nil, err
	}
	if c.Owner, err = required(fields, "client", "Owner"); err != nil {
		return nil, err
	}
	if c.Host, err = required(fields, "client", "Host"); err != nil {
		return nil, err
	}
	if c.Description, err = required(fields, "client", "Description"); err != nil {
		return nil, err
	}
	if c.Root, err = required(fields, "client", "Root"); err != nil {
		return nil, err
	}
	c.Stream = fields["Stream"]

	options, err := required(fields, "client", "Options")
	if err != nil {
		return nil, err
	}
	c.Options = ParseClientOptions(options)

	submit, err := required(fields, "client", "SubmitOptions")
	if err != nil {
		return nil, err
	}
	c.SubmitOptions = SubmitOptions(submit)

	kind, err := required(fields, "client", "Type")
	if err != nil {
		return nil, err
	}
	c.Type = ClientType(kind)

	if c.Access, err = requiredDateTime(fields, "client", "Access"); err != nil {
		return nil, err
	}
	if c.Update, err = requiredDateTime(fields, "client", "Update"); err != nil {
		return nil, err
	}

	for _, line := range IndexedValues(fields, "View") {
		view, err := ParseView(line)
		if err != nil {
			return nil, err
		}
		c.Views = append(c.Views, view)
	}
	return &c, nil
}
