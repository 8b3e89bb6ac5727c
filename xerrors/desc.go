package xerrors

import (
	"fmt"
	"strings"
)

// desc keys for bookkeeping
const (
	KeyFile     = "File"     // input file path
	KeyPos      = "Pos"      // character offset in input
	KeyEncoding = "Encoding" // input character encoding
	KeyOutFile  = "OutFile"  // output file path

	// private keys below
	keyReason = "Reason" // error
	// In addition to telling the user exactly why their input is wrong, it's oftentimes
	// furthermore possible to tell them how to fix it.
	//
	// See https://rustc-dev-guide.rust-lang.org/diagnostics.html#suggestions
	keyHelp = "Help"
)

// ordered keys for debugging
var keys = []string{
	KeyFile,
	KeyPos,
	KeyEncoding,
	KeyOutFile,

	keyReason,
	keyHelp,
}

type Desc struct {
	err    error
	fields map[string]any
}

// NewDesc splits the rendered `|key: value` segments of err back into
// fields for structured reporting.
func NewDesc(err error) *Desc {
	desc := &Desc{
		err:    err,
		fields: map[string]any{},
	}

	splits := strings.Split(err.Error(), "|")
	for _, s := range splits {
		kv := strings.SplitN(s, ":", 2)
		if len(kv) == 2 {
			key, val := strings.Trim(kv[0], " :"), strings.Trim(kv[1], " :")
			desc.setField(key, val)
		}
	}
	return desc
}

func (d *Desc) setField(key, val string) {
	d.fields[key] = val
}

// Reason returns the extracted reason field, or "" if absent.
func (d *Desc) Reason() string {
	if val, ok := d.fields[keyReason].(string); ok {
		return val
	}
	return ""
}

// String renders a human-readable description.
func (d *Desc) String() string {
	if d.fields[keyReason] == nil {
		return fmt.Sprintf("Error: %s", d.err.Error())
	}
	str := fmt.Sprintf("Error: %s\n", d.fields[keyReason])
	if file, ok := d.fields[KeyFile]; ok {
		str += fmt.Sprintf("File: %v\n", file)
	}
	if help, ok := d.fields[keyHelp]; ok {
		str += fmt.Sprintf("Help: %v\n", help)
	}
	return str
}

func (d *Desc) DebugString() string {
	str := ""
	for _, key := range keys {
		val := d.fields[key]
		if val != nil {
			str += fmt.Sprintf("\t%s: %v\n", key, val)
		}
	}
	return str
}
