package parse

import (
	"bufio"
	"bytes"
	"strings"
)

// Header holds the directives of the # lines leading a TON text, such as
//
//	#TON 1
//	#SCHEMA person.schema.ton
type Header struct {
	Version string
	Schema  string
}

// ReadHeader reads the directive lines at the start of d. Blank lines and
// // comments may appear between them; the first other line ends the
// header.
func ReadHeader(d []byte) Header {
	var h Header
	sc := bufio.NewScanner(bytes.NewReader(d))
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		switch {
		case ln == "", strings.HasPrefix(ln, "//"):
			continue
		case !strings.HasPrefix(ln, "#"):
			return h
		}
		name, val, _ := strings.Cut(strings.TrimSpace(ln[1:]), " ")
		val = strings.TrimSpace(val)
		switch strings.ToUpper(name) {
		case "TON":
			h.Version = val
		case "SCHEMA":
			h.Schema = val
		}
	}
	return h
}
