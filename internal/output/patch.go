package output

import "bytes"

// Generated-section markers. Everything between them belongs to iro and
// is replaced wholesale on regeneration.
const (
	beginMarker = "# BEGIN iro colors"
	endMarker   = "# END iro colors"
)

// patchSection replaces the marked section in existing with the
// rendered section, or appends a new marked section when no markers are
// present. The section content is always framed by the markers and a
// trailing newline.
func patchSection(existing, section []byte) []byte {
	framed := frameSection(section)

	begin := bytes.Index(existing, []byte(beginMarker))
	end := bytes.Index(existing, []byte(endMarker))
	if begin >= 0 && end > begin {
		after := existing[end+len(endMarker):]
		// Swallow the newline that closed the old section.
		if len(after) > 0 && after[0] == '\n' {
			after = after[1:]
		}
		out := make([]byte, 0, len(existing)+len(framed))
		out = append(out, existing[:begin]...)
		out = append(out, framed...)
		out = append(out, after...)
		return out
	}

	out := existing
	if len(out) > 0 && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	if len(out) > 0 {
		out = append(out, '\n')
	}
	return append(out, framed...)
}

func frameSection(section []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(beginMarker)
	buf.WriteByte('\n')
	buf.Write(section)
	if len(section) > 0 && section[len(section)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteString(endMarker)
	buf.WriteByte('\n')
	return buf.Bytes()
}
