// internal/engine/escape.go
package engine

import "bytes"

// The write*ToEnd routines render content bytes up to a terminator boundary
// and return the number of input bytes consumed, so the scanner can locate
// the byte that stopped them. writeToEnd and writeTabToEnd stop at '\n' and
// '\r' — a \r may still become ^M depending on the byte after it.
// writeNonprintToEnd stops at '\n' only: it escapes every control byte
// itself, \r included, so nothing is left ambiguous.

var tabCaret = []byte("^I")

func writeToEnd(ew *errWriter, buf []byte) int {
	if i := bytes.IndexAny(buf, "\r\n"); i >= 0 {
		ew.Write(buf[:i])
		return i
	}
	ew.Write(buf)
	return len(buf)
}

func writeTabToEnd(ew *errWriter, buf []byte) int {
	count := 0
	for {
		i := bytes.IndexAny(buf, "\t\r\n")
		if i < 0 {
			ew.Write(buf)
			return count + len(buf)
		}
		ew.Write(buf[:i])
		if buf[i] != '\t' {
			return count + i
		}
		ew.Write(tabCaret)
		buf = buf[i+1:]
		count += i + 1
	}
}

func writeNonprintToEnd(ew *errWriter, buf []byte, tab []byte) int {
	count := 0
	for count < len(buf) {
		b := buf[count]
		if b == '\n' {
			break
		}
		switch {
		case b == '\t':
			ew.Write(tab)
		case b < 32:
			ew.Write([]byte{'^', b + 64})
		case b < 127:
			// Printable ASCII: emit the whole run in one write.
			run := count + 1
			for run < len(buf) && buf[run] >= 32 && buf[run] < 127 {
				run++
			}
			ew.Write(buf[count:run])
			count = run
			continue
		case b == 127:
			ew.Write([]byte{'^', '?'})
		case b < 160:
			ew.Write([]byte{'M', '-', '^', b - 64})
		case b < 255:
			ew.Write([]byte{'M', '-', b - 128})
		default:
			ew.Write([]byte{'M', '-', '^', '?'})
		}
		count++
	}
	return count
}
