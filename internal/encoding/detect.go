// Package encoding turns uploaded spreadsheets exported by arbitrary tools
// into UTF-8 text.
package encoding

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNotText is returned for uploads that are not plain text, such as
// spreadsheets saved in a binary format.
var ErrNotText = errors.New("file is not a text file")

const sniffLen = 4096

// Charset names reported by Decode.
const (
	UTF8        = "UTF-8"
	UTF16LE     = "UTF-16LE"
	UTF16BE     = "UTF-16BE"
	Windows1252 = "windows-1252"
	ISO88599    = "ISO-8859-9"
	ISO885915   = "ISO-8859-15"
)

var boms = []struct {
	prefix  []byte
	charset string
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0xFF, 0xFE}, UTF16LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
}

var decoders = map[string]encoding.Encoding{
	UTF16LE:     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	UTF16BE:     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	Windows1252: charmap.Windows1252,
	ISO88599:    charmap.ISO8859_9,
	ISO885915:   charmap.ISO8859_15,
}

// Decoded is a UTF-8 view of an upload.
type Decoded struct {
	io.Reader

	// Charset is the detected source encoding.
	Charset string
}

// Decode detects the encoding of r and returns a reader producing UTF-8.
//
// A byte order mark wins. Otherwise valid UTF-8 is passed through, chardet
// picks among the single-byte encodings it recognizes, and anything else is
// read as Windows-1252.
func Decode(r io.Reader) (*Decoded, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	buf, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("peek: %w", err)
	}

	for _, bom := range boms {
		if !bytes.HasPrefix(buf, bom.prefix) {
			continue
		}

		if bom.charset == UTF8 {
			_, _ = br.Discard(len(bom.prefix))
			return &Decoded{Reader: br, Charset: UTF8}, nil
		}

		return decode(br, bom.charset), nil
	}

	if !isText(buf) {
		return nil, ErrNotText
	}

	if utf8.Valid(buf) {
		return &Decoded{Reader: br, Charset: UTF8}, nil
	}

	return decode(br, detect(buf)), nil
}

func decode(r io.Reader, charset string) *Decoded {
	return &Decoded{
		Reader:  transform.NewReader(r, decoders[charset].NewDecoder()),
		Charset: charset,
	}
}

func detect(buf []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(buf)
	if err != nil {
		return Windows1252
	}

	switch result.Charset {
	case "ISO-8859-9":
		return ISO88599
	case "ISO-8859-15":
		return ISO885915
	}

	return Windows1252
}

// isText reports whether the sniffed prefix looks like text of any encoding.
func isText(buf []byte) bool {
	if len(buf) == 0 {
		return true
	}

	for m := mimetype.Detect(buf); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}

	return false
}
