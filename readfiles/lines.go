package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError locates a malformed record in an input file
type ParseError struct {
	File string
	Line int
	Err  error
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", pe.File, pe.Line, pe.Err)
}

func (pe *ParseError) Unwrap() error { return pe.Err }

type lineReader struct {
	reader *bufio.Reader
	file   string
	line   int
}

func openLines(filename string) (lr *lineReader, closer io.Closer, err error) {
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return
	}
	lr = newLineReader(file, filename)
	closer = file
	return
}

func newLineReader(r io.Reader, name string) *lineReader {
	return &lineReader{
		reader: bufio.NewReader(r),
		file:   name,
	}
}

func (lr *lineReader) errorf(format string, args ...any) error {
	return &ParseError{File: lr.file, Line: lr.line, Err: fmt.Errorf(format, args...)}
}

// getLine returns the next line without its line ending, io.EOF once the input is exhausted
func (lr *lineReader) getLine() (line string, err error) {
	line, err = lr.reader.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	if err != nil {
		return
	}
	lr.line++
	line = strings.TrimRight(line, "\r\n")
	return
}

// getFields skips blank lines and splits the next record on whitespace
func (lr *lineReader) getFields() (fields []string, err error) {
	var line string
	for {
		if line, err = lr.getLine(); err != nil {
			return
		}
		if fields = strings.Fields(line); len(fields) != 0 {
			return
		}
	}
}

// mustFields is getFields where end of input is an error
func (lr *lineReader) mustFields(what string) (fields []string, err error) {
	if fields, err = lr.getFields(); err == io.EOF {
		err = &ParseError{File: lr.file, Line: lr.line + 1, Err: fmt.Errorf("early end of file, expected %s", what)}
	}
	return
}

func (lr *lineReader) readNumber(what string) (num int, err error) {
	var fields []string
	if fields, err = lr.mustFields(what); err != nil {
		return
	}
	return lr.parseInt(fields[0], what)
}

func (lr *lineReader) parseInt(token, what string) (num int, err error) {
	if num, err = strconv.Atoi(token); err != nil {
		err = lr.errorf("unable to read %s from token [%s]", what, token)
	}
	return
}

func (lr *lineReader) parseFloat(token, what string) (val float64, err error) {
	if val, err = strconv.ParseFloat(token, 64); err != nil {
		err = lr.errorf("unable to read %s from token [%s]", what, token)
	}
	return
}

func (lr *lineReader) parseVec(fields []string, what string) (x [3]float64, err error) {
	if len(fields) < 3 {
		err = lr.errorf("%s needs 3 coordinates, have %d fields", what, len(fields))
		return
	}
	for i := 0; i < 3; i++ {
		if x[i], err = lr.parseFloat(fields[i], what); err != nil {
			return
		}
	}
	return
}
