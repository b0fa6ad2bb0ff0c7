package gclipboard

import (
	"fmt"
	"strings"
)

type clipboardBackend struct {
	read  func() (string, error)
	write func(string) error
}

// FENSession is what the copy/paste buttons need from a game session
type FENSession interface {
	FEN() string
	CreateFromFEN(fen string) error
}

func ReadAll() (string, error) {
	return backend.read()
}

func WriteAll(text string) error {
	return backend.write(text)
}

// CopyFEN puts the current position on the clipboard and returns it
func CopyFEN(s FENSession) (string, error) {
	fen := s.FEN()
	if err := WriteAll(fen); err != nil {
		return "", fmt.Errorf("error copy FEN to clipboard: %w", err)
	}
	return fen, nil
}

// PasteFEN loads the first non-blank clipboard line as the new position.
// The session keeps its game when the text is not a FEN.
func PasteFEN(s FENSession) (string, error) {
	text, err := ReadAll()
	if err != nil {
		return "", fmt.Errorf("error read clipboard: %w", err)
	}
	fen := firstLine(text)
	if fen == "" {
		return "", fmt.Errorf("clipboard is empty")
	}
	return fen, s.CreateFromFEN(fen)
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
