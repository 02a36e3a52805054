package terminal

import (
	"encoding/base64"
	"fmt"
	"io"
	"sync"
)

// Clipboard копирует текст в буфер обмена терминала escape-последовательностью
// OSC 52 и печатает его, если терминал ее не поддерживает
type Clipboard struct {
	mu   sync.Mutex
	out  io.Writer
	last string
}

func NewClipboard(out io.Writer) *Clipboard {
	return &Clipboard{out: out}
}

func (c *Clipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	seq := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\a"
	if _, err := fmt.Fprintf(c.out, "%s[clipboard] %s\n", seq, text); err != nil {
		return fmt.Errorf("write to terminal: %w", err)
	}
	c.last = text
	return nil
}

// Last - последний скопированный текст
func (c *Clipboard) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
