// Package announce sends a fixed sentence once at start-up.
package announce

import "mcuctl-go/transport"

const Sentence = "The quick brown fox jumps over the lazy dog.\r\n"

// Send writes Sentence and waits for it to leave the transmitter.
func Send(t *transport.Transport) error {
	if err := t.Printf("%s", Sentence); err != nil {
		return err
	}
	return t.Flush()
}
