package remote

import (
	"fmt"
	"io"

	qrcode "github.com/skip2/go-qrcode"
)

// WriteJoinCode prints a terminal QR code that opens link, so a phone can
// join as a display or controller.
func WriteJoinCode(w io.Writer, link string) error {
	q, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("qr code for %s: %w", link, err)
	}
	_, err = fmt.Fprintf(w, "%s\n  %s\n", q.ToSmallString(false), link)
	return err
}
