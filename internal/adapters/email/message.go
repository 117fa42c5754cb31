package email

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// buildMessage assembles an RFC 5322 message with a multipart/alternative body
// (plain text first, then HTML) for the SMTP transport. SES builds the MIME
// structure itself, so only the SMTP mailer uses this.
func buildMessage(from, to, subject, html, text string) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	var headers bytes.Buffer
	fmt.Fprintf(&headers, "From: %s\r\n", from)
	fmt.Fprintf(&headers, "To: %s\r\n", to)
	fmt.Fprintf(&headers, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	headers.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&headers, "Content-Type: multipart/alternative; boundary=%q\r\n", mw.Boundary())
	headers.WriteString("\r\n")

	if text != "" {
		if err := writePart(mw, "text/plain; charset=UTF-8", text); err != nil {
			return nil, fmt.Errorf("write text part: %w", err)
		}
	}
	if html != "" {
		if err := writePart(mw, "text/html; charset=UTF-8", html); err != nil {
			return nil, fmt.Errorf("write html part: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	return append(headers.Bytes(), buf.Bytes()...), nil
}

func writePart(mw *multipart.Writer, contentType, body string) error {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	pw, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	// Bare LFs are not valid in SMTP payloads.
	body = strings.ReplaceAll(body, "\r\n", "\n")
	_, err = pw.Write([]byte(strings.ReplaceAll(body, "\n", "\r\n")))
	return err
}
