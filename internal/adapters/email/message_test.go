package email

import (
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	raw, err := buildMessage("host@example.com", "guest@example.com", "Reminder: Housewarming",
		"<p>See you there</p>", "See you there\n")
	require.NoError(t, err)

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, "host@example.com", msg.Header.Get("From"))
	assert.Equal(t, "guest@example.com", msg.Header.Get("To"))
	assert.Equal(t, "Reminder: Housewarming", msg.Header.Get("Subject"))
	assert.Equal(t, "1.0", msg.Header.Get("MIME-Version"))

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)
	require.NotEmpty(t, params["boundary"])

	mr := multipart.NewReader(msg.Body, params["boundary"])

	textPart, err := mr.NextPart()
	require.NoError(t, err)
	assert.Contains(t, textPart.Header.Get("Content-Type"), "text/plain")
	textBody, err := io.ReadAll(textPart)
	require.NoError(t, err)
	assert.Contains(t, string(textBody), "See you there")

	htmlPart, err := mr.NextPart()
	require.NoError(t, err)
	assert.Contains(t, htmlPart.Header.Get("Content-Type"), "text/html")
	htmlBody, err := io.ReadAll(htmlPart)
	require.NoError(t, err)
	assert.Contains(t, string(htmlBody), "<p>See you there</p>")

	_, err = mr.NextPart()
	assert.Equal(t, io.EOF, err)
}

func TestBuildMessage_EncodesSubject(t *testing.T) {
	raw, err := buildMessage("host@example.com", "guest@example.com", "Grüße aus München", "<p>hi</p>", "hi")
	require.NoError(t, err)

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)

	dec := new(mime.WordDecoder)
	subject, err := dec.DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Grüße aus München", subject)
}

func TestBuildMessage_SkipsEmptyParts(t *testing.T) {
	raw, err := buildMessage("host@example.com", "guest@example.com", "Subject", "", "text only")
	require.NoError(t, err)

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)
	_, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)

	mr := multipart.NewReader(msg.Body, params["boundary"])
	part, err := mr.NextPart()
	require.NoError(t, err)
	assert.Contains(t, part.Header.Get("Content-Type"), "text/plain")
	_, err = mr.NextPart()
	assert.Equal(t, io.EOF, err)
}
